package coder

import (
	"fmt"

	"sutext.github.io/bithelper/converter"
)

// varBitsField is the width of the bits-used-minus-one header of a var uint64.
const varBitsField = 6

func checkBits(bits int) {
	if bits < 0 || bits > 64 {
		panic(fmt.Sprintf("coder: bit count %d outside [0, 64]", bits))
	}
}

// AddDirectSizedUint64 writes the low bits bits of value, most significant first.
func (o *Output) AddDirectSizedUint64(value uint64, bits int) {
	for i := bits - 1; i >= 0; i-- {
		o.sink.WriteBool(value>>uint(i)&1 == 1)
	}
}

// AddSizedUint64 writes value using exactly bits bits. It panics when value
// does not fit.
func (o *Output) AddSizedUint64(value uint64, bits int) {
	checkBits(bits)
	if !converter.FitsUint64(value, bits) {
		panic(fmt.Sprintf("coder: %d does not fit in %d unsigned bits", value, bits))
	}
	o.sink.Reserve(bits)
	o.AddDirectSizedUint64(value, bits)
}

// AddDirectSizedInt64 writes bits-1 magnitude bits followed by the sign bit.
// Negative values store the magnitude -value-1.
func (o *Output) AddDirectSizedInt64(value int64, bits int) {
	if bits == 0 {
		return
	}
	magnitude, sign := uint64(value), true
	if value < 0 {
		magnitude, sign = uint64(^value), false
	}
	o.AddDirectSizedUint64(magnitude, bits-1)
	o.sink.WriteBool(sign)
}

// AddSizedInt64 writes value using exactly bits bits. It panics when value
// lies outside [-2^(bits-1), 2^(bits-1)-1].
func (o *Output) AddSizedInt64(value int64, bits int) {
	checkBits(bits)
	if !converter.FitsInt64(value, bits) {
		panic(fmt.Sprintf("coder: %d does not fit in %d signed bits", value, bits))
	}
	o.sink.Reserve(bits)
	o.AddDirectSizedInt64(value, bits)
}

func varBits(value uint64) int {
	return max(converter.MinimalBits(value), 1)
}

// AddDirectVarUint64 writes the number of bits value needs, minus one, in a
// 6 bit field followed by value in that many bits. Zero takes one payload bit.
func (o *Output) AddDirectVarUint64(value uint64) {
	bits := varBits(value)
	o.AddDirectSizedUint64(uint64(bits-1), varBitsField)
	o.AddDirectSizedUint64(value, bits)
}

func (o *Output) AddVarUint64(value uint64) {
	o.sink.Reserve(varBitsField + varBits(value))
	o.AddDirectVarUint64(value)
}

func (in *Input) ReadDirectSizedUint64(bits int) uint64 {
	var value uint64
	for range bits {
		value <<= 1
		if in.src.ReadBool() {
			value |= 1
		}
	}
	return value
}

func (in *Input) ReadSizedUint64(bits int) (uint64, error) {
	checkBits(bits)
	if err := in.EnsureExtraCapacity(bits); err != nil {
		return 0, err
	}
	return in.ReadDirectSizedUint64(bits), nil
}

func (in *Input) ReadDirectSizedInt64(bits int) int64 {
	if bits == 0 {
		return 0
	}
	magnitude := int64(in.ReadDirectSizedUint64(bits - 1))
	if in.src.ReadBool() {
		return magnitude
	}
	return ^magnitude
}

func (in *Input) ReadSizedInt64(bits int) (int64, error) {
	checkBits(bits)
	if err := in.EnsureExtraCapacity(bits); err != nil {
		return 0, err
	}
	return in.ReadDirectSizedInt64(bits), nil
}

func (in *Input) ReadDirectVarUint64() uint64 {
	bits := in.ReadDirectSizedUint64(varBitsField) + 1
	return in.ReadDirectSizedUint64(int(bits))
}

func (in *Input) ReadVarUint64() (value uint64, err error) {
	defer in.rewindOnError(in.Position(), &err)
	bits, err := in.ReadSizedUint64(varBitsField)
	if err != nil {
		return 0, err
	}
	return in.ReadSizedUint64(int(bits) + 1)
}
