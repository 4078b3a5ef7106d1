package coder

import "sutext.github.io/bithelper/converter"

// Source is the primitive layer an Input reads through. ReadBool and ReadInt8
// never check bounds. Position, Size and Seek count bits.
type Source interface {
	ReadBool() bool
	ReadInt8() int8
	Position() int
	Size() int
	Seek(pos int)
	Terminate()
}

// Input reads values back in the order an Output added them.
//
// Every ReadX has a ReadDirectX twin that skips the bounds check and returns
// the value alone. Direct calls are only valid after EnsureExtraCapacity
// succeeded for the bits they consume; past the end they panic or return
// garbage. The checked methods return an error instead and leave the read
// position untouched when they do, including reads made of several fields
// such as strings, var uint64s and length-prefixed slices.
type Input struct {
	src Source
}

func NewInput(src Source) *Input {
	return &Input{src: src}
}

func (in *Input) Source() Source {
	return in.src
}

// EnsureExtraCapacity reports a *CapacityError unless at least extraBits more
// bits can be read.
func (in *Input) EnsureExtraCapacity(extraBits int) error {
	pos, size := in.src.Position(), in.src.Size()
	if extraBits > size-pos {
		return &CapacityError{Current: pos, Max: size, Requested: extraBits}
	}
	return nil
}

// Position is the number of bits consumed.
func (in *Input) Position() int {
	return in.src.Position()
}

// Seek moves the read position to pos, a value returned by Position earlier.
func (in *Input) Seek(pos int) {
	in.src.Seek(pos)
}

// rewindOnError restores pos when *err is set. Compound reads defer it so a
// failure never leaves the cursor inside a value.
func (in *Input) rewindOnError(pos int, err *error) {
	if *err != nil {
		in.src.Seek(pos)
	}
}

func (in *Input) RemainingBits() int {
	return max(in.src.Size()-in.src.Position(), 0)
}

// Terminate discards the data of an owned backing. Reading afterwards is a
// programming error.
func (in *Input) Terminate() {
	in.src.Terminate()
}

func (in *Input) ReadDirectBool() bool {
	return in.src.ReadBool()
}

func (in *Input) ReadBool() (bool, error) {
	if err := in.EnsureExtraCapacity(1); err != nil {
		return false, err
	}
	return in.src.ReadBool(), nil
}

func (in *Input) ReadDirectInt8() int8 {
	return in.src.ReadInt8()
}

func (in *Input) ReadInt8() (int8, error) {
	if err := in.EnsureExtraCapacity(8); err != nil {
		return 0, err
	}
	return in.src.ReadInt8(), nil
}

func (in *Input) ReadDirectUint8() uint8 {
	return uint8(in.src.ReadInt8())
}

func (in *Input) ReadUint8() (uint8, error) {
	if err := in.EnsureExtraCapacity(8); err != nil {
		return 0, err
	}
	return in.ReadDirectUint8(), nil
}

func (in *Input) ReadDirectInt16() int16 {
	var b [2]int8
	in.readBytes(b[:])
	return converter.Int8sToInt16(b)
}

func (in *Input) ReadInt16() (int16, error) {
	if err := in.EnsureExtraCapacity(16); err != nil {
		return 0, err
	}
	return in.ReadDirectInt16(), nil
}

func (in *Input) ReadDirectUint16() uint16 {
	var b [2]int8
	in.readBytes(b[:])
	return converter.Int8sToUint16(b)
}

func (in *Input) ReadUint16() (uint16, error) {
	if err := in.EnsureExtraCapacity(16); err != nil {
		return 0, err
	}
	return in.ReadDirectUint16(), nil
}

func (in *Input) ReadDirectInt32() int32 {
	var b [4]int8
	in.readBytes(b[:])
	return converter.Int8sToInt32(b)
}

func (in *Input) ReadInt32() (int32, error) {
	if err := in.EnsureExtraCapacity(32); err != nil {
		return 0, err
	}
	return in.ReadDirectInt32(), nil
}

func (in *Input) ReadDirectUint32() uint32 {
	var b [4]int8
	in.readBytes(b[:])
	return converter.Int8sToUint32(b)
}

func (in *Input) ReadUint32() (uint32, error) {
	if err := in.EnsureExtraCapacity(32); err != nil {
		return 0, err
	}
	return in.ReadDirectUint32(), nil
}

func (in *Input) ReadDirectInt64() int64 {
	var b [8]int8
	in.readBytes(b[:])
	return converter.Int8sToInt64(b)
}

func (in *Input) ReadInt64() (int64, error) {
	if err := in.EnsureExtraCapacity(64); err != nil {
		return 0, err
	}
	return in.ReadDirectInt64(), nil
}

func (in *Input) ReadDirectUint64() uint64 {
	var b [8]int8
	in.readBytes(b[:])
	return converter.Int8sToUint64(b)
}

func (in *Input) ReadUint64() (uint64, error) {
	if err := in.EnsureExtraCapacity(64); err != nil {
		return 0, err
	}
	return in.ReadDirectUint64(), nil
}

func (in *Input) readBytes(dest []int8) {
	for i := range dest {
		dest[i] = in.src.ReadInt8()
	}
}
