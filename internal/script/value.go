package script

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"sutext.github.io/bithelper/coder"
	"sutext.github.io/bithelper/converter"
)

type Kind string

const (
	KindBool    Kind = "bool"
	KindInt8    Kind = "int8"
	KindUint8   Kind = "uint8"
	KindInt16   Kind = "int16"
	KindUint16  Kind = "uint16"
	KindInt32   Kind = "int32"
	KindUint32  Kind = "uint32"
	KindInt64   Kind = "int64"
	KindUint64  Kind = "uint64"
	KindSized   Kind = "sized"
	KindUsized  Kind = "usized"
	KindVar     Kind = "var"
	KindString  Kind = "string"
	KindBools   Kind = "bools"
	KindInt8s   Kind = "int8s"
	KindUint8s  Kind = "uint8s"
	KindInt16s  Kind = "int16s"
	KindUint16s Kind = "uint16s"
	KindInt32s  Kind = "int32s"
	KindUint32s Kind = "uint32s"
	KindInt64s  Kind = "int64s"
	KindUint64s Kind = "uint64s"
)

// widths maps every fixed-width integer kind, scalar or slice, to its bit width.
var widths = map[Kind]int{
	KindInt8: 8, KindUint8: 8, KindInt16: 16, KindUint16: 16,
	KindInt32: 32, KindUint32: 32, KindInt64: 64, KindUint64: 64,
	KindInt8s: 8, KindUint8s: 8, KindInt16s: 16, KindUint16s: 16,
	KindInt32s: 32, KindUint32s: 32, KindInt64s: 64, KindUint64s: 64,
}

func (k Kind) signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindSized,
		KindInt8s, KindInt16s, KindInt32s, KindInt64s:
		return true
	}
	return false
}

func (k Kind) slice() bool {
	switch k {
	case KindBools, KindInt8s, KindUint8s, KindInt16s, KindUint16s,
		KindInt32s, KindUint32s, KindInt64s, KindUint64s:
		return true
	}
	return false
}

// Value is one entry of a script. Only the fields its Kind uses are set.
type Value struct {
	Kind  Kind
	Bits  int
	Bool  bool
	Int   int64
	Uint  uint64
	Str   *string
	Bools []bool
	Ints  []int64
	Uints []uint64
}

type sized[T int64 | uint64] struct {
	Bits  int `yaml:"bits"`
	Value T   `yaml:"value"`
}

// UnmarshalYAML reads a single-key mapping such as {int16: -3} or
// {sized: {bits: 12, value: -7}}.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return errors.Errorf("line %d: a value is a mapping with exactly one key", node.Line)
	}
	key, val := node.Content[0], node.Content[1]
	*v = Value{Kind: Kind(key.Value)}
	if err := v.decodeNode(val); err != nil {
		return errors.Wrapf(err, "line %d: %s", key.Line, key.Value)
	}
	return nil
}

func (v *Value) decodeNode(val *yaml.Node) error {
	switch k := v.Kind; {
	case k == KindBool:
		return val.Decode(&v.Bool)
	case k == KindString:
		if val.Tag == "!!null" {
			return nil
		}
		var s string
		if err := val.Decode(&s); err != nil {
			return err
		}
		v.Str = &s
		return nil
	case k == KindVar:
		return val.Decode(&v.Uint)
	case k == KindSized:
		var s sized[int64]
		if err := val.Decode(&s); err != nil {
			return err
		}
		v.Bits, v.Int = s.Bits, s.Value
		if !converter.FitsInt64(v.Int, v.Bits) {
			return errors.Errorf("%d does not fit in %d signed bits", v.Int, v.Bits)
		}
		return nil
	case k == KindUsized:
		var s sized[uint64]
		if err := val.Decode(&s); err != nil {
			return err
		}
		v.Bits, v.Uint = s.Bits, s.Value
		if !converter.FitsUint64(v.Uint, v.Bits) {
			return errors.Errorf("%d does not fit in %d unsigned bits", v.Uint, v.Bits)
		}
		return nil
	case k == KindBools:
		return val.Decode(&v.Bools)
	case k.slice() && k.signed():
		if err := val.Decode(&v.Ints); err != nil {
			return err
		}
		return checkSigned(v.Ints, widths[k])
	case k.slice():
		if err := val.Decode(&v.Uints); err != nil {
			return err
		}
		return checkUnsigned(v.Uints, widths[k])
	case widths[k] > 0 && k.signed():
		if err := val.Decode(&v.Int); err != nil {
			return err
		}
		return checkSigned([]int64{v.Int}, widths[k])
	case widths[k] > 0:
		if err := val.Decode(&v.Uint); err != nil {
			return err
		}
		return checkUnsigned([]uint64{v.Uint}, widths[k])
	}
	return errors.Errorf("unknown kind %q", v.Kind)
}

func checkSigned(values []int64, bits int) error {
	for _, x := range values {
		if !converter.FitsInt64(x, bits) {
			return errors.Errorf("%d overflows int%d", x, bits)
		}
	}
	return nil
}

func checkUnsigned(values []uint64, bits int) error {
	for _, x := range values {
		if !converter.FitsUint64(x, bits) {
			return errors.Errorf("%d overflows uint%d", x, bits)
		}
	}
	return nil
}

func convert[T, U ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64](values []U) []T {
	out := make([]T, len(values))
	for i, x := range values {
		out[i] = T(x)
	}
	return out
}

func (v *Value) encode(out *coder.Output) {
	switch v.Kind {
	case KindBool:
		out.AddBool(v.Bool)
	case KindInt8:
		out.AddInt8(int8(v.Int))
	case KindUint8:
		out.AddUint8(uint8(v.Uint))
	case KindInt16:
		out.AddInt16(int16(v.Int))
	case KindUint16:
		out.AddUint16(uint16(v.Uint))
	case KindInt32:
		out.AddInt32(int32(v.Int))
	case KindUint32:
		out.AddUint32(uint32(v.Uint))
	case KindInt64:
		out.AddInt64(v.Int)
	case KindUint64:
		out.AddUint64(v.Uint)
	case KindSized:
		out.AddSizedInt64(v.Int, v.Bits)
	case KindUsized:
		out.AddSizedUint64(v.Uint, v.Bits)
	case KindVar:
		out.AddVarUint64(v.Uint)
	case KindString:
		out.AddString(v.Str)
	case KindBools:
		out.AddBoolSlice(v.Bools)
	case KindInt8s:
		out.AddInt8Slice(convert[int8](v.Ints))
	case KindUint8s:
		out.AddUint8Slice(convert[uint8](v.Uints))
	case KindInt16s:
		out.AddInt16Slice(convert[int16](v.Ints))
	case KindUint16s:
		out.AddUint16Slice(convert[uint16](v.Uints))
	case KindInt32s:
		out.AddInt32Slice(convert[int32](v.Ints))
	case KindUint32s:
		out.AddUint32Slice(convert[uint32](v.Uints))
	case KindInt64s:
		out.AddInt64Slice(v.Ints)
	case KindUint64s:
		out.AddUint64Slice(v.Uints)
	default:
		panic(fmt.Sprintf("script: unknown kind %q", v.Kind))
	}
}

// decode reads a value of the same kind (and width) as v.
func (v *Value) decode(in *coder.Input, maxStringLength int) (Value, error) {
	got := Value{Kind: v.Kind, Bits: v.Bits}
	var err error
	switch v.Kind {
	case KindBool:
		got.Bool, err = in.ReadBool()
	case KindInt8:
		var x int8
		x, err = in.ReadInt8()
		got.Int = int64(x)
	case KindUint8:
		var x uint8
		x, err = in.ReadUint8()
		got.Uint = uint64(x)
	case KindInt16:
		var x int16
		x, err = in.ReadInt16()
		got.Int = int64(x)
	case KindUint16:
		var x uint16
		x, err = in.ReadUint16()
		got.Uint = uint64(x)
	case KindInt32:
		var x int32
		x, err = in.ReadInt32()
		got.Int = int64(x)
	case KindUint32:
		var x uint32
		x, err = in.ReadUint32()
		got.Uint = uint64(x)
	case KindInt64:
		got.Int, err = in.ReadInt64()
	case KindUint64:
		got.Uint, err = in.ReadUint64()
	case KindSized:
		got.Int, err = in.ReadSizedInt64(v.Bits)
	case KindUsized:
		got.Uint, err = in.ReadSizedUint64(v.Bits)
	case KindVar:
		got.Uint, err = in.ReadVarUint64()
	case KindString:
		got.Str, err = in.ReadString(maxStringLength)
	case KindBools:
		got.Bools, err = in.ReadBoolSlice()
	case KindInt8s:
		var xs []int8
		xs, err = in.ReadInt8Slice()
		got.Ints = convert[int64](xs)
	case KindUint8s:
		var xs []uint8
		xs, err = in.ReadUint8Slice()
		got.Uints = convert[uint64](xs)
	case KindInt16s:
		var xs []int16
		xs, err = in.ReadInt16Slice()
		got.Ints = convert[int64](xs)
	case KindUint16s:
		var xs []uint16
		xs, err = in.ReadUint16Slice()
		got.Uints = convert[uint64](xs)
	case KindInt32s:
		var xs []int32
		xs, err = in.ReadInt32Slice()
		got.Ints = convert[int64](xs)
	case KindUint32s:
		var xs []uint32
		xs, err = in.ReadUint32Slice()
		got.Uints = convert[uint64](xs)
	case KindInt64s:
		got.Ints, err = in.ReadInt64Slice()
	case KindUint64s:
		got.Uints, err = in.ReadUint64Slice()
	default:
		err = errors.Errorf("unknown kind %q", v.Kind)
	}
	return got, err
}
