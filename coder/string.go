package coder

import (
	"math"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"sutext.github.io/bithelper/converter"
)

// Strings travel as UTF-16 code units so that readers in other languages see
// the same units. Layout:
//
//	prefix   byte    0 for nil, length+1 below 254, 255 for an int32 length
//	length   int32   only after a 255 prefix
//	min      uint16  smallest code unit, absent for the empty string
//	width    5 bits  bits needed for the largest unit minus min
//	units    width bits each, unit minus min, absent when width is 0
const (
	nilStringPrefix  = 0
	longStringPrefix = 255
	shortStringLimit = 254
	unitWidthField   = 5
	maxUnitWidth     = 16
)

type encodedString struct {
	units []uint16
	min   uint16
	width int
}

func encodeString(s string) encodedString {
	e := encodedString{units: utf16.Encode([]rune(s))}
	if len(e.units) == 0 {
		return e
	}
	lo, hi := e.units[0], e.units[0]
	for _, u := range e.units[1:] {
		lo, hi = min(lo, u), max(hi, u)
	}
	e.min = lo
	e.width = converter.MinimalBits(uint64(hi - lo))
	return e
}

func (e encodedString) bits() int {
	n := 8
	if len(e.units) >= shortStringLimit {
		n += 32
	}
	if len(e.units) > 0 {
		n += 16 + unitWidthField + e.width*len(e.units)
	}
	return n
}

func (o *Output) addDirectEncoded(e encodedString) {
	if len(e.units) < shortStringLimit {
		o.AddDirectUint8(uint8(len(e.units) + 1))
	} else {
		o.AddDirectUint8(longStringPrefix)
		o.AddDirectInt32(int32(len(e.units)))
	}
	if len(e.units) == 0 {
		return
	}
	o.AddDirectUint16(e.min)
	o.AddDirectSizedUint64(uint64(e.width), unitWidthField)
	if e.width == 0 {
		return
	}
	for _, u := range e.units {
		o.AddDirectSizedUint64(uint64(u-e.min), e.width)
	}
}

// AddDirectString writes s, or the nil marker when s is nil. s should be valid
// UTF-8: each invalid byte is written as U+FFFD, as a []rune conversion does,
// and reads back as U+FFFD.
func (o *Output) AddDirectString(s *string) {
	if s == nil {
		o.AddDirectUint8(nilStringPrefix)
		return
	}
	o.addDirectEncoded(encodeString(*s))
}

// AddString is the checked AddDirectString, with the same UTF-8 contract.
func (o *Output) AddString(s *string) {
	if s == nil {
		o.AddUint8(nilStringPrefix)
		return
	}
	e := encodeString(*s)
	o.sink.Reserve(e.bits())
	o.addDirectEncoded(e)
}

// ReadString reads a string written by AddString. A nil result without error
// means a nil string was written. Declared lengths above maxLength code units
// are rejected with a *StringLengthError before anything is allocated for them.
// Units that do not form valid UTF-16 give ErrInvalidString. On any error the
// read position is restored.
func (in *Input) ReadString(maxLength int) (value *string, err error) {
	defer in.rewindOnError(in.Position(), &err)
	prefix, err := in.ReadUint8()
	if err != nil {
		return nil, err
	}
	if prefix == nilStringPrefix {
		return nil, nil
	}
	length := int(prefix) - 1
	if prefix == longStringPrefix {
		n, err := in.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, &StringLengthError{ReadLength: n}
		}
		length = int(n)
	}
	if length == 0 {
		empty := ""
		return &empty, nil
	}
	if length > maxLength {
		return nil, &StringLengthError{ReadLength: int32(length), MaxLength: maxLength}
	}
	if err := in.EnsureExtraCapacity(16 + unitWidthField); err != nil {
		return nil, err
	}
	lo := in.ReadDirectUint16()
	width := int(in.ReadDirectSizedUint64(unitWidthField))
	if width > maxUnitWidth {
		return nil, ErrInvalidString
	}
	if err := in.EnsureExtraCapacity(width * length); err != nil {
		return nil, err
	}
	units := make([]uint16, length)
	for i := range units {
		unit := uint64(lo) + in.ReadDirectSizedUint64(width)
		if unit > math.MaxUint16 {
			return nil, ErrInvalidString
		}
		units[i] = uint16(unit)
	}
	decoded, err := decodeUnits(units)
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}

// decodeUnits rejects unpaired surrogates instead of substituting U+FFFD.
func decodeUnits(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if i+1 == len(units) {
				return "", ErrInvalidString
			}
			r = utf16.DecodeRune(r, rune(units[i+1]))
			if r == utf8.RuneError {
				return "", ErrInvalidString
			}
			i++
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
