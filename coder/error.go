package coder

import "fmt"

// Error represents an error code. The structured errors below match their code
// with errors.Is.
type Error uint8

const (
	ErrCapacity Error = iota + 1
	ErrStringLength
	ErrInvalidString
	ErrNegativeLength
)

func (e Error) Error() string {
	switch e {
	case ErrCapacity:
		return "not enough input data"
	case ErrStringLength:
		return "invalid string length"
	case ErrInvalidString:
		return "attempted to read a string with an invalid encoding"
	case ErrNegativeLength:
		return "negative slice length"
	default:
		return "unknown error"
	}
}

// CapacityError is returned when more bits are requested than the input holds.
// All fields count bits.
type CapacityError struct {
	Current   int
	Max       int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("current capacity is %d and maximum capacity is %d, but %d more was requested", e.Current, e.Max, e.Requested)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// Shortfall is the number of requested bits the input could not provide.
func (e *CapacityError) Shortfall() int {
	return e.Requested - (e.Max - e.Current)
}

// StringLengthError is returned when a decoded string length is negative or
// larger than the maximum the caller allows.
type StringLengthError struct {
	ReadLength int32
	MaxLength  int
}

func (e *StringLengthError) Negative() bool {
	return e.ReadLength < 0
}

func (e *StringLengthError) Error() string {
	if e.Negative() {
		return fmt.Sprintf("read negative string length (%d)", e.ReadLength)
	}
	return fmt.Sprintf("read string length %d, but the maximum allowed length is %d", e.ReadLength, e.MaxLength)
}

func (e *StringLengthError) Is(target error) bool {
	return target == ErrStringLength
}
