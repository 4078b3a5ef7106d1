package coder

import "sutext.github.io/bithelper/internal/cursor"

// Int8Output writes into an owned, growable []int8.
type Int8Output struct {
	*Output
	w *cursor.Writer[int8]
}

func NewInt8Output(capacity int) *Int8Output {
	w := cursor.NewWriter[int8](capacity)
	return &Int8Output{Output: NewOutput(w), w: w}
}

// Int8s returns the written bytes. A trailing partial byte is included with
// its unassigned bits false.
func (o *Int8Output) Int8s() []int8 {
	return o.w.Data()
}

// Uint8Output writes into an owned, growable []byte. It produces exactly the
// bytes an Int8Output produces for the same calls.
type Uint8Output struct {
	*Output
	w *cursor.Writer[uint8]
}

func NewUint8Output(capacity int) *Uint8Output {
	w := cursor.NewWriter[uint8](capacity)
	return &Uint8Output{Output: NewOutput(w), w: w}
}

func (o *Uint8Output) Bytes() []byte {
	return o.w.Data()
}

// BoolOutput keeps one bool per written bit.
type BoolOutput struct {
	*Output
	w *cursor.BoolWriter
}

func NewBoolOutput(capacity int) *BoolOutput {
	w := cursor.NewBoolWriter(capacity)
	return &BoolOutput{Output: NewOutput(w), w: w}
}

func (o *BoolOutput) Bools() []bool {
	return o.w.Data()
}

// NewInt8Input reads data, which it owns from now on: Terminate clears it.
func NewInt8Input(data []int8) *Input {
	return NewInt8InputAt(data, 0)
}

// NewInt8InputAt is NewInt8Input starting at data[start].
func NewInt8InputAt(data []int8, start int) *Input {
	return NewInput(cursor.NewReader(data, start, true))
}

// NewUint8Input reads data, which it owns from now on: Terminate clears it.
func NewUint8Input(data []byte) *Input {
	return NewUint8InputAt(data, 0)
}

func NewUint8InputAt(data []byte, start int) *Input {
	return NewInput(cursor.NewReader(data, start, true))
}

// NewUint8RefInput reads data without taking ownership. Terminate leaves data
// untouched.
func NewUint8RefInput(data []byte) *Input {
	return NewUint8RefInputAt(data, 0)
}

func NewUint8RefInputAt(data []byte, start int) *Input {
	return NewInput(cursor.NewReader(data, start, false))
}

// NewBoolInput reads the bits kept by a BoolOutput.
func NewBoolInput(data []bool) *Input {
	return NewInput(cursor.NewBoolReader(data))
}
