// Package cursor maps logical bit positions onto packed byte buffers.
package cursor

import (
	"slices"

	"sutext.github.io/bithelper/converter"
)

// Unit is a byte as either representation. Both hold identical bit patterns.
type Unit interface {
	~int8 | ~uint8
}

// Writer appends bits to a growable buffer. Once any slot of a byte has been
// assigned the byte is present as the last element of the buffer, with the
// unassigned slots false.
type Writer[T Unit] struct {
	buf     []T
	pending uint8 // octet of the last byte
	offset  uint8 // assigned slots of the last byte, 0 when aligned
}

func NewWriter[T Unit](capacity int) *Writer[T] {
	return &Writer[T]{buf: make([]T, 0, max(capacity, 0))}
}

func (w *Writer[T]) WriteBool(v bool) {
	if w.offset == 0 {
		w.buf = append(w.buf, 0)
		w.pending = 0
	}
	if v {
		w.pending |= 0x80 >> w.offset
	}
	w.buf[len(w.buf)-1] = T(converter.OctetToInt8(w.pending))
	w.offset = (w.offset + 1) & 7
}

// WriteInt8 splits v over the tail of the last byte and the head of a new one
// when the writer is not byte aligned.
func (w *Writer[T]) WriteInt8(v int8) {
	if w.offset == 0 {
		w.buf = append(w.buf, T(v))
		return
	}
	o := converter.Int8ToOctet(v)
	w.pending |= o >> w.offset
	w.buf[len(w.buf)-1] = T(converter.OctetToInt8(w.pending))
	w.pending = o << (8 - w.offset)
	w.buf = append(w.buf, T(converter.OctetToInt8(w.pending)))
}

// Reserve makes room for at least extraBits more bits without reallocation.
// Growth follows append, so repeated small reservations stay amortized.
func (w *Writer[T]) Reserve(extraBits int) {
	free := w.RemainingBits()
	if extraBits <= free {
		return
	}
	extraBytes := (extraBits - free + 7) / 8
	w.buf = slices.Grow(w.buf, cap(w.buf)-len(w.buf)+extraBytes)
}

// RemainingBits is the number of bits that fit before the buffer must grow.
func (w *Writer[T]) RemainingBits() int {
	free := (cap(w.buf) - len(w.buf)) * 8
	if w.offset != 0 {
		free += 8 - int(w.offset)
	}
	return free
}

// Position is the number of bits written so far.
func (w *Writer[T]) Position() int {
	if w.offset == 0 {
		return len(w.buf) * 8
	}
	return (len(w.buf)-1)*8 + int(w.offset)
}

func (w *Writer[T]) Data() []T {
	return w.buf
}

// Terminate releases the slack capacity of the buffer.
func (w *Writer[T]) Terminate() {
	if cap(w.buf) == len(w.buf) {
		return
	}
	buf := make([]T, len(w.buf))
	copy(buf, w.buf)
	w.buf = buf
}

// BoolWriter stores one bit per element.
type BoolWriter struct {
	buf []bool
}

func NewBoolWriter(capacity int) *BoolWriter {
	return &BoolWriter{buf: make([]bool, 0, max(capacity, 0))}
}

func (w *BoolWriter) WriteBool(v bool) {
	w.buf = append(w.buf, v)
}

func (w *BoolWriter) WriteInt8(v int8) {
	bools := converter.Int8ToBools(v)
	w.buf = append(w.buf, bools[:]...)
}

func (w *BoolWriter) Reserve(extraBits int) {
	w.buf = slices.Grow(w.buf, extraBits)
}

func (w *BoolWriter) RemainingBits() int {
	return cap(w.buf) - len(w.buf)
}

func (w *BoolWriter) Position() int {
	return len(w.buf)
}

func (w *BoolWriter) Data() []bool {
	return w.buf
}

func (w *BoolWriter) Terminate() {
	w.buf = slices.Clip(w.buf)
}
