package cursor

import "sutext.github.io/bithelper/converter"

// Reader walks a packed buffer without modifying it while reading. On
// Terminate an owned reader clears and drops its buffer; a borrowed one only
// moves to the end.
type Reader[T Unit] struct {
	buf    []T
	index  int
	offset uint8
	owned  bool
}

func NewReader[T Unit](buf []T, start int, owned bool) *Reader[T] {
	return &Reader[T]{buf: buf, index: start, owned: owned}
}

func (r *Reader[T]) ReadBool() bool {
	v := converter.Int8ToOctet(int8(r.buf[r.index]))&(0x80>>r.offset) != 0
	r.offset++
	if r.offset == 8 {
		r.offset = 0
		r.index++
	}
	return v
}

// ReadInt8 joins the tail of the current byte with the head of the next when
// the reader is not byte aligned.
func (r *Reader[T]) ReadInt8() int8 {
	if r.offset == 0 {
		v := int8(r.buf[r.index])
		r.index++
		return v
	}
	head := converter.Int8ToOctet(int8(r.buf[r.index]))
	r.index++
	tail := converter.Int8ToOctet(int8(r.buf[r.index]))
	return converter.OctetToInt8(head<<r.offset | tail>>(8-r.offset))
}

// Position is the number of bits consumed, counted from the start of the buffer.
func (r *Reader[T]) Position() int {
	return r.index*8 + int(r.offset)
}

// Size is the number of bits in the buffer.
func (r *Reader[T]) Size() int {
	return len(r.buf) * 8
}

// Seek moves the cursor to bit pos, counted like Position.
func (r *Reader[T]) Seek(pos int) {
	r.index, r.offset = pos/8, uint8(pos%8)
}

func (r *Reader[T]) RemainingBits() int {
	return max(r.Size()-r.Position(), 0)
}

func (r *Reader[T]) Terminate() {
	if r.owned {
		clear(r.buf)
		r.buf = nil
		r.index, r.offset = 0, 0
		return
	}
	r.index, r.offset = len(r.buf), 0
}

// BoolReader reads one bit per element of a borrowed slice.
type BoolReader struct {
	buf   []bool
	index int
}

func NewBoolReader(buf []bool) *BoolReader {
	return &BoolReader{buf: buf}
}

func (r *BoolReader) ReadBool() bool {
	v := r.buf[r.index]
	r.index++
	return v
}

func (r *BoolReader) ReadInt8() int8 {
	var bools [8]bool
	copy(bools[:], r.buf[r.index:r.index+8])
	r.index += 8
	return converter.BoolsToInt8(bools)
}

func (r *BoolReader) Position() int {
	return r.index
}

func (r *BoolReader) Size() int {
	return len(r.buf)
}

func (r *BoolReader) Seek(pos int) {
	r.index = pos
}

func (r *BoolReader) RemainingBits() int {
	return max(len(r.buf)-r.index, 0)
}

func (r *BoolReader) Terminate() {
	r.index = len(r.buf)
}
