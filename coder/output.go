package coder

import "sutext.github.io/bithelper/converter"

// Sink is the primitive layer an Output writes through. WriteBool and WriteInt8
// never check capacity; Reserve must have been called first for the bits they
// consume. Reserve never fails for a growable backing.
type Sink interface {
	WriteBool(v bool)
	WriteInt8(v int8)
	Reserve(extraBits int)
	Position() int
	Terminate()
}

// Output appends values to a bit stream. Values must be read back by an Input
// in exactly the order they were added: the stream carries no type tags, so a
// reader that gets out of step is only noticed through a later capacity or
// string error.
//
// Every AddX has an AddDirectX twin that skips the capacity reservation. Direct
// calls are only valid after EnsureExtraCapacity covered the bits they write.
// An Output is not safe for concurrent use.
type Output struct {
	sink Sink
}

func NewOutput(sink Sink) *Output {
	return &Output{sink: sink}
}

func (o *Output) Sink() Sink {
	return o.sink
}

// EnsureExtraCapacity guarantees that extraBits more bits can be added with the
// direct methods. It may grow the backing buffer but never shrinks it.
func (o *Output) EnsureExtraCapacity(extraBits int) {
	o.sink.Reserve(extraBits)
}

// Position is the number of bits written so far.
func (o *Output) Position() int {
	return o.sink.Position()
}

// Terminate releases the slack of the backing buffer.
func (o *Output) Terminate() {
	o.sink.Terminate()
}

func (o *Output) AddDirectBool(v bool) {
	o.sink.WriteBool(v)
}

func (o *Output) AddBool(v bool) {
	o.sink.Reserve(1)
	o.sink.WriteBool(v)
}

func (o *Output) AddDirectInt8(v int8) {
	o.sink.WriteInt8(v)
}

func (o *Output) AddInt8(v int8) {
	o.sink.Reserve(8)
	o.sink.WriteInt8(v)
}

func (o *Output) AddDirectUint8(v uint8) {
	o.sink.WriteInt8(int8(v))
}

func (o *Output) AddUint8(v uint8) {
	o.sink.Reserve(8)
	o.sink.WriteInt8(int8(v))
}

func (o *Output) AddDirectInt16(v int16) {
	for _, b := range converter.Int16ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddInt16(v int16) {
	o.sink.Reserve(16)
	o.AddDirectInt16(v)
}

func (o *Output) AddDirectUint16(v uint16) {
	for _, b := range converter.Uint16ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddUint16(v uint16) {
	o.sink.Reserve(16)
	o.AddDirectUint16(v)
}

func (o *Output) AddDirectInt32(v int32) {
	for _, b := range converter.Int32ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddInt32(v int32) {
	o.sink.Reserve(32)
	o.AddDirectInt32(v)
}

func (o *Output) AddDirectUint32(v uint32) {
	for _, b := range converter.Uint32ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddUint32(v uint32) {
	o.sink.Reserve(32)
	o.AddDirectUint32(v)
}

func (o *Output) AddDirectInt64(v int64) {
	for _, b := range converter.Int64ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddInt64(v int64) {
	o.sink.Reserve(64)
	o.AddDirectInt64(v)
}

func (o *Output) AddDirectUint64(v uint64) {
	for _, b := range converter.Uint64ToInt8s(v) {
		o.sink.WriteInt8(b)
	}
}

func (o *Output) AddUint64(v uint64) {
	o.sink.Reserve(64)
	o.AddDirectUint64(v)
}
