package coder

// Bulk writes. AddXs writes every element, AddSomeXs writes values[start:start+count]
// and AddXSlice prefixes the elements with their count as an int32 so the reader
// does not need it out of band.

func (o *Output) AddDirectBools(values []bool) {
	for _, v := range values {
		o.AddDirectBool(v)
	}
}

func (o *Output) AddBools(values []bool) {
	o.sink.Reserve(len(values))
	o.AddDirectBools(values)
}

func (o *Output) AddSomeDirectBools(values []bool, start, count int) {
	o.AddDirectBools(values[start : start+count])
}

func (o *Output) AddSomeBools(values []bool, start, count int) {
	o.AddBools(values[start : start+count])
}

func (o *Output) AddDirectBoolSlice(values []bool) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectBools(values)
}

func (o *Output) AddBoolSlice(values []bool) {
	o.sink.Reserve(32 + len(values))
	o.AddDirectBoolSlice(values)
}

func (o *Output) AddDirectInt8s(values []int8) {
	for _, v := range values {
		o.AddDirectInt8(v)
	}
}

func (o *Output) AddInt8s(values []int8) {
	o.sink.Reserve(8 * len(values))
	o.AddDirectInt8s(values)
}

func (o *Output) AddSomeDirectInt8s(values []int8, start, count int) {
	o.AddDirectInt8s(values[start : start+count])
}

func (o *Output) AddSomeInt8s(values []int8, start, count int) {
	o.AddInt8s(values[start : start+count])
}

func (o *Output) AddDirectInt8Slice(values []int8) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectInt8s(values)
}

func (o *Output) AddInt8Slice(values []int8) {
	o.sink.Reserve(32 + 8*len(values))
	o.AddDirectInt8Slice(values)
}

func (o *Output) AddDirectUint8s(values []uint8) {
	for _, v := range values {
		o.AddDirectUint8(v)
	}
}

func (o *Output) AddUint8s(values []uint8) {
	o.sink.Reserve(8 * len(values))
	o.AddDirectUint8s(values)
}

func (o *Output) AddSomeDirectUint8s(values []uint8, start, count int) {
	o.AddDirectUint8s(values[start : start+count])
}

func (o *Output) AddSomeUint8s(values []uint8, start, count int) {
	o.AddUint8s(values[start : start+count])
}

func (o *Output) AddDirectUint8Slice(values []uint8) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectUint8s(values)
}

func (o *Output) AddUint8Slice(values []uint8) {
	o.sink.Reserve(32 + 8*len(values))
	o.AddDirectUint8Slice(values)
}

func (o *Output) AddDirectInt16s(values []int16) {
	for _, v := range values {
		o.AddDirectInt16(v)
	}
}

func (o *Output) AddInt16s(values []int16) {
	o.sink.Reserve(16 * len(values))
	o.AddDirectInt16s(values)
}

func (o *Output) AddSomeDirectInt16s(values []int16, start, count int) {
	o.AddDirectInt16s(values[start : start+count])
}

func (o *Output) AddSomeInt16s(values []int16, start, count int) {
	o.AddInt16s(values[start : start+count])
}

func (o *Output) AddDirectInt16Slice(values []int16) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectInt16s(values)
}

func (o *Output) AddInt16Slice(values []int16) {
	o.sink.Reserve(32 + 16*len(values))
	o.AddDirectInt16Slice(values)
}

func (o *Output) AddDirectUint16s(values []uint16) {
	for _, v := range values {
		o.AddDirectUint16(v)
	}
}

func (o *Output) AddUint16s(values []uint16) {
	o.sink.Reserve(16 * len(values))
	o.AddDirectUint16s(values)
}

func (o *Output) AddSomeDirectUint16s(values []uint16, start, count int) {
	o.AddDirectUint16s(values[start : start+count])
}

func (o *Output) AddSomeUint16s(values []uint16, start, count int) {
	o.AddUint16s(values[start : start+count])
}

func (o *Output) AddDirectUint16Slice(values []uint16) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectUint16s(values)
}

func (o *Output) AddUint16Slice(values []uint16) {
	o.sink.Reserve(32 + 16*len(values))
	o.AddDirectUint16Slice(values)
}

func (o *Output) AddDirectInt32s(values []int32) {
	for _, v := range values {
		o.AddDirectInt32(v)
	}
}

func (o *Output) AddInt32s(values []int32) {
	o.sink.Reserve(32 * len(values))
	o.AddDirectInt32s(values)
}

func (o *Output) AddSomeDirectInt32s(values []int32, start, count int) {
	o.AddDirectInt32s(values[start : start+count])
}

func (o *Output) AddSomeInt32s(values []int32, start, count int) {
	o.AddInt32s(values[start : start+count])
}

func (o *Output) AddDirectInt32Slice(values []int32) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectInt32s(values)
}

func (o *Output) AddInt32Slice(values []int32) {
	o.sink.Reserve(32 + 32*len(values))
	o.AddDirectInt32Slice(values)
}

func (o *Output) AddDirectUint32s(values []uint32) {
	for _, v := range values {
		o.AddDirectUint32(v)
	}
}

func (o *Output) AddUint32s(values []uint32) {
	o.sink.Reserve(32 * len(values))
	o.AddDirectUint32s(values)
}

func (o *Output) AddSomeDirectUint32s(values []uint32, start, count int) {
	o.AddDirectUint32s(values[start : start+count])
}

func (o *Output) AddSomeUint32s(values []uint32, start, count int) {
	o.AddUint32s(values[start : start+count])
}

func (o *Output) AddDirectUint32Slice(values []uint32) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectUint32s(values)
}

func (o *Output) AddUint32Slice(values []uint32) {
	o.sink.Reserve(32 + 32*len(values))
	o.AddDirectUint32Slice(values)
}

func (o *Output) AddDirectInt64s(values []int64) {
	for _, v := range values {
		o.AddDirectInt64(v)
	}
}

func (o *Output) AddInt64s(values []int64) {
	o.sink.Reserve(64 * len(values))
	o.AddDirectInt64s(values)
}

func (o *Output) AddSomeDirectInt64s(values []int64, start, count int) {
	o.AddDirectInt64s(values[start : start+count])
}

func (o *Output) AddSomeInt64s(values []int64, start, count int) {
	o.AddInt64s(values[start : start+count])
}

func (o *Output) AddDirectInt64Slice(values []int64) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectInt64s(values)
}

func (o *Output) AddInt64Slice(values []int64) {
	o.sink.Reserve(32 + 64*len(values))
	o.AddDirectInt64Slice(values)
}

func (o *Output) AddDirectUint64s(values []uint64) {
	for _, v := range values {
		o.AddDirectUint64(v)
	}
}

func (o *Output) AddUint64s(values []uint64) {
	o.sink.Reserve(64 * len(values))
	o.AddDirectUint64s(values)
}

func (o *Output) AddSomeDirectUint64s(values []uint64, start, count int) {
	o.AddDirectUint64s(values[start : start+count])
}

func (o *Output) AddSomeUint64s(values []uint64, start, count int) {
	o.AddUint64s(values[start : start+count])
}

func (o *Output) AddDirectUint64Slice(values []uint64) {
	o.AddDirectInt32(int32(len(values)))
	o.AddDirectUint64s(values)
}

func (o *Output) AddUint64Slice(values []uint64) {
	o.sink.Reserve(32 + 64*len(values))
	o.AddDirectUint64Slice(values)
}
