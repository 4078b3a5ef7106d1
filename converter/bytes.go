// Package converter holds the stateless conversions the bit streams are built on:
// fixed-width integers to and from little-endian int8 sequences, boolean octets to
// and from bytes, and the sized-integer bit layout.
package converter

// Int8sToInt16 composes an int16 from its two bytes, least significant first.
func Int8sToInt16(b [2]int8) int16 {
	return int16(b[1])<<8 | int16(uint8(b[0]))
}

// Int16ToInt8s decomposes v into its two bytes, least significant first.
func Int16ToInt8s(v int16) [2]int8 {
	return [2]int8{int8(v), int8(v >> 8)}
}

func Int8sToUint16(b [2]int8) uint16 {
	return uint16(Int8sToInt16(b))
}

func Uint16ToInt8s(v uint16) [2]int8 {
	return Int16ToInt8s(int16(v))
}

// Int8sToInt32 composes an int32 from its four bytes, least significant first.
func Int8sToInt32(b [4]int8) int32 {
	return int32(b[3])<<24 | int32(uint8(b[2]))<<16 | int32(uint8(b[1]))<<8 | int32(uint8(b[0]))
}

// Int32ToInt8s decomposes v into its four bytes, least significant first.
func Int32ToInt8s(v int32) [4]int8 {
	return [4]int8{int8(v), int8(v >> 8), int8(v >> 16), int8(v >> 24)}
}

func Int8sToUint32(b [4]int8) uint32 {
	return uint32(Int8sToInt32(b))
}

func Uint32ToInt8s(v uint32) [4]int8 {
	return Int32ToInt8s(int32(v))
}

// Int8sToInt64 composes an int64 from its eight bytes, least significant first.
func Int8sToInt64(b [8]int8) int64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(uint8(b[i]))
	}
	return int64(v)
}

// Int64ToInt8s decomposes v into its eight bytes, least significant first.
func Int64ToInt8s(v int64) [8]int8 {
	var b [8]int8
	for i := range b {
		b[i] = int8(v >> (8 * i))
	}
	return b
}

func Int8sToUint64(b [8]int8) uint64 {
	return uint64(Int8sToInt64(b))
}

func Uint64ToInt8s(v uint64) [8]int8 {
	return Int64ToInt8s(int64(v))
}
