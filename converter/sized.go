package converter

import "math/bits"

// MinimalBits returns the smallest k such that 2^k > v. It is 0 for 0 and 64
// when the top bit of v is set.
func MinimalBits(v uint64) int {
	return bits.Len64(v)
}

// FitsUint64 reports whether v can be stored in size bits.
func FitsUint64(v uint64, size int) bool {
	if size < 0 || size > 64 {
		return false
	}
	return size == 64 || v>>uint(size) == 0
}

// FitsInt64 reports whether v lies in [-2^(size-1), 2^(size-1)-1]. A size of 0
// only holds 0.
func FitsInt64(v int64, size int) bool {
	switch {
	case size < 0 || size > 64:
		return false
	case size == 0:
		return v == 0
	case size == 64:
		return true
	}
	limit := int64(1) << uint(size-1)
	return v >= -limit && v < limit
}

// SizedUint64ToBools stores v in dest[start:start+size], most significant bit first.
func SizedUint64ToBools(v uint64, size int, dest []bool, start int) {
	for i := 0; i < size; i++ {
		dest[start+i] = v>>uint(size-1-i)&1 == 1
	}
}

// BoolsToSizedUint64 is the inverse of SizedUint64ToBools.
func BoolsToSizedUint64(size int, src []bool, start int) uint64 {
	var v uint64
	for i := 0; i < size; i++ {
		if src[start+i] {
			v |= 1 << uint(size-1-i)
		}
	}
	return v
}

// SizedInt64ToBools stores v in dest[start:start+size]: size-1 magnitude bits,
// most significant first, followed by the sign bit (true for non-negative).
// Negative values store the magnitude -v-1. With size 8 this is the octet layout.
func SizedInt64ToBools(v int64, size int, dest []bool, start int) {
	if size == 0 {
		return
	}
	magnitude, sign := uint64(v), true
	if v < 0 {
		magnitude, sign = uint64(^v), false
	}
	SizedUint64ToBools(magnitude, size-1, dest, start)
	dest[start+size-1] = sign
}

// BoolsToSizedInt64 is the inverse of SizedInt64ToBools.
func BoolsToSizedInt64(size int, src []bool, start int) int64 {
	if size == 0 {
		return 0
	}
	magnitude := int64(BoolsToSizedUint64(size-1, src, start))
	if src[start+size-1] {
		return magnitude
	}
	return ^magnitude
}
