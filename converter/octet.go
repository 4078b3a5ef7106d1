package converter

// An octet is the slot-ordered view of one stream byte: slot 0 sits in the most
// significant bit, slot 7 in the least. Slots 0-6 carry the magnitude bits
// (64 down to 1) and slot 7 carries the sign, set for non-negative bytes.
// Negative bytes store the magnitude -v-1, so every octet maps to exactly one int8.

// Int8ToOctet returns the slot-ordered bits of v.
func Int8ToOctet(v int8) uint8 {
	if v < 0 {
		return (^uint8(v) & 0x7f) << 1
	}
	return uint8(v)<<1 | 1
}

// OctetToInt8 is the inverse of Int8ToOctet.
func OctetToInt8(o uint8) int8 {
	magnitude := o >> 1
	if o&1 == 0 {
		return int8(^magnitude)
	}
	return int8(magnitude)
}

// BoolsToInt8 packs 8 ordered booleans into one signed byte.
func BoolsToInt8(bools [8]bool) int8 {
	var o uint8
	for i, b := range bools {
		if b {
			o |= 0x80 >> i
		}
	}
	return OctetToInt8(o)
}

// Int8ToBools unpacks a signed byte into the 8 booleans BoolsToInt8 packed.
func Int8ToBools(v int8) [8]bool {
	var bools [8]bool
	o := Int8ToOctet(v)
	for i := range bools {
		bools[i] = o&(0x80>>i) != 0
	}
	return bools
}

// BoolsToUint8 packs 8 booleans into a plain unsigned byte, first boolean in the
// most significant bit. This layout is not the stream layout.
func BoolsToUint8(bools [8]bool) uint8 {
	var v uint8
	for i, b := range bools {
		if b {
			v |= 0x80 >> i
		}
	}
	return v
}

func Uint8ToBools(v uint8) [8]bool {
	var bools [8]bool
	for i := range bools {
		bools[i] = v&(0x80>>i) != 0
	}
	return bools
}
