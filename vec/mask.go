package vec

import "math/bits"

// Mask128 is the boolean lane mask of a Vec128: bit i is set iff lane i
// of the vector it was extracted from had its most significant bit set.
// Bit ordering matches byte-offset ordering (bit 0 = lowest address).
type Mask128 uint16

// Mask256 is the boolean lane mask of a Vec256.
type Mask256 uint32

// TrailingZeros returns the index of the lowest set lane bit, or 16 (the
// vector width) when the mask is empty.
func (m Mask128) TrailingZeros() int {
	return bits.TrailingZeros16(uint16(m))
}

// OnesCount returns the number of set lane bits, 0..16.
func (m Mask128) OnesCount() int {
	return bits.OnesCount16(uint16(m))
}

// TrailingZeros returns the index of the lowest set lane bit, or 32 (the
// vector width) when the mask is empty.
func (m Mask256) TrailingZeros() int {
	return bits.TrailingZeros32(uint32(m))
}

// OnesCount returns the number of set lane bits, 0..32.
func (m Mask256) OnesCount() int {
	return bits.OnesCount32(uint32(m))
}
