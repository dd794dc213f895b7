// Copyright 2025 strider Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

// Word-wise kernels shared by the 128- and 256-bit operations. A vector
// word holds eight lanes, lane i in bits 8i..8i+7, so the same tricks
// apply at either width by iterating words.

const (
	lowBytes  = 0x0101010101010101 // 0x01 in every lane
	sevenBits = 0x7f7f7f7f7f7f7f7f // low seven bits of every lane

	// laneMagic gathers the per-lane bits left by (w>>7)&lowBytes into
	// the top byte of the product: lane i's bit lands at bit 56+i. The
	// contributing partial products all occupy distinct bit positions,
	// so the sum never carries and the packing is exact.
	laneMagic = 0x0102040810204080
)

// broadcastWord replicates b into all eight lanes of a word.
func broadcastWord(b byte) uint64 {
	return uint64(b) * lowBytes
}

// cmpEqWord returns 0xFF in every lane where a and b agree and 0x00
// elsewhere. The zero-byte detection is exact (no borrow artifacts from
// neighboring lanes), so masks derived from the result support full
// popcounts rather than only first-set-bit queries.
func cmpEqWord(a, b uint64) uint64 {
	x := a ^ b
	m := ^(((x & sevenBits) + sevenBits) | x | sevenBits)
	// m has 0x80 in the equal lanes; widen to 0xFF.
	return (m >> 7) * 0xFF
}

// moveMaskWord packs the most significant bit of each lane of w into the
// low eight bits of the result, bit 0 = lane 0.
func moveMaskWord(w uint64) uint32 {
	return uint32((((w >> 7) & lowBytes) * laneMagic) >> 56)
}
