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

// MoveMask128 extracts the most significant bit of each lane of v and
// packs the 16 bits into a mask at the matching bit positions. Feed it a
// CmpEq128 result to obtain an equality mask.
func MoveMask128(v Vec128) Mask128 {
	return Mask128(moveMaskWord(v.w[0]) | moveMaskWord(v.w[1])<<8)
}

// MoveMask256 extracts the most significant bit of each lane of v and
// packs the 32 bits into a mask at the matching bit positions.
func MoveMask256(v Vec256) Mask256 {
	return Mask256(moveMaskWord(v.w[0]) |
		moveMaskWord(v.w[1])<<8 |
		moveMaskWord(v.w[2])<<16 |
		moveMaskWord(v.w[3])<<24)
}

// moveMask128Ref is the bit-by-bit emulation of mask extraction: shift
// each lane right by 7 to isolate its most significant bit, then OR the
// isolated bit into the result at the lane's index. It defines the
// semantics MoveMask128 must match for all inputs and is kept separate so
// the two can be checked against each other directly.
func moveMask128Ref(v Vec128) Mask128 {
	b := v.Bytes()
	var m Mask128
	for i, lane := range b {
		m |= Mask128(lane>>7) << i
	}
	return m
}

// moveMask256Ref is the 32-lane counterpart of moveMask128Ref.
func moveMask256Ref(v Vec256) Mask256 {
	b := v.Bytes()
	var m Mask256
	for i, lane := range b {
		m |= Mask256(lane>>7) << i
	}
	return m
}
