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

import "encoding/binary"

// Load128 loads 16 bytes from src with no alignment requirement.
// src must be at least 16 bytes long.
func Load128(src []byte) Vec128 {
	_ = src[Width128-1]
	return Vec128{w: [2]uint64{
		binary.LittleEndian.Uint64(src[0:8]),
		binary.LittleEndian.Uint64(src[8:16]),
	}}
}

// Load128Aligned loads 16 bytes from src. The base address of src must be
// 16-byte aligned and src at least 16 bytes long; this is a caller
// contract, not a runtime check. Route through Load128 when alignment is
// not guaranteed.
func Load128Aligned(src []byte) Vec128 {
	return Load128(src)
}

// Store128 writes the 16 lanes of v to dst, which must be at least 16
// bytes long. No alignment requirement.
func Store128(v Vec128, dst []byte) {
	_ = dst[Width128-1]
	binary.LittleEndian.PutUint64(dst[0:8], v.w[0])
	binary.LittleEndian.PutUint64(dst[8:16], v.w[1])
}

// Store128Aligned writes the 16 lanes of v to dst. Same alignment
// contract as Load128Aligned.
func Store128Aligned(v Vec128, dst []byte) {
	Store128(v, dst)
}

// Broadcast128 returns a vector with every lane equal to b.
func Broadcast128(b byte) Vec128 {
	w := broadcastWord(b)
	return Vec128{w: [2]uint64{w, w}}
}

// Zero128 returns the all-zero vector.
func Zero128() Vec128 {
	return Vec128{}
}

// CmpEq128 compares a and b lane by lane: the result holds 0xFF in every
// lane where they agree and 0x00 elsewhere.
func CmpEq128(a, b Vec128) Vec128 {
	return Vec128{w: [2]uint64{
		cmpEqWord(a.w[0], b.w[0]),
		cmpEqWord(a.w[1], b.w[1]),
	}}
}
