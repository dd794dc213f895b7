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

// Load256 loads 32 bytes from src with no alignment requirement.
// src must be at least 32 bytes long.
func Load256(src []byte) Vec256 {
	_ = src[Width256-1]
	return Vec256{w: [4]uint64{
		binary.LittleEndian.Uint64(src[0:8]),
		binary.LittleEndian.Uint64(src[8:16]),
		binary.LittleEndian.Uint64(src[16:24]),
		binary.LittleEndian.Uint64(src[24:32]),
	}}
}

// Load256Aligned loads 32 bytes from src. The base address of src must be
// 32-byte aligned and src at least 32 bytes long; this is a caller
// contract, not a runtime check. Route through Load256 when alignment is
// not guaranteed.
func Load256Aligned(src []byte) Vec256 {
	return Load256(src)
}

// Store256 writes the 32 lanes of v to dst, which must be at least 32
// bytes long. No alignment requirement.
func Store256(v Vec256, dst []byte) {
	_ = dst[Width256-1]
	binary.LittleEndian.PutUint64(dst[0:8], v.w[0])
	binary.LittleEndian.PutUint64(dst[8:16], v.w[1])
	binary.LittleEndian.PutUint64(dst[16:24], v.w[2])
	binary.LittleEndian.PutUint64(dst[24:32], v.w[3])
}

// Store256Aligned writes the 32 lanes of v to dst. Same alignment
// contract as Load256Aligned.
func Store256Aligned(v Vec256, dst []byte) {
	Store256(v, dst)
}

// Broadcast256 returns a vector with every lane equal to b.
func Broadcast256(b byte) Vec256 {
	w := broadcastWord(b)
	return Vec256{w: [4]uint64{w, w, w, w}}
}

// Zero256 returns the all-zero vector.
func Zero256() Vec256 {
	return Vec256{}
}

// CmpEq256 compares a and b lane by lane: the result holds 0xFF in every
// lane where they agree and 0x00 elsewhere.
func CmpEq256(a, b Vec256) Vec256 {
	return Vec256{w: [4]uint64{
		cmpEqWord(a.w[0], b.w[0]),
		cmpEqWord(a.w[1], b.w[1]),
		cmpEqWord(a.w[2], b.w[2]),
		cmpEqWord(a.w[3], b.w[3]),
	}}
}
