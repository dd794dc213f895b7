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

// Package vec implements fixed-width byte vectors and the boolean lane
// masks derived from them.
//
// Two widths are provided: Vec128 (16 lanes) and Vec256 (32 lanes). Each
// operation exists as a word-wise kernel working on packed 64-bit words
// and as a byte-at-a-time reference; the two are bit-identical for all
// inputs, which is the package's central contract. Lane i is always byte
// i counted from the lowest address, and bit i of a mask always refers to
// lane i.
package vec

import "encoding/binary"

const (
	// Width128 is the chunk width of Vec128 in bytes.
	Width128 = 16

	// Width256 is the chunk width of Vec256 in bytes.
	Width256 = 32
)

// Vec128 is an opaque 16-byte vector value. It is held by value and is
// always fully defined; operations over it are total functions of its 16
// lanes.
type Vec128 struct {
	w [2]uint64
}

// Vec256 is an opaque 32-byte vector value.
type Vec256 struct {
	w [4]uint64
}

// Bytes materializes the vector into scalar memory, lane 0 first.
func (v Vec128) Bytes() [Width128]byte {
	var b [Width128]byte
	binary.LittleEndian.PutUint64(b[0:8], v.w[0])
	binary.LittleEndian.PutUint64(b[8:16], v.w[1])
	return b
}

// Bytes materializes the vector into scalar memory, lane 0 first.
func (v Vec256) Bytes() [Width256]byte {
	var b [Width256]byte
	binary.LittleEndian.PutUint64(b[0:8], v.w[0])
	binary.LittleEndian.PutUint64(b[8:16], v.w[1])
	binary.LittleEndian.PutUint64(b[16:24], v.w[2])
	binary.LittleEndian.PutUint64(b[24:32], v.w[3])
	return b
}
