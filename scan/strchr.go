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

// Package scan provides byte-buffer scanning primitives: first-occurrence
// byte search with strchr semantics, and newline counting/indexing across
// Unix, Windows and classic Mac line endings.
//
// Every operation exists twice: a portable scalar implementation that
// defines the semantics, and a chunked implementation processing 16 or 32
// bytes at a time through the vec package. The chunk width is picked once
// at startup from the detected CPU capabilities; on unrecognized hardware
// (or with STRIDER_NO_SIMD set) everything runs on the scalar path. The
// two paths return identical results for every input and every buffer
// alignment.
package scan

import "github.com/strider-go/strider/vec"

// NotFound is returned by the search functions when the target byte does
// not occur before the terminator.
const NotFound = -1

// FindByteScalar returns the offset of the first occurrence of c in text,
// mirroring C strchr: the scan stops at the first 0x00 byte, whose offset
// is returned only when c is itself 0x00. The end of the slice acts as
// the terminator when text contains no interior 0x00, so
// FindByteScalar([]byte("Hello"), 0) == 5.
func FindByteScalar(text []byte, c byte) int {
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == c {
			return i
		}
		if b == 0 {
			return NotFound
		}
	}
	if c == 0 {
		return len(text)
	}
	return NotFound
}

// FindByte behaves exactly like FindByteScalar, scanning a chunk at a
// time where the CPU allows it.
func FindByte(text []byte, c byte) int {
	switch vec.CurrentLevel() {
	case vec.Level256:
		return findByte256(text, c)
	case vec.Level128:
		return findByte128(text, c)
	default:
		return FindByteScalar(text, c)
	}
}

func findByte128(text []byte, c byte) int {
	n := len(text)
	if n < vec.Width128 {
		return FindByteScalar(text, c)
	}

	// unaligned prefix, one byte at a time
	i := vec.AlignOffset(text, vec.Width128)
	for j := 0; j < i; j++ {
		b := text[j]
		if b == c {
			return j
		}
		if b == 0 {
			return NotFound
		}
	}

	target := vec.Broadcast128(c)
	zero := vec.Zero128()
	for ; i+vec.Width128 <= n; i += vec.Width128 {
		chunk := vec.Load128Aligned(text[i:])
		termMask := vec.MoveMask128(vec.CmpEq128(chunk, zero))
		targetMask := vec.MoveMask128(vec.CmpEq128(chunk, target))

		if termMask != 0 {
			// buffer ends inside this chunk; the target wins only if
			// it sits before the terminator
			t := termMask.TrailingZeros()
			if targetMask != 0 {
				if p := targetMask.TrailingZeros(); p < t {
					return i + p
				}
			}
			if c == 0 {
				return i + t
			}
			return NotFound
		}
		if targetMask != 0 {
			return i + targetMask.TrailingZeros()
		}
	}

	// remainder: the slice end acts as the terminator
	for ; i < n; i++ {
		b := text[i]
		if b == c {
			return i
		}
		if b == 0 {
			return NotFound
		}
	}
	if c == 0 {
		return n
	}
	return NotFound
}

func findByte256(text []byte, c byte) int {
	n := len(text)
	if n < vec.Width256 {
		return findByte128(text, c)
	}

	i := vec.AlignOffset(text, vec.Width256)
	for j := 0; j < i; j++ {
		b := text[j]
		if b == c {
			return j
		}
		if b == 0 {
			return NotFound
		}
	}

	target := vec.Broadcast256(c)
	zero := vec.Zero256()
	for ; i+vec.Width256 <= n; i += vec.Width256 {
		chunk := vec.Load256Aligned(text[i:])
		termMask := vec.MoveMask256(vec.CmpEq256(chunk, zero))
		targetMask := vec.MoveMask256(vec.CmpEq256(chunk, target))

		if termMask != 0 {
			t := termMask.TrailingZeros()
			if targetMask != 0 {
				if p := targetMask.TrailingZeros(); p < t {
					return i + p
				}
			}
			if c == 0 {
				return i + t
			}
			return NotFound
		}
		if targetMask != 0 {
			return i + targetMask.TrailingZeros()
		}
	}

	for ; i < n; i++ {
		b := text[i]
		if b == c {
			return i
		}
		if b == 0 {
			return NotFound
		}
	}
	if c == 0 {
		return n
	}
	return NotFound
}
