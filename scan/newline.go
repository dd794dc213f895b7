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

package scan

import "github.com/strider-go/strider/vec"

// A newline event is one logical line break: "\n" alone, "\r" alone, or
// the pair "\r\n" counted exactly once. The recorded position of a "\r\n"
// event is the offset of the "\r".

// CountNewlinesScalar counts newline events in data. It is the portable
// reference implementation and the oracle the chunked path is tested
// against.
func CountNewlinesScalar(data []byte) int {
	count := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			count++
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++ // \r\n is a single event
			}
			count++
		}
	}
	return count
}

// countNewlinesRange counts the newline events of data[lo:hi] using the
// equivalent per-byte rule "every \n is an event, every \r not followed
// by \n is an event". The lookahead goes against the full buffer, so a
// \r\n pair straddling hi is attributed to its \n and never counted by
// both sides of the split. The chunked kernels use this for their prefix
// and remainder regions.
func countNewlinesRange(data []byte, lo, hi int) int {
	count := 0
	for i := lo; i < hi; i++ {
		switch data[i] {
		case '\n':
			count++
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				continue // counted at the \n
			}
			count++
		}
	}
	return count
}

// CountNewlines counts newline events in data, a chunk at a time where
// the CPU allows it. Results are identical to CountNewlinesScalar for
// every input and alignment.
func CountNewlines(data []byte) int {
	switch vec.CurrentLevel() {
	case vec.Level256:
		return countNewlines256(data)
	case vec.Level128:
		return countNewlines128(data)
	default:
		return CountNewlinesScalar(data)
	}
}

func countNewlines128(data []byte) int {
	n := len(data)
	if n < vec.Width128 {
		return CountNewlinesScalar(data)
	}

	prefix := vec.AlignOffset(data, vec.Width128)
	count := countNewlinesRange(data, 0, prefix)

	lf := vec.Broadcast128('\n')
	cr := vec.Broadcast128('\r')
	i := prefix
	for ; i+vec.Width128 <= n; i += vec.Width128 {
		chunk := vec.Load128Aligned(data[i:])
		lfMask := vec.MoveMask128(vec.CmpEq128(chunk, lf))
		crMask := vec.MoveMask128(vec.CmpEq128(chunk, cr))

		// every \n is an event
		count += lfMask.OnesCount()
		if crMask == 0 {
			continue
		}
		// a \r is an event only when no \n follows it
		for m := crMask; m != 0; m &= m - 1 {
			bit := m.TrailingZeros()
			if bit < vec.Width128-1 {
				if lfMask&(1<<(bit+1)) != 0 {
					continue // \r\n inside the chunk, counted via lfMask
				}
			} else if i+vec.Width128 < n && data[i+vec.Width128] == '\n' {
				// pairing byte lives one past the chunk; it is counted
				// when the next chunk (or the remainder) sees the \n
				continue
			}
			count++
		}
	}

	return count + countNewlinesRange(data, i, n)
}

func countNewlines256(data []byte) int {
	n := len(data)
	if n < vec.Width256 {
		return countNewlines128(data)
	}

	prefix := vec.AlignOffset(data, vec.Width256)
	count := countNewlinesRange(data, 0, prefix)

	lf := vec.Broadcast256('\n')
	cr := vec.Broadcast256('\r')
	i := prefix
	for ; i+vec.Width256 <= n; i += vec.Width256 {
		chunk := vec.Load256Aligned(data[i:])
		lfMask := vec.MoveMask256(vec.CmpEq256(chunk, lf))
		crMask := vec.MoveMask256(vec.CmpEq256(chunk, cr))

		count += lfMask.OnesCount()
		if crMask == 0 {
			continue
		}
		for m := crMask; m != 0; m &= m - 1 {
			bit := m.TrailingZeros()
			if bit < vec.Width256-1 {
				if lfMask&(1<<(bit+1)) != 0 {
					continue
				}
			} else if i+vec.Width256 < n && data[i+vec.Width256] == '\n' {
				continue
			}
			count++
		}
	}

	return count + countNewlinesRange(data, i, n)
}

// FindNewlinePositionsScalar records the offset of each newline event in
// order, writing at most len(positions) entries while still counting the
// rest, and returns the true total. For a \r\n pair the recorded offset
// is the \r.
func FindNewlinePositionsScalar(data []byte, positions []int) int {
	count := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			if count < len(positions) {
				positions[count] = i
			}
			count++
		case '\r':
			if count < len(positions) {
				positions[count] = i
			}
			count++
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
		}
	}
	return count
}

// recordNewlinesRange is the position-recording counterpart of
// countNewlinesRange: per-byte classification with whole-buffer look
// around, so events straddling region bounds are recorded exactly once.
// count is the number of events already seen; the new total is returned.
func recordNewlinesRange(data []byte, lo, hi int, positions []int, count int) int {
	for i := lo; i < hi; i++ {
		switch data[i] {
		case '\n':
			pos := i
			if i > 0 && data[i-1] == '\r' {
				pos = i - 1 // the pair's position is the \r
			}
			if count < len(positions) {
				positions[count] = pos
			}
			count++
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				continue // recorded at the \n
			}
			if count < len(positions) {
				positions[count] = i
			}
			count++
		}
	}
	return count
}

// FindNewlinePositions behaves exactly like FindNewlinePositionsScalar,
// skipping chunks without line breaks where the CPU allows it.
func FindNewlinePositions(data []byte, positions []int) int {
	switch vec.CurrentLevel() {
	case vec.Level256:
		return findNewlinePositions256(data, positions)
	case vec.Level128:
		return findNewlinePositions128(data, positions)
	default:
		return FindNewlinePositionsScalar(data, positions)
	}
}

func findNewlinePositions128(data []byte, positions []int) int {
	n := len(data)
	if n < vec.Width128 {
		return FindNewlinePositionsScalar(data, positions)
	}

	prefix := vec.AlignOffset(data, vec.Width128)
	count := recordNewlinesRange(data, 0, prefix, positions, 0)

	lf := vec.Broadcast128('\n')
	cr := vec.Broadcast128('\r')
	i := prefix
	for ; i+vec.Width128 <= n; i += vec.Width128 {
		chunk := vec.Load128Aligned(data[i:])
		lfMask := vec.MoveMask128(vec.CmpEq128(chunk, lf))
		crMask := vec.MoveMask128(vec.CmpEq128(chunk, cr))
		if lfMask == 0 && crMask == 0 {
			continue
		}
		count = recordNewlinesRange(data, i, i+vec.Width128, positions, count)
	}

	return recordNewlinesRange(data, i, n, positions, count)
}

func findNewlinePositions256(data []byte, positions []int) int {
	n := len(data)
	if n < vec.Width256 {
		return findNewlinePositions128(data, positions)
	}

	prefix := vec.AlignOffset(data, vec.Width256)
	count := recordNewlinesRange(data, 0, prefix, positions, 0)

	lf := vec.Broadcast256('\n')
	cr := vec.Broadcast256('\r')
	i := prefix
	for ; i+vec.Width256 <= n; i += vec.Width256 {
		chunk := vec.Load256Aligned(data[i:])
		lfMask := vec.MoveMask256(vec.CmpEq256(chunk, lf))
		crMask := vec.MoveMask256(vec.CmpEq256(chunk, cr))
		if lfMask == 0 && crMask == 0 {
			continue
		}
		count = recordNewlinesRange(data, i, i+vec.Width256, positions, count)
	}

	return recordNewlinesRange(data, i, n, positions, count)
}
