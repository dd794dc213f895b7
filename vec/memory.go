package vec

import "unsafe"

// Alignment helpers. The scanning kernels split a buffer into an
// unaligned prefix, aligned full chunks and a remainder; these provide
// the address arithmetic for that split and let callers allocate
// chunk-aligned buffers for best throughput.

// IsAligned reports whether the base address of p is aligned to align
// bytes. align must be a power of two. An empty slice is considered
// aligned.
func IsAligned(p []byte, align int) bool {
	if len(p) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&p[0]))&uintptr(align-1) == 0
}

// AlignOffset returns the number of bytes of p that precede the next
// align-byte boundary: 0 when p is already aligned, otherwise a value in
// 1..align-1. align must be a power of two.
func AlignOffset(p []byte, align int) int {
	if len(p) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&p[0]))
	return int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))
}

// NewAlignedBuffer returns a zeroed slice of the given size whose base
// address is aligned to align bytes. align must be a power of two. The
// capacity is clipped to size so an append cannot silently move the data
// to an unaligned block.
func NewAlignedBuffer(size, align int) []byte {
	raw := make([]byte, size+align-1)
	off := AlignOffset(raw, align)
	return raw[off : off+size : off+size]
}
