package cpufeat

import (
	"fmt"
	"strings"
)

// Describe returns a multi-line, human-readable listing of the capability
// record, suitable for diagnostics output.
func (f Features) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Architecture: %s\n", f.Arch)
	if f.Vendor != "" {
		fmt.Fprintf(&b, "Vendor: %s\n", f.Vendor)
	}
	if f.Family != 0 || f.Model != 0 {
		fmt.Fprintf(&b, "Family: %d  Model: %d\n", f.Family, f.Model)
	}

	b.WriteString("SIMD Features:\n")
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"SSE2", f.HasSSE2},
		{"SSE3", f.HasSSE3},
		{"SSSE3", f.HasSSSE3},
		{"SSE4.1", f.HasSSE41},
		{"SSE4.2", f.HasSSE42},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"AVX-512F", f.HasAVX512F},
		{"AVX-512BW", f.HasAVX512BW},
		{"NEON", f.HasNEON},
		{"SVE", f.HasSVE},
		{"SVE2", f.HasSVE2},
	} {
		if feat.on {
			fmt.Fprintf(&b, "  - %s\n", feat.name)
		}
	}

	return b.String()
}
