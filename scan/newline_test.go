package scan

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/strider-go/strider/vec"
)

var countImpls = []struct {
	name string
	fn   func([]byte) int
}{
	{"scalar", CountNewlinesScalar},
	{"vec128", countNewlines128},
	{"vec256", countNewlines256},
	{"dispatch", CountNewlines},
}

func TestCountNewlines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no_newline", "abc", 0},
		{"trailing_lf", "abc\n", 1},
		{"interior_lf", "abc\ndef", 1},
		{"two_lines", "abc\ndef\n", 2},
		{"unix", "line 1\nline 2\nline 3\n", 3},
		{"windows", "line 1\r\nline 2\r\nline 3\r\n", 3},
		{"mac_classic", "line 1\rline 2\rline 3\r", 3},
		{"mixed", "unix\nwindows\r\nmac\rmixed\n\r", 5},
		{"consecutive", "line 1\n\n\nline 2\r\n\r\nline 3", 5},
		{"empty", "", 0},
		{"only_crlf", "\r\n", 1},
		{"only_cr", "\r", 1},
		{"lf_then_cr", "\n\r", 2},
		{"cr_cr_lf", "\r\r\n", 2},
		{"single_line_long", "This is a single line with no newlines but long enough to cross several chunks of either width.", 0},
	}
	for _, impl := range countImpls {
		t.Run(impl.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if got := impl.fn([]byte(tt.text)); got != tt.want {
						t.Errorf("CountNewlines(%q) = %d, want %d", tt.text, got, tt.want)
					}
				})
			}
		})
	}
}

// A \r\n pair placed at every offset modulo the chunk width, for both
// widths, including the seam where the \r is a chunk's last lane and the
// \n starts the next chunk.
func TestCountNewlinesPairAtEveryOffset(t *testing.T) {
	for size := 1; size <= 3*vec.Width256; size++ {
		for off := 0; off+1 < size; off++ {
			buf := make([]byte, size)
			for i := range buf {
				buf[i] = 'x'
			}
			buf[off] = '\r'
			buf[off+1] = '\n'

			want := CountNewlinesScalar(buf)
			if want != 1 {
				t.Fatalf("oracle broken: size=%d off=%d count=%d", size, off, want)
			}
			if got := countNewlines128(buf); got != want {
				t.Fatalf("vec128 size=%d off=%d: got %d, want %d", size, off, got, want)
			}
			if got := countNewlines256(buf); got != want {
				t.Fatalf("vec256 size=%d off=%d: got %d, want %d", size, off, got, want)
			}
		}
	}
}

// Same seam coverage but against every base alignment of the buffer, so
// the pair also straddles the prefix/chunk boundary.
func TestCountNewlinesAlignmentInvariance(t *testing.T) {
	content := []byte(strings.Repeat("line one\r\nline two\nline three\r", 5))
	want := CountNewlinesScalar(content)
	backing := vec.NewAlignedBuffer(len(content)+vec.Width256, vec.Width256)

	for off := 0; off < vec.Width256; off++ {
		window := backing[off : off+len(content)]
		copy(window, content)
		for _, impl := range countImpls {
			if got := impl.fn(window); got != want {
				t.Fatalf("%s at alignment %d: got %d, want %d", impl.name, off, got, want)
			}
		}
	}
}

func TestCountNewlinesTrailingCR(t *testing.T) {
	// \r as the very last byte is a lone \r: no peek past the buffer
	for _, size := range []int{1, 15, 16, 17, 31, 32, 33, 64, 65} {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = 'x'
		}
		buf[size-1] = '\r'
		for _, impl := range countImpls {
			if got := impl.fn(buf); got != 1 {
				t.Errorf("%s size=%d: trailing \\r counted %d times, want 1", impl.name, size, got)
			}
		}
	}
}

func TestCountNewlinesEquivalenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	alphabet := []byte{'\n', '\r', '\r', '\n', 'a', 'b', ' '}
	for iter := 0; iter < 3000; iter++ {
		n := rng.Intn(300)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		want := CountNewlinesScalar(buf)
		if got := countNewlines128(buf); got != want {
			t.Fatalf("vec128(%q) = %d, scalar = %d", buf, got, want)
		}
		if got := countNewlines256(buf); got != want {
			t.Fatalf("vec256(%q) = %d, scalar = %d", buf, got, want)
		}
	}
}

var positionImpls = []struct {
	name string
	fn   func([]byte, []int) int
}{
	{"scalar", FindNewlinePositionsScalar},
	{"vec128", findNewlinePositions128},
	{"vec256", findNewlinePositions256},
	{"dispatch", FindNewlinePositions},
}

func TestFindNewlinePositions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"unix", "aa\nbb\ncc\n", []int{2, 5, 8}},
		{"crlf_records_cr", "ab\r\ncd\r\n", []int{2, 6}},
		{"lone_cr", "a\rb\rc", []int{1, 3}},
		{"mixed", "unix\nwindows\r\nmac\rmixed\n\r", []int{4, 12, 17, 23, 24}},
		{"none", "abc", []int{}},
	}
	for _, impl := range positionImpls {
		t.Run(impl.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					positions := make([]int, 16)
					total := impl.fn([]byte(tt.text), positions)
					if total != len(tt.want) {
						t.Fatalf("total = %d, want %d", total, len(tt.want))
					}
					for i, want := range tt.want {
						if positions[i] != want {
							t.Errorf("positions[%d] = %d, want %d", i, positions[i], want)
						}
					}
				})
			}
		})
	}
}

func TestFindNewlinePositionsTruncation(t *testing.T) {
	text := []byte("a\nb\nc\nd\ne\n")
	for _, impl := range positionImpls {
		positions := make([]int, 3)
		total := impl.fn(text, positions)
		if total != 5 {
			t.Errorf("%s: total = %d, want 5 (count must not truncate)", impl.name, total)
		}
		want := []int{1, 3, 5}
		for i := range positions {
			if positions[i] != want[i] {
				t.Errorf("%s: positions[%d] = %d, want %d", impl.name, i, positions[i], want[i])
			}
		}

		// zero-capacity storage still returns the full count
		if total := impl.fn(text, nil); total != 5 {
			t.Errorf("%s: total with nil storage = %d, want 5", impl.name, total)
		}
	}
}

func TestFindNewlinePositionsEquivalenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	alphabet := []byte{'\n', '\r', 'a', 'b', '\r', '\n', 'c'}
	for iter := 0; iter < 2000; iter++ {
		n := rng.Intn(250)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}

		wantPos := make([]int, n)
		want := FindNewlinePositionsScalar(buf, wantPos)

		for _, impl := range positionImpls[1:] {
			gotPos := make([]int, n)
			got := impl.fn(buf, gotPos)
			if got != want {
				t.Fatalf("%s(%q) total = %d, scalar = %d", impl.name, buf, got, want)
			}
			for i := 0; i < want && i < n; i++ {
				if gotPos[i] != wantPos[i] {
					t.Fatalf("%s(%q) positions[%d] = %d, scalar = %d", impl.name, buf, i, gotPos[i], wantPos[i])
				}
			}
		}
	}
}

// The seam the chunked counter must get right: a \r in the last lane of a
// chunk whose \n begins the next chunk, checked explicitly at both widths
// with chunk-aligned buffers so the lanes land where intended.
func TestCountNewlinesChunkSeam(t *testing.T) {
	for _, width := range []int{vec.Width128, vec.Width256} {
		size := 3 * width
		backing := vec.NewAlignedBuffer(size, vec.Width256)
		for i := range backing {
			backing[i] = '.'
		}
		// pair straddling the first/second chunk boundary
		backing[width-1] = '\r'
		backing[width] = '\n'
		// lone \r in the last lane of the final chunk
		backing[size-1] = '\r'

		want := CountNewlinesScalar(backing)
		if want != 2 {
			t.Fatalf("oracle: %d events, want 2", want)
		}
		if got := countNewlines128(backing); got != want {
			t.Errorf("width=%d vec128: got %d, want %d", width, got, want)
		}
		if got := countNewlines256(backing); got != want {
			t.Errorf("width=%d vec256: got %d, want %d", width, got, want)
		}

		positions := make([]int, 4)
		if total := findNewlinePositions256(backing, positions); total != 2 ||
			positions[0] != width-1 || positions[1] != size-1 {
			t.Errorf("width=%d positions: total=%d positions=%v, want [%d %d]",
				width, total, positions[:2], width-1, size-1)
		}
	}
}

func BenchmarkCountNewlines(b *testing.B) {
	line := strings.Repeat("x", 60)
	buf := []byte(strings.Repeat(line+"\r\n", 1000))
	for _, impl := range countImpls {
		b.Run(impl.name, func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				if impl.fn(buf) != 1000 {
					b.Fatal("wrong count")
				}
			}
		})
	}
}
