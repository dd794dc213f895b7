package vec

import (
	"os"
	"strconv"

	"github.com/strider-go/strider/cpufeat"
)

// Level selects the chunk width the scanning kernels use.
type Level int

const (
	// LevelScalar disables vector chunks entirely; callers run their
	// portable byte-at-a-time path.
	LevelScalar Level = iota

	// Level128 processes 16-byte chunks (SSE2/NEON class hardware).
	Level128

	// Level256 processes 32-byte chunks (AVX2 class hardware).
	Level256
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Level128:
		return "vec128"
	case Level256:
		return "vec256"
	default:
		return "scalar"
	}
}

// Width returns the chunk width in bytes, or 0 for LevelScalar.
func (l Level) Width() int {
	switch l {
	case Level128:
		return Width128
	case Level256:
		return Width256
	default:
		return 0
	}
}

// LevelFor maps a capability set to the widest level it supports. Tests
// can pass a fabricated cpufeat.Features to force a particular path.
func LevelFor(f cpufeat.Features) Level {
	switch f.Arch {
	case cpufeat.ArchAMD64:
		switch {
		case f.HasAVX2:
			return Level256
		case f.HasSSE2:
			return Level128
		}
	case cpufeat.ArchARM64:
		if f.HasNEON {
			return Level128
		}
	}
	return LevelScalar
}

// currentLevel is chosen once at init from the detected capabilities and
// never re-decided per call.
var currentLevel Level

func init() {
	if NoSIMDEnv() {
		currentLevel = LevelScalar
		return
	}
	currentLevel = LevelFor(cpufeat.Get())
}

// CurrentLevel returns the process-wide dispatch level chosen at startup.
func CurrentLevel() Level {
	return currentLevel
}

// NoSIMDEnv checks if the STRIDER_NO_SIMD environment variable is set.
// When set, the vector kernels are skipped in favor of the scalar path
// regardless of CPU capabilities. Useful for testing and debugging.
func NoSIMDEnv() bool {
	val := os.Getenv("STRIDER_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
