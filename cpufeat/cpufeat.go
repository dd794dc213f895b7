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

// Package cpufeat reports the SIMD-relevant capabilities of the host CPU.
//
// Detection runs once per process on first use and the result is cached,
// so every call to Get observes the same value. An unrecognized
// architecture is not an error: it yields a Features value with all flags
// false, which tells callers to use their portable scalar path.
package cpufeat

import "sync"

// Arch identifies the processor family strider was built for.
type Arch int

const (
	// ArchUnknown means no vector kernels are available on this build.
	ArchUnknown Arch = iota

	// ArchAMD64 is 64-bit x86.
	ArchAMD64

	// ArchARM64 is 64-bit ARM (AArch64).
	ArchARM64
)

// String returns a human-readable name for the architecture.
func (a Arch) String() string {
	switch a {
	case ArchAMD64:
		return "x86-64"
	case ArchARM64:
		return "arm64"
	default:
		return "unknown"
	}
}

// Features is an immutable record of the capabilities detected on the host
// CPU. Callers normally obtain it via Get, but a fabricated value can be
// passed to code taking Features explicitly (for example vec.LevelFor) to
// force a particular code path under test.
type Features struct {
	// Arch is the architecture family the flags below belong to.
	Arch Arch

	// Vendor is the CPU vendor identification string ("GenuineIntel",
	// "AuthenticAMD", "ARM", ...). Empty on unknown architectures.
	Vendor string

	// Family and Model are the CPU family/model codes where the
	// architecture exposes them (x86 CPUID leaf 1), zero otherwise.
	Family uint32
	Model  uint32

	// x86-64 vector extensions.
	HasSSE2     bool
	HasSSE3     bool
	HasSSSE3    bool
	HasSSE41    bool
	HasSSE42    bool
	HasAVX      bool
	HasAVX2     bool
	HasAVX512F  bool
	HasAVX512BW bool

	// ARM64 vector extensions.
	HasNEON bool
	HasSVE  bool
	HasSVE2 bool
}

var (
	features Features
	once     sync.Once
)

// Get returns the capabilities of the host CPU. The probe runs at most
// once per process; all calls, including concurrent first calls, observe
// the same value.
func Get() Features {
	once.Do(func() {
		features = detect()
	})
	return features
}
