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

//go:build arm64

package cpufeat

import "golang.org/x/sys/cpu"

// detect reads the OS-provided capability bits (hwcaps on Linux, sysctl on
// Darwin) through x/sys/cpu. NEON (ASIMD) is part of the ARMv8-A baseline,
// so HasNEON is effectively always true on this architecture; SVE/SVE2
// depend on the core.
func detect() Features {
	return Features{
		Arch:    ArchARM64,
		Vendor:  "ARM",
		HasNEON: cpu.ARM64.HasASIMD,
		HasSVE:  cpu.ARM64.HasSVE,
		HasSVE2: cpu.ARM64.HasSVE2,
	}
}
