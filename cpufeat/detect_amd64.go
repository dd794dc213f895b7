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

//go:build amd64

package cpufeat

import "github.com/klauspost/cpuid/v2"

// detect probes the CPU via the CPUID instruction. SSE2 is architecturally
// guaranteed on amd64, but we read it from the feature leaf anyway so the
// record mirrors exactly what the hardware reports.
func detect() Features {
	return Features{
		Arch:        ArchAMD64,
		Vendor:      cpuid.CPU.VendorString,
		Family:      uint32(cpuid.CPU.Family),
		Model:       uint32(cpuid.CPU.Model),
		HasSSE2:     cpuid.CPU.Has(cpuid.SSE2),
		HasSSE3:     cpuid.CPU.Has(cpuid.SSE3),
		HasSSSE3:    cpuid.CPU.Has(cpuid.SSSE3),
		HasSSE41:    cpuid.CPU.Has(cpuid.SSE4),
		HasSSE42:    cpuid.CPU.Has(cpuid.SSE42),
		HasAVX:      cpuid.CPU.Has(cpuid.AVX),
		HasAVX2:     cpuid.CPU.Has(cpuid.AVX2),
		HasAVX512F:  cpuid.CPU.Has(cpuid.AVX512F),
		HasAVX512BW: cpuid.CPU.Has(cpuid.AVX512BW),
	}
}
