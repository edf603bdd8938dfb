// Copyright 2025 go-highway Authors
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

package hwy

// TailMask returns a mask vector with the first count lanes set. count is
// clamped to [0, 8].
func TailMask(count int) F32x8 {
	count = max(0, min(count, Lanes))
	return MaskFromBits(uint8(1<<count - 1))
}

// ProcessWithTail walks size elements in vector-sized steps.
//
// It calls:
//   - fullFn(offset) for each full vector
//   - tailFn(offset, count) once for the remainder, if any
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        hwy.Load(data[offset:]).Mul(k).Store(out[offset:])
//	    },
//	    func(offset, count int) {
//	        hwy.LoadN(data[offset:], count).Mul(k).StoreN(out[offset:], count)
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / Lanes
	for i := range fullVectors {
		fullFn(i * Lanes)
	}
	if remaining := size % Lanes; remaining > 0 {
		tailFn(fullVectors*Lanes, remaining)
	}
}

// ProcessWithTailNoMask is like ProcessWithTail but finishes with one
// overlapping full vector ending at size. size must be at least 8.
func ProcessWithTailNoMask(size int, fullFn func(offset int)) {
	if size < Lanes {
		panic("hwy: ProcessWithTailNoMask needs at least 8 elements")
	}
	fullVectors := size / Lanes
	for i := range fullVectors {
		fullFn(i * Lanes)
	}
	if size%Lanes > 0 {
		fullFn(size - Lanes)
	}
}

// AlignedSize rounds size up to a multiple of the vector width.
func AlignedSize(size int) int {
	return (size + Lanes - 1) / Lanes * Lanes
}

// IsAligned reports whether size is a multiple of the vector width.
func IsAligned(size int) bool {
	return size%Lanes == 0
}
