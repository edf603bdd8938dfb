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

// MaskBits gathers the sign bit of each lane into bit i of the result,
// like vmovmskps. For a mask vector this is one bit per true lane.
func (x F32x8) MaskBits() uint8 {
	var m uint8
	for i, b := range x.bits() {
		if b&signBit != 0 {
			m |= 1 << i
		}
	}
	return m
}

// MaskFromBits expands bit i of bits into an all-ones or all-zeros lane i.
func MaskFromBits(bits uint8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(bits&(1<<i) != 0)
	}
	return r
}

// AllTrue reports whether every lane of mask m has its sign bit set.
func AllTrue(m F32x8) bool {
	return m.MaskBits() == 0xFF
}

// AnyTrue reports whether at least one lane of mask m has its sign bit set.
func AnyTrue(m F32x8) bool {
	return m.MaskBits() != 0
}

// CountTrue returns the number of true lanes in mask m.
func CountTrue(m F32x8) int {
	n := 0
	for b := m.MaskBits(); b != 0; b &= b - 1 {
		n++
	}
	return n
}
