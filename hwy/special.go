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

// ZeroMask returns a bitmask with bit i set iff lane i compares equal to
// 0.0. Both +0.0 and -0.0 count as zero; NaN never does.
func (x F32x8) ZeroMask() uint8 {
	return x.Equal(Zero()).MaskBits()
}

// IsNaN returns a mask of the lanes that are NaN.
func (x F32x8) IsNaN() F32x8 {
	return x.unordered(Zero())
}

// movemaskLaneBits are the bits vpmovmskb samples from one lane, minus
// the top byte: bits 7, 15 and 23.
const movemaskLaneBits uint32 = 0x00808080

// HasInfNaN reports whether any lane is ±Inf or NaN.
//
// x - x is +0.0 for every finite lane and NaN otherwise; a NaN always has
// bit 23 (the low exponent bit) set.
func (x F32x8) HasInfNaN() bool {
	for _, b := range x.Sub(x).bits() {
		if b&movemaskLaneBits != 0 {
			return true
		}
	}
	return false
}

// Map applies f to every lane through a scratch array.
//
// This is the slow path for functions that have no vector algorithm: it
// stores the vector, calls f eight times and reloads the result.
func (x F32x8) Map(f func(float32) float32) F32x8 {
	var tmp [Lanes]float32
	x.Store(tmp[:])
	for i := range tmp {
		tmp[i] = f(tmp[i])
	}
	return Load(tmp[:])
}

// Map2 applies the two-argument f to paired lanes of x and y through
// scratch arrays, like Map.
func (x F32x8) Map2(y F32x8, f func(a, b float32) float32) F32x8 {
	var tmp, tmpY [Lanes]float32
	x.Store(tmp[:])
	y.Store(tmpY[:])
	for i := range tmp {
		tmp[i] = f(tmp[i], tmpY[i])
	}
	return Load(tmp[:])
}
