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

import "math"

// fma32 computes a*b + c rounded once to float32.
//
// The product of two float32 values is exact in float64, so only the sum
// can be inexact. The sum is rounded to odd in float64 (53 bits >= 24+2),
// after which the conversion to float32 rounds correctly.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	z := float64(c)
	s := p + z
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: s + e == p + z exactly.
	bz := s - p
	e := (p - (s - bz)) + (z - bz)
	if e != 0 {
		sb := math.Float64bits(s)
		if sb&1 == 0 {
			if (e > 0) == (s > 0) {
				sb++
			} else {
				sb--
			}
			s = math.Float64frombits(sb)
		}
	}
	return float32(s)
}
