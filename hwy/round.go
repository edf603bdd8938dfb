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

// Rounding maps to vroundps with _MM_FROUND_NO_EXC: no lane ever raises a
// floating-point exception, NaN stays NaN and the sign of zero is kept.
// Converting through float64 is exact for these operations.

func (x F32x8) apply(f func(float64) float64) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = float32(f(float64(x.v[i])))
	}
	return r
}

// Ceil rounds toward +Inf.
func (x F32x8) Ceil() F32x8 { return x.apply(math.Ceil) }

// Floor rounds toward -Inf.
func (x F32x8) Floor() F32x8 { return x.apply(math.Floor) }

// Round rounds to the nearest integer, ties to even.
func (x F32x8) Round() F32x8 { return x.apply(math.RoundToEven) }

// Trunc rounds toward zero.
func (x F32x8) Trunc() F32x8 { return x.apply(math.Trunc) }

// Frac returns x - Trunc(x). Infinite lanes give NaN.
func (x F32x8) Frac() F32x8 {
	return x.Sub(x.Trunc())
}

// Sqrt returns the correctly rounded square root. Negative lanes give NaN.
// The float64 detour cannot double-round: 53 >= 2*24 + 2.
func (x F32x8) Sqrt() F32x8 { return x.apply(math.Sqrt) }

// Reciprocal returns 1/x.
func (x F32x8) Reciprocal() F32x8 {
	return one.Div(x)
}

// Rsqrt returns 1/Sqrt(x), computed with a full division rather than the
// approximate rsqrtps.
func (x F32x8) Rsqrt() F32x8 {
	return one.Div(x.Sqrt())
}
