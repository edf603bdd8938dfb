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

package math

import (
	stdmath "math"

	"github.com/ajroetker/vec256/hwy"
)

// These functions have no vector algorithm. Each one stores the vector,
// evaluates the scalar function in float64 for every lane and reloads, so
// it costs eight scalar calls.

func scalar(f func(float64) float64) func(float32) float32 {
	return func(v float32) float32 { return float32(f(float64(v))) }
}

func scalar2(f func(a, b float64) float64) func(a, b float32) float32 {
	return func(a, b float32) float32 { return float32(f(float64(a), float64(b))) }
}

// Erfinv returns the inverse error function. Erfinv(±1) = ±Inf and
// |x| > 1 gives NaN.
func Erfinv(x hwy.F32x8) hwy.F32x8 {
	return x.Map(scalar(stdmath.Erfinv))
}

// I0 returns the modified Bessel function of the first kind of order 0.
// It overflows to +Inf for |x| above about 91.9.
func I0(x hwy.F32x8) hwy.F32x8 {
	return x.Map(scalar(besselI0))
}

// I0e returns the exponentially scaled I0, exp(-|x|) * I0(x).
func I0e(x hwy.F32x8) hwy.F32x8 {
	return x.Map(scalar(besselI0e))
}

// Digamma returns ψ(x), the derivative of log Γ(x).
// Digamma(±0) = ∓Inf and negative integers give NaN.
func Digamma(x hwy.F32x8) hwy.F32x8 {
	return x.Map(scalar(digamma))
}

// Igamma returns the regularized lower incomplete gamma function P(a, x)
// lane-wise.
//
// Special cases:
//   - a < 0 or x < 0 gives NaN
//   - a = 0 gives 1 for x > 0 and NaN for x = 0
//   - x = 0 gives 0
//   - a = +Inf gives 0, or NaN when x is +Inf too
//   - x = +Inf gives 1
func Igamma(a, x hwy.F32x8) hwy.F32x8 {
	return a.Map2(x, scalar2(igamma))
}

// Igammac returns the regularized upper incomplete gamma function
// Q(a, x) = 1 - P(a, x) lane-wise, with the special cases of Igamma
// mirrored.
func Igammac(a, x hwy.F32x8) hwy.F32x8 {
	return a.Map2(x, scalar2(igammac))
}
