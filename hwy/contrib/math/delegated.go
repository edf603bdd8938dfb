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

// The functions in this file have no vector kernel yet. They evaluate each
// lane in float64 with the standard library and round the result to float32
// once, so they are accurate but run at scalar speed. NaN and Inf follow the
// C library rules that package math documents.

func lanewise(x hwy.F32x8, f func(float64) float64) hwy.F32x8 {
	return x.Map(func(v float32) float32 {
		return float32(f(float64(v)))
	})
}

func lanewise2(x, y hwy.F32x8, f func(a, b float64) float64) hwy.F32x8 {
	return x.Map2(y, func(a, b float32) float32 {
		return float32(f(float64(a), float64(b)))
	})
}

// Acos returns the arc cosine of each lane. |x| > 1 gives NaN.
func Acos(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Acos) }

// Acosh returns the inverse hyperbolic cosine. x < 1 gives NaN.
func Acosh(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Acosh) }

// Asin returns the arc sine of each lane. |x| > 1 gives NaN.
func Asin(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Asin) }

// Atan returns the arc tangent of each lane.
func Atan(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Atan) }

// Atanh returns the inverse hyperbolic tangent. Atanh(±1) = ±Inf.
func Atanh(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Atanh) }

// Atan2 returns the arc tangent of y/x, using the signs of both lanes to
// pick the quadrant.
func Atan2(y, x hwy.F32x8) hwy.F32x8 { return lanewise2(y, x, stdmath.Atan2) }

// Copysign returns x with the sign bit of y. It is exact and works on NaN
// and zero lanes too.
func Copysign(x, y hwy.F32x8) hwy.F32x8 {
	return x.Abs().Or(y.And(signMask))
}

// Erfc returns the complementary error function 1 - erf(x).
func Erfc(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Erfc) }

// Fmod returns the remainder of x/y with the sign of x. It is exact.
func Fmod(x, y hwy.F32x8) hwy.F32x8 { return lanewise2(x, y, stdmath.Mod) }

// Sinh returns the hyperbolic sine.
func Sinh(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Sinh) }

// Cosh returns the hyperbolic cosine.
func Cosh(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Cosh) }

// Tan returns the tangent of each lane, in radians.
func Tan(x hwy.F32x8) hwy.F32x8 { return lanewise(x, stdmath.Tan) }

func lgamma(x float64) float64 {
	r, _ := stdmath.Lgamma(x)
	return r
}

// Lgamma returns log|Γ(x)|. Non-positive integers give +Inf.
func Lgamma(x hwy.F32x8) hwy.F32x8 { return lanewise(x, lgamma) }

// Hypot returns sqrt(x*x + y*y) without intermediate overflow.
func Hypot(x, y hwy.F32x8) hwy.F32x8 { return lanewise2(x, y, stdmath.Hypot) }

// Nextafter returns the next float32 after x in the direction of y.
func Nextafter(x, y hwy.F32x8) hwy.F32x8 { return x.Map2(y, stdmath.Nextafter32) }

// Pow returns x**y.
func Pow(x, y hwy.F32x8) hwy.F32x8 { return lanewise2(x, y, stdmath.Pow) }
