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

var (
	vInvPi   = hwy.Set(1 / stdmath.Pi)
	vQuarter = hwy.Set(0.25)

	// π in four parts for Cody-Waite reduction, exact in products with
	// quotients below trigMax.
	trigPiA = hwy.Set(3.140625)
	trigPiB = hwy.Set(0.0009670257568359375)
	trigPiC = hwy.Set(6.2771141529083251953e-07)
	trigPiD = hwy.Set(1.2154201256553420762e-10)

	trigMax = hwy.Set(39000)

	sinC0 = hwy.Set(2.6083159809786593541503e-06)
	sinC1 = hwy.Set(-0.0001981069071916863322258)
	sinC2 = hwy.Set(0.00833307858556509017944336)
	sinC3 = hwy.Set(-0.166666597127914428710938)
)

// trigReduce returns a - q*π.
func trigReduce(a, q hwy.F32x8) hwy.F32x8 {
	d := hwy.NegMulAdd(q, trigPiA, a)
	d = hwy.NegMulAdd(q, trigPiB, d)
	d = hwy.NegMulAdd(q, trigPiC, d)
	return hwy.NegMulAdd(q, trigPiD, d)
}

// sinPoly is sin(d) for |d| <= π/2.
func sinPoly(d hwy.F32x8) hwy.F32x8 {
	s := d.Mul(d)
	u := hwy.MulAdd(sinC0, s, sinC1)
	u = hwy.MulAdd(u, s, sinC2)
	u = hwy.MulAdd(u, s, sinC3)
	return hwy.MulAdd(s, u.Mul(d), d)
}

// trigWide recomputes the lanes beyond trigMax, where the reduction runs
// out of bits, in float64.
func trigWide(x, y hwy.F32x8, f func(float64) float64) hwy.F32x8 {
	wide := x.Abs().Greater(trigMax)
	if !hwy.AnyTrue(wide) {
		return y
	}
	return hwy.BlendV(y, lanewise(x, f), wide)
}

// Sin returns the sine of each lane, in radians, within 3.5 ULP. Lanes
// with |x| > 39000 are evaluated in float64. Sin(±Inf) is NaN.
func Sin(x hwy.F32x8) hwy.F32x8 {
	a := x.Abs()
	q := a.Mul(vInvPi).Round()
	d := trigReduce(a, q)

	// sin(x) = sign(x) * (-1)^q * sin(d)
	odd := q.Mul(vHalf).Frac().NotEqual(hwy.Zero())
	d = d.Xor(x.And(signMask)).Xor(odd.And(signMask))
	return trigWide(x, sinPoly(d), stdmath.Sin)
}

// Cos returns the cosine of each lane, in radians, within 3.5 ULP. Lanes
// with |x| > 39000 are evaluated in float64. Cos(±Inf) is NaN.
func Cos(x hwy.F32x8) hwy.F32x8 {
	a := x.Abs()
	// q is odd and cos(a) = ±sin(a - q*π/2).
	q := hwy.MulAdd(a.Mul(vInvPi).Sub(vHalf).Round(), vTwo, vOne)
	d := trigReduce(a, q.Mul(vHalf))

	// Negative when q = 1 mod 4.
	neg := q.Sub(vOne).Mul(vQuarter).Frac().Equal(hwy.Zero())
	d = d.Xor(neg.And(signMask))
	return trigWide(x, sinPoly(d), stdmath.Cos)
}
