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

import "github.com/ajroetker/vec256/hwy"

var (
	vLog2e = hwy.Set(1.442695040888963)

	// ln2 split so that k*vLn2Hi is exact for |k| < 2^9.
	vLn2Hi = hwy.Set(0.693145751953125)
	vLn2Lo = hwy.Set(1.428606765330187045e-06)

	expC0 = hwy.Set(0.000198527617612853646278381)
	expC1 = hwy.Set(0.00139304355252534151077271)
	expC2 = hwy.Set(0.00833336077630519866943359)
	expC3 = hwy.Set(0.0416664853692054748535156)
	expC4 = hwy.Set(0.166666671633720397949219)

	// exp overflows float32 from here up and is 0 below expUnderflow.
	expOverflow  = hwy.Set(88.72283935546875)
	expUnderflow = hwy.Set(-104)

	exp2C0 = hwy.Set(0.1535920892e-3)
	exp2C1 = hwy.Set(0.1339262701e-2)
	exp2C2 = hwy.Set(0.9618384764e-2)
	exp2C3 = hwy.Set(0.5550347269e-1)
	exp2C4 = hwy.Set(0.2402264476)
	exp2C5 = hwy.Set(0.6931471825)

	exp2Overflow  = hwy.Set(128)
	exp2Underflow = hwy.Set(-151)

	// Taylor coefficients 1/3! through 1/12!.
	expm1C3  = hwy.Set(1.0 / 6)
	expm1C4  = hwy.Set(1.0 / 24)
	expm1C5  = hwy.Set(1.0 / 120)
	expm1C6  = hwy.Set(1.0 / 720)
	expm1C7  = hwy.Set(1.0 / 5040)
	expm1C8  = hwy.Set(1.0 / 40320)
	expm1C9  = hwy.Set(1.0 / 362880)
	expm1C10 = hwy.Set(1.0 / 3628800)
	expm1C11 = hwy.Set(1.0 / 39916800)
	expm1C12 = hwy.Set(1.0 / 479001600)

	expm1Min = hwy.Set(-30)
	expm1Max = hwy.Set(64)
	// 2^k - 1 is exact in float32 up to k = 24.
	expm1ExactK = hwy.Set(24)
)

// expReduce splits x as k*ln2 + r with k integral and |r| <= ln2/2.
func expReduce(x hwy.F32x8) (k, r hwy.F32x8) {
	k = x.Mul(vLog2e).Round()
	r = hwy.NegMulAdd(k, vLn2Hi, x)
	r = hwy.NegMulAdd(k, vLn2Lo, r)
	return k, r
}

// ldexp returns x * 2^k. The scale is applied in two halves so that any k
// in [-252, 254] stays inside the range of Pow2 and subnormal results are
// rounded once.
func ldexp(x, k hwy.F32x8) hwy.F32x8 {
	k1 := k.Mul(vHalf).Floor()
	return x.Mul(hwy.Pow2(k1)).Mul(hwy.Pow2(k.Sub(k1)))
}

// Exp returns e**x, within 1 ULP. Lanes from 88.72283935546875 up give
// +Inf, lanes below -104 give 0 and subnormal results are rounded once.
func Exp(x hwy.F32x8) hwy.F32x8 {
	k, r := expReduce(x)

	u := hwy.MulAdd(expC0, r, expC1)
	u = hwy.MulAdd(u, r, expC2)
	u = hwy.MulAdd(u, r, expC3)
	u = hwy.MulAdd(u, r, expC4)
	u = hwy.MulAdd(u, r, vHalf)
	// 1 + (r + r²u), adding 1 last.
	u = vOne.Add(hwy.MulAdd(r.Mul(r), u, r))

	y := ldexp(u, k)
	y = hwy.BlendV(y, vInf, x.GreaterEqual(expOverflow))
	return hwy.BlendV(y, hwy.Zero(), x.Less(expUnderflow))
}

// Exp2 returns 2**x, within 1 ULP. Lanes from 128 up give +Inf.
func Exp2(x hwy.F32x8) hwy.F32x8 {
	k := x.Round()
	r := x.Sub(k)

	u := hwy.MulAdd(exp2C0, r, exp2C1)
	u = hwy.MulAdd(u, r, exp2C2)
	u = hwy.MulAdd(u, r, exp2C3)
	u = hwy.MulAdd(u, r, exp2C4)
	u = hwy.MulAdd(u, r, exp2C5)
	u = hwy.MulAdd(u, r, vOne)

	y := ldexp(u, k)
	y = hwy.BlendV(y, vInf, x.GreaterEqual(exp2Overflow))
	return hwy.BlendV(y, hwy.Zero(), x.Less(exp2Underflow))
}

// expm1Poly is e**r - 1 for |r| < 1 by its Taylor series.
func expm1Poly(r hwy.F32x8) hwy.F32x8 {
	p := hwy.MulAdd(expm1C12, r, expm1C11)
	p = hwy.MulAdd(p, r, expm1C10)
	p = hwy.MulAdd(p, r, expm1C9)
	p = hwy.MulAdd(p, r, expm1C8)
	p = hwy.MulAdd(p, r, expm1C7)
	p = hwy.MulAdd(p, r, expm1C6)
	p = hwy.MulAdd(p, r, expm1C5)
	p = hwy.MulAdd(p, r, expm1C4)
	p = hwy.MulAdd(p, r, expm1C3)
	p = hwy.MulAdd(p, r, vHalf)
	return hwy.MulAdd(r.Mul(r), p, r)
}

// Expm1 returns e**x - 1, within 1 ULP and accurate near zero.
//
// Lanes in [0, 1) use the series directly. Elsewhere x = k*ln2 + r and
//
//	e**x - 1 = 2^k * expm1(r) + (2^k - 1)
//
// with 2^-k folded into expm1(r) once 2^k - 1 is no longer exact. Lanes
// above 64 return Exp(x).
func Expm1(x hwy.F32x8) hwy.F32x8 {
	// Max returns its second operand for NaN, so NaN lanes stay NaN.
	xs := hwy.Max(expm1Min, x)
	k := xs.Mul(vLog2e).Round()
	direct := xs.GreaterEqual(hwy.Zero()).And(xs.Less(vOne))
	k = hwy.BlendV(k, hwy.Zero(), direct)
	r := hwy.NegMulAdd(k, vLn2Hi, xs)
	r = hwy.NegMulAdd(k, vLn2Lo, r)
	e := expm1Poly(r)

	s := hwy.Pow2(k)
	wide := k.Greater(expm1ExactK)
	e = hwy.BlendV(e, e.Sub(hwy.Pow2(k.Neg())), wide)
	c := hwy.BlendV(s.Sub(vOne), s, wide)
	y := hwy.MulAdd(s, e, c)

	y = hwy.BlendV(y, Exp(x), x.Greater(expm1Max))
	return hwy.BlendV(y, x, x.Equal(hwy.Zero()))
}
