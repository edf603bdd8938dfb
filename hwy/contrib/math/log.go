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
	// fdlibm logf coefficients.
	logLg1 = hwy.Set(0xaaaaaa.0p-24)
	logLg2 = hwy.Set(0xccce13.0p-25)
	logLg3 = hwy.Set(0x91e9ee.0p-25)
	logLg4 = hwy.Set(0xf89e26.0p-26)

	logLn2Hi = hwy.Set(stdmath.Float32frombits(0x3f317180))
	logLn2Lo = hwy.Set(stdmath.Float32frombits(0x3717f7d1))

	vSqrt2      = hwy.Set(stdmath.Float32frombits(0x3fb504f3))
	vMinNormal  = hwy.Set(0x1p-126)
	vSubnormal  = hwy.Set(0x1p25)
	vSubnormalK = hwy.Set(25)

	// Keeps the top 12 significant bits.
	logHiMask = hwy.Set(stdmath.Float32frombits(0xfffff000))

	log2InvLn2Hi = hwy.Set(stdmath.Float32frombits(0x3fb8b000))
	log2InvLn2Lo = hwy.Set(stdmath.Float32frombits(0xb9389ad4))

	log10InvLn10Hi = hwy.Set(stdmath.Float32frombits(0x3ede6000))
	log10InvLn10Lo = hwy.Set(stdmath.Float32frombits(0xb804ead9))
	log10Of2Hi     = hwy.Set(stdmath.Float32frombits(0x3e9a2080))
	log10Of2Lo     = hwy.Set(stdmath.Float32frombits(0x355427db))
)

// logReduce writes a positive finite x as 2^k * (1+f) with 1+f in
// [sqrt(2)/2, sqrt(2)). Subnormal lanes are scaled into the normal range
// first.
func logReduce(x hwy.F32x8) (f, k hwy.F32x8) {
	tiny := x.Less(vMinNormal)
	x = hwy.BlendV(x, x.Mul(vSubnormal), tiny)
	m := x.GetMantissa()
	k = x.GetExponent()
	k = hwy.BlendV(k, k.Sub(vSubnormalK), tiny)

	high := m.Greater(vSqrt2)
	m = hwy.BlendV(m, m.Mul(vHalf), high)
	k = hwy.BlendV(k, k.Add(vOne), high)
	return m.Sub(vOne), k
}

// logKernel returns s = f/(2+f), hfsq = f²/2 and R such that
//
//	log(1+f) = f - hfsq + s*(hfsq+R)
func logKernel(f hwy.F32x8) (s, hfsq, r hwy.F32x8) {
	s = f.Div(vTwo.Add(f))
	z := s.Mul(s)
	w := z.Mul(z)
	t1 := w.Mul(hwy.MulAdd(w, logLg4, logLg2))
	t2 := z.Mul(hwy.MulAdd(w, logLg3, logLg1))
	return s, vHalf.Mul(f).Mul(f), t2.Add(t1)
}

// logSpecial patches the lanes where x is not positive and finite: zero
// gives -Inf, negative lanes give NaN, and +Inf and NaN pass through.
func logSpecial(x, y hwy.F32x8) hwy.F32x8 {
	y = hwy.BlendV(y, x, x.Equal(vInf).Or(x.IsNaN()))
	y = hwy.BlendV(y, vNegInf, x.Equal(hwy.Zero()))
	return hwy.BlendV(y, vNaN, x.Less(hwy.Zero()))
}

// Log returns the natural logarithm, within 1 ULP. Log(±0) = -Inf and
// negative lanes give NaN.
func Log(x hwy.F32x8) hwy.F32x8 {
	f, k := logReduce(x)
	s, hfsq, r := logKernel(f)
	a := hwy.MulAdd(s, hfsq.Add(r), k.Mul(logLn2Lo))
	y := hwy.MulAdd(k, logLn2Hi, f.Sub(hfsq.Sub(a)))
	return logSpecial(x, y)
}

// logSplit returns k and hi + lo = log(1+f) for x = 2^k * (1+f). hi keeps
// 12 significant bits, so hi times a 12-bit constant is exact.
func logSplit(x hwy.F32x8) (hi, lo, k hwy.F32x8) {
	f, k := logReduce(x)
	s, hfsq, r := logKernel(f)
	hi = f.Sub(hfsq).And(logHiMask)
	lo = f.Sub(hi).Sub(hfsq).Add(s.Mul(hfsq.Add(r)))
	return hi, lo, k
}

// Log2 returns the binary logarithm, within 1 ULP. Powers of two are exact.
func Log2(x hwy.F32x8) hwy.F32x8 {
	hi, lo, k := logSplit(x)
	t := hwy.MulAdd(lo.Add(hi), log2InvLn2Lo, lo.Mul(log2InvLn2Hi))
	t = hwy.MulAdd(hi, log2InvLn2Hi, t)
	return logSpecial(x, t.Add(k))
}

// Log10 returns the decimal logarithm, within 1 ULP.
func Log10(x hwy.F32x8) hwy.F32x8 {
	hi, lo, k := logSplit(x)
	t := hwy.MulAdd(k, log10Of2Lo, lo.Add(hi).Mul(log10InvLn10Lo))
	t = hwy.MulAdd(lo, log10InvLn10Hi, t)
	t = hwy.MulAdd(hi, log10InvLn10Hi, t)
	return logSpecial(x, hwy.MulAdd(k, log10Of2Hi, t))
}

// Log1p returns log(1 + x), within 1 ULP and accurate near zero. The
// rounding error of 1 + x is carried into the kernel as c/u.
func Log1p(x hwy.F32x8) hwy.F32x8 {
	u := vOne.Add(x)
	c := x.Sub(u.Sub(vOne)).Div(u)
	f, k := logReduce(u)
	s, hfsq, r := logKernel(f)
	a := hwy.MulAdd(s, hfsq.Add(r), hwy.MulAdd(k, logLn2Lo, c))
	y := hwy.MulAdd(k, logLn2Hi, f.Sub(hfsq.Sub(a)))
	y = logSpecial(u, y)
	return hwy.BlendV(y, x, x.Equal(hwy.Zero()))
}
