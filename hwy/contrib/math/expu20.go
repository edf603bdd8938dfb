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
	expU20C1 = hwy.Set(0.999999701)
	expU20C2 = hwy.Set(0.499991506)
	expU20C3 = hwy.Set(0.166676521)
	expU20C4 = hwy.Set(0.0418978221)
	expU20C5 = hwy.Set(0.00828929059)

	expU20Log2e = hwy.Set(stdmath.Float32frombits(0x3fb8aa3b))
	expU20Ln2   = hwy.Set(stdmath.Float32frombits(0x3f317218))

	// ln(FLT_MIN) and ln(FLT_MAX).
	expU20Min = hwy.Set(stdmath.Float32frombits(0xc2aeac50))
	expU20Max = hwy.Set(stdmath.Float32frombits(0x42b17218))
)

// ExpU20 returns e**x with a relative error below 2e-5 (about 20 ULP),
// trading accuracy for speed against Exp.
//
// x is clamped to [ln(FLT_MIN), ln(FLT_MAX)] and split as n*ln2 + r with
// n = floor(x*log2(e) + 0.5). exp(r) comes from a degree-5 polynomial and
// is scaled by 2^(n-1) and then 2, so that n = 128 does not overflow the
// exponent field.
//
// Lanes below ln(FLT_MIN) give 0. The result also underflows to 0 for x
// below about -86.99, where 2^(n-1) is no longer a normal float. At the
// upper clamp n is 128 and r is exactly 0, so x >= 88.72283935546875, +Inf
// and NaN all give +Inf.
func ExpU20(x hwy.F32x8) hwy.F32x8 {
	tooSmall := x.Less(expU20Min)
	s := hwy.Max(hwy.Min(x, expU20Max), expU20Min)

	n := hwy.MulAdd(s, expU20Log2e, vHalf).Floor()
	r := hwy.NegMulAdd(n, expU20Ln2, s)

	p := hwy.MulAdd(r, expU20C5, expU20C4)
	p = hwy.MulAdd(r, p, expU20C3)
	p = hwy.MulAdd(r, p, expU20C2)
	p = hwy.MulAdd(r, p, expU20C1)
	p = hwy.MulAdd(r, p, vOne)

	scale := hwy.BlendV(hwy.Pow2(n.Sub(vOne)), hwy.Zero(), tooSmall)
	return p.Mul(scale).Mul(vTwo)
}
