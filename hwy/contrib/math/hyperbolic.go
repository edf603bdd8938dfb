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

// Odd polynomial for tanh on |x| < 1, fitted in relative error:
// tanh(x) = x + x³ * P(x²).
var (
	tanhC0 = hwy.Set(-0.333333283662796)
	tanhC1 = hwy.Set(0.13333190977573395)
	tanhC2 = hwy.Set(-0.05395236238837242)
	tanhC3 = hwy.Set(0.02178184688091278)
	tanhC4 = hwy.Set(-0.008589019067585468)
	tanhC5 = hwy.Set(0.003071458777412772)
	tanhC6 = hwy.Set(-0.0008367857662960887)
	tanhC7 = hwy.Set(0.00012039187276968732)
)

// Tanh returns the hyperbolic tangent, within 1 ULP. Below |x| = 1 it
// evaluates the polynomial, above it 1 - 2/(expm1(2|x|) + 2) with the sign
// of x restored. Large lanes saturate to ±1.
func Tanh(x hwy.F32x8) hwy.F32x8 {
	z := x.Mul(x)
	p := hwy.MulAdd(tanhC7, z, tanhC6)
	p = hwy.MulAdd(p, z, tanhC5)
	p = hwy.MulAdd(p, z, tanhC4)
	p = hwy.MulAdd(p, z, tanhC3)
	p = hwy.MulAdd(p, z, tanhC2)
	p = hwy.MulAdd(p, z, tanhC1)
	p = hwy.MulAdd(p, z, tanhC0)
	small := hwy.MulAdd(z.Mul(x), p, x)

	a := x.Abs()
	e := Expm1(a.Add(a))
	large := vOne.Sub(vTwo.Div(e.Add(vTwo))).Or(x.And(signMask))
	return hwy.BlendV(large, small, a.Less(vOne))
}
