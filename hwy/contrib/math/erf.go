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

// Abramowitz and Stegun 7.1.26.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

var (
	vErfP  = hwy.Set(erfP)
	vErfA1 = hwy.Set(erfA1)
	vErfA2 = hwy.Set(erfA2)
	vErfA3 = hwy.Set(erfA3)
	vErfA4 = hwy.Set(erfA4)
	vErfA5 = hwy.Set(erfA5)
)

// Taylor series of erf about 0, in x²: erf(x) = x * Q(x²) for |x| < 1.
var (
	erfT0  = hwy.Set(1.128379225730896)
	erfT1  = hwy.Set(-0.37612637877464294)
	erfT2  = hwy.Set(0.11283791810274124)
	erfT3  = hwy.Set(-0.02686617150902748)
	erfT4  = hwy.Set(0.005223977845162153)
	erfT5  = hwy.Set(-0.0008548327023163438)
	erfT6  = hwy.Set(0.00012055332626914605)
	erfT7  = hwy.Set(-1.4925650248187594e-05)
	erfT8  = hwy.Set(1.6462114444948384e-06)
	erfT9  = hwy.Set(-1.6365844146548625e-07)
	erfT10 = hwy.Set(1.4807192805221803e-08)
	erfT11 = hwy.Set(-1.2290555240213052e-09)
)

// Erf returns the error function of each lane, within 2e-7 of erf.
//
// For |x| < 1 it sums the Taylor series x * Q(x²). Elsewhere:
//
//	t = 1 / (1 + p|x|)
//	erf(x) = sign(x) * (1 - poly(t)*t*exp(-x²))
//
// Erf(±Inf) = ±1, Erf(NaN) = NaN.
func Erf(x hwy.F32x8) hwy.F32x8 {
	sign := x.And(signMask)
	abs := sign.Xor(x)
	t := vOne.Div(hwy.MulAdd(vErfP, abs, vOne))

	r := hwy.MulAdd(vErfA5, t, vErfA4)
	r = hwy.MulAdd(r, t, vErfA3)
	r = hwy.MulAdd(r, t, vErfA2)
	r = hwy.MulAdd(r, t, vErfA1)

	x2 := x.Mul(x)
	e := Exp(x2.Neg()).Neg()
	y := hwy.MulAdd(e.Mul(t), r, vOne).Xor(sign)

	q := hwy.MulAdd(erfT11, x2, erfT10)
	q = hwy.MulAdd(q, x2, erfT9)
	q = hwy.MulAdd(q, x2, erfT8)
	q = hwy.MulAdd(q, x2, erfT7)
	q = hwy.MulAdd(q, x2, erfT6)
	q = hwy.MulAdd(q, x2, erfT5)
	q = hwy.MulAdd(q, x2, erfT4)
	q = hwy.MulAdd(q, x2, erfT3)
	q = hwy.MulAdd(q, x2, erfT2)
	q = hwy.MulAdd(q, x2, erfT1)
	q = hwy.MulAdd(q, x2, erfT0)
	return hwy.BlendV(y, q.Mul(x), abs.Less(vOne))
}
