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
	"testing"

	"github.com/ajroetker/vec256/hwy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var (
	inf32 = float32(stdmath.Inf(1))
	nan32 = float32(stdmath.NaN())
)

func approx(rel float64) cmp.Options {
	return cmp.Options{cmpopts.EquateApprox(rel, 0), cmpopts.EquateNaNs()}
}

func checkLanes(t *testing.T, name string, got hwy.F32x8, want [hwy.Lanes]float32) {
	t.Helper()
	if diff := cmp.Diff(want, lanes(got), approx(1e-6)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func TestI0(t *testing.T) {
	x := hwy.Of(0, 1, -1, 5, 10, -2.5, 30, 100)
	checkLanes(t, "I0", I0(x), [hwy.Lanes]float32{
		1, 1.2660658777520082, 1.2660658777520082, 27.23987182360445,
		2815.716628466255, 3.289839144050123, 781672297823.9775, inf32,
	})
	checkLanes(t, "I0e", I0e(x), [hwy.Lanes]float32{
		1, 0.4657596075936404, 0.4657596075936404, 0.18354081260932836,
		0.12783333716342862, 0.27004644161220276, 0.0731459464822373, 0.03994437929909668,
	})
	checkLanes(t, "I0 edges", I0(hwy.Of(inf32, -inf32, nan32, 0, 0, 0, 0, 0)),
		[hwy.Lanes]float32{inf32, inf32, nan32, 1, 1, 1, 1, 1})
	checkLanes(t, "I0e edges", I0e(hwy.Of(inf32, -inf32, nan32, 0, 0, 0, 0, 0)),
		[hwy.Lanes]float32{0, 0, nan32, 1, 1, 1, 1, 1})
}

// The series and the asymptotic expansion must agree where they meet.
func TestI0eBranchesAgree(t *testing.T) {
	for _, x := range []float64{29.5, 30, 31} {
		series := i0Series(x) * stdmath.Exp(-x)
		asym := i0eAsymptotic(x)
		assert.InEpsilon(t, series, asym, 1e-12, "x=%v", x)
	}
}

func TestDigamma(t *testing.T) {
	x := hwy.Of(1, 0.5, 2, -0.5, -1.5, 10, 100, -2.25)
	checkLanes(t, "Digamma", Digamma(x), [hwy.Lanes]float32{
		-0.5772156649015329, -1.9635100260214235, 0.42278433509846713, 0.03648997397857652,
		0.7031566406452432, 2.251752589066721, 4.600161852738087, 4.158583564657972,
	})

	negZero := float32(stdmath.Copysign(0, -1))
	got := lanes(Digamma(hwy.Of(0, negZero, -1, -2, -inf32, inf32, nan32, 1e-3)))
	assert.True(t, stdmath.IsInf(float64(got[0]), -1), "digamma(+0) = -Inf")
	assert.True(t, stdmath.IsInf(float64(got[1]), 1), "digamma(-0) = +Inf")
	assert.True(t, got[2] != got[2], "negative integer")
	assert.True(t, got[3] != got[3], "negative integer")
	assert.True(t, got[4] != got[4], "-Inf")
	assert.True(t, stdmath.IsInf(float64(got[5]), 1))
	assert.True(t, got[6] != got[6])
	assert.InEpsilon(t, -1000.5755719318104, got[7], 1e-6)
}

func TestIgamma(t *testing.T) {
	a := hwy.Of(1, 1, 0.5, 0.5, 3, 3, 10, 100)
	x := hwy.Of(0.5, 3, 2, 0.3, 2, 7, 9.5, 90)
	p := [hwy.Lanes]float32{
		0.3934693402873666, 0.950212931632136, 0.9544997361036416, 0.5614219739190001,
		0.3233235838169366, 0.9703638361194782, 0.4781739777627941, 0.15822098918642963,
	}
	var q [hwy.Lanes]float32
	for i := range p {
		q[i] = float32(1 - float64(p[i]))
	}
	checkLanes(t, "Igamma", Igamma(a, x), p)
	if diff := cmp.Diff(q, lanes(Igammac(a, x)), cmpopts.EquateApprox(0, 2e-7)); diff != "" {
		t.Errorf("Igammac mismatch (-want +got):\n%s", diff)
	}
}

func TestIgammaSpecialCases(t *testing.T) {
	tests := []struct {
		name    string
		a, x    float32
		igamma  float32
		igammac float32
	}{
		{"negative a", -1, 1, nan32, nan32},
		{"negative x", 1, -1, nan32, nan32},
		{"a zero x positive", 0, 2, 1, 0},
		{"a zero x zero", 0, 0, nan32, nan32},
		{"x zero", 2, 0, 0, 1},
		{"a inf", inf32, 5, 0, 1},
		{"a inf x inf", inf32, inf32, nan32, nan32},
		{"x inf", 5, inf32, 1, 0},
		{"nan", nan32, 1, nan32, nan32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, x := hwy.Set(tt.a), hwy.Set(tt.x)
			if diff := cmp.Diff(tt.igamma, lanes(Igamma(a, x))[0], cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Igamma(%v, %v) (-want +got):\n%s", tt.a, tt.x, diff)
			}
			if diff := cmp.Diff(tt.igammac, lanes(Igammac(a, x))[0], cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Igammac(%v, %v) (-want +got):\n%s", tt.a, tt.x, diff)
			}
		})
	}
}

func TestIgammaLargeA(t *testing.T) {
	a := hwy.Of(1e6, 1e6, 1e14, 5000, 30, 1e20, 1e6, 1e14)
	x := hwy.Of(1001000, 998000, 100000017154048, 4900, 33, 1e20, 5e5, 2e14)
	checkLanes(t, "Igamma", Igamma(a, x), [hwy.Lanes]float32{
		0.8413447863683402, 0.022696114006736795, 0.9532992634461714, 0.07794495622651391,
		0.7226986290685928, 0.500000000013298, 0, 1,
	})

	for _, v := range []float32{1e6, 1e14, 1e20} {
		av := hwy.Set(v)
		p := lanes(Igamma(av, av))[0]
		q := lanes(Igammac(av, av))[0]
		assert.InDelta(t, 0.5, p, 2e-4, "P(%g, %g)", v, v)
		assert.InDelta(t, 1, p+q, 1e-6, "P+Q at a = x = %g", v)
	}
}

func TestErfinv(t *testing.T) {
	xs := hwy.Of(0.5, -0.5, 0.1, 1.5, 2, -1.2, 0.01, 0.9)
	var ys [hwy.Lanes]float32
	for i, x := range lanes(xs) {
		ys[i] = float32(stdmath.Erf(float64(x)))
	}
	got := lanes(Erfinv(hwy.FromArray(ys)))
	for i, x := range lanes(xs) {
		assert.InDelta(t, x, got[i], 5e-6, "erfinv(erf(%v))", x)
	}

	edges := lanes(Erfinv(hwy.Of(1, -1, 1.5, nan32, 0, 0, 0, 0)))
	assert.True(t, stdmath.IsInf(float64(edges[0]), 1))
	assert.True(t, stdmath.IsInf(float64(edges[1]), -1))
	assert.True(t, edges[2] != edges[2])
	assert.True(t, edges[3] != edges[3])
	assert.Equal(t, float32(0), edges[4])
}
