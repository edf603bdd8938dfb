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
	"github.com/stretchr/testify/assert"
)

// The rational approximation itself, evaluated in float64, is within 2e-7
// of erf.
func TestErfApproximationBound(t *testing.T) {
	worst := 0.0
	for x := -6.0; x <= 6.0; x += 1.0 / 1024 {
		a := stdmath.Abs(x)
		tt := 1 / (1 + erfP*a)
		r := (((erfA5*tt+erfA4)*tt+erfA3)*tt+erfA2)*tt + erfA1
		y := stdmath.Copysign(1-r*tt*stdmath.Exp(-x*x), x)
		worst = max(worst, stdmath.Abs(y-stdmath.Erf(x)))
	}
	if worst >= 2e-7 {
		t.Errorf("approximation error %g, want < 2e-7", worst)
	}
}

func TestErf(t *testing.T) {
	const tol = 2e-7
	var in, out [hwy.Lanes]float32
	for start := -6.0; start <= 6.0; start += 8.0 / 4096 {
		for i := range in {
			in[i] = float32(start + float64(i)/4096)
		}
		Erf(hwy.FromArray(in)).Store(out[:])
		for i := range in {
			want := stdmath.Erf(float64(in[i]))
			if d := stdmath.Abs(float64(out[i]) - want); d > tol {
				t.Fatalf("Erf(%v) = %v, want %v (error %g)", in[i], out[i], want, d)
			}
		}
	}
}

func TestErfOddAndLimits(t *testing.T) {
	x := hwy.Of(0.1, 0.5, 1, 2, 3.5, 0.01, 1e-6, 5)
	pos, neg := lanes(Erf(x)), lanes(Erf(x.Neg()))
	for i := range pos {
		assert.Equal(t, -pos[i], neg[i], "lane %d", i)
	}

	inf := float32(stdmath.Inf(1))
	got := lanes(Erf(hwy.Of(inf, -inf, float32(stdmath.NaN()), 10, -10, 0, 0, 0)))
	assert.Equal(t, float32(1), got[0])
	assert.Equal(t, float32(-1), got[1])
	assert.True(t, got[2] != got[2])
	assert.Equal(t, float32(1), got[3])
	assert.Equal(t, float32(-1), got[4])
	assert.Equal(t, float32(0), got[5])

	// Both sides of the switch from the series to the rational form.
	edge := hwy.Of(0.999, 0.99999994, 1, 1.0000001, -0.999, -1, 0.25, 1e-30)
	in := lanes(edge)
	for i, v := range lanes(Erf(edge)) {
		want := stdmath.Erf(float64(in[i]))
		assert.InDelta(t, want, float64(v), 2e-7, "lane %d", i)
	}
}

func BenchmarkErf(b *testing.B) {
	x := hwy.Arange(-2, 0.5)
	for b.Loop() {
		x = Erf(x)
	}
}
