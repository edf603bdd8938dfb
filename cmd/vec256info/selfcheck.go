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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/vec256/hwy"
	vmath "github.com/ajroetker/vec256/hwy/contrib/math"
	"github.com/ajroetker/vec256/hwy/contrib/transpose"
)

// checkResult is the outcome of one self-check. Metric is the worst error
// seen, in the unit of Bound.
type checkResult struct {
	Name   string
	Metric float64
	Bound  float64
	Passed bool
}

type check struct {
	name  string
	bound float64
	// run returns the worst error over samples random inputs.
	run func(ctx context.Context, rng *rand.Rand, samples int) (float64, error)
}

type unaryRef struct {
	f      vmath.Func
	vec    func(hwy.F32x8) hwy.F32x8
	ref    func(float64) float64
	lo, hi float64
}

type binaryRef struct {
	f        vmath.Func
	vec      func(a, b hwy.F32x8) hwy.F32x8
	ref      func(a, b float64) float64
	lo, hi   float64
	lo2, hi2 float64
}

var unaryRefs = []unaryRef{
	{vmath.FuncExp, vmath.Exp, math.Exp, -100, 88},
	{vmath.FuncExp2, vmath.Exp2, math.Exp2, -140, 127},
	{vmath.FuncExpm1, vmath.Expm1, math.Expm1, -20, 88},
	{vmath.FuncLog, vmath.Log, math.Log, 1e-30, 1e30},
	{vmath.FuncLog2, vmath.Log2, math.Log2, 1e-3, 1e6},
	{vmath.FuncLog10, vmath.Log10, math.Log10, 1e-3, 1e6},
	{vmath.FuncLog1p, vmath.Log1p, math.Log1p, -0.5, 10},
	{vmath.FuncSin, vmath.Sin, math.Sin, -100, 100},
	{vmath.FuncCos, vmath.Cos, math.Cos, -100, 100},
	{vmath.FuncTan, vmath.Tan, math.Tan, -1.5, 1.5},
	{vmath.FuncTanh, vmath.Tanh, math.Tanh, -10, 10},
	{vmath.FuncAtan, vmath.Atan, math.Atan, -100, 100},
	{vmath.FuncErfc, vmath.Erfc, math.Erfc, -4, 10},
}

var binaryRefs = []binaryRef{
	{vmath.FuncAtan2, vmath.Atan2, math.Atan2, -10, 10, -10, 10},
	{vmath.FuncHypot, vmath.Hypot, math.Hypot, -1e20, 1e20, -1e20, 1e20},
	{vmath.FuncPow, vmath.Pow, math.Pow, 0.01, 10, -8, 8},
}

func randomVec(rng *rand.Rand, lo, hi float64) hwy.F32x8 {
	var a [hwy.Lanes]float32
	for i := range a {
		a[i] = float32(lo + rng.Float64()*(hi-lo))
	}
	return hwy.FromArray(a)
}

func lanes(v hwy.F32x8) [hwy.Lanes]float32 {
	var a [hwy.Lanes]float32
	v.Store(a[:])
	return a
}

func allChecks() []check {
	var checks []check
	for _, u := range unaryRefs {
		checks = append(checks, check{
			name:  "ulp/" + u.f.String(),
			bound: vmath.ULPBound(u.f),
			run: func(ctx context.Context, rng *rand.Rand, samples int) (float64, error) {
				worst := 0.0
				for s := range samples {
					if s%256 == 0 && ctx.Err() != nil {
						return worst, ctx.Err()
					}
					x := randomVec(rng, u.lo, u.hi)
					got, in := lanes(u.vec(x)), lanes(x)
					for i := range got {
						worst = max(worst, vmath.ULPError(got[i], u.ref(float64(in[i]))))
					}
				}
				return worst, nil
			},
		})
	}
	for _, b := range binaryRefs {
		checks = append(checks, check{
			name:  "ulp/" + b.f.String(),
			bound: vmath.ULPBound(b.f),
			run: func(ctx context.Context, rng *rand.Rand, samples int) (float64, error) {
				worst := 0.0
				for s := range samples {
					if s%256 == 0 && ctx.Err() != nil {
						return worst, ctx.Err()
					}
					x, y := randomVec(rng, b.lo, b.hi), randomVec(rng, b.lo2, b.hi2)
					got, ix, iy := lanes(b.vec(x, y)), lanes(x), lanes(y)
					for i := range got {
						worst = max(worst, vmath.ULPError(got[i], b.ref(float64(ix[i]), float64(iy[i]))))
					}
				}
				return worst, nil
			},
		})
	}
	return append(checks,
		check{name: "abs/erf", bound: 2e-7, run: checkErf},
		check{name: "rel/exp_u20", bound: 2e-5, run: checkExpU20},
		check{name: "mismatch/transpose", bound: 0, run: checkTranspose},
	)
}

func checkErf(ctx context.Context, rng *rand.Rand, samples int) (float64, error) {
	worst := 0.0
	for s := range samples {
		if s%256 == 0 && ctx.Err() != nil {
			return worst, ctx.Err()
		}
		x := randomVec(rng, -4, 4)
		got, in := lanes(vmath.Erf(x)), lanes(x)
		for i := range got {
			worst = max(worst, math.Abs(float64(got[i])-math.Erf(float64(in[i]))))
		}
	}
	return worst, nil
}

func checkExpU20(ctx context.Context, rng *rand.Rand, samples int) (float64, error) {
	worst := 0.0
	for s := range samples {
		if s%256 == 0 && ctx.Err() != nil {
			return worst, ctx.Err()
		}
		x := randomVec(rng, -86.9, 88.7)
		got, in := lanes(vmath.ExpU20(x)), lanes(x)
		for i := range got {
			want := math.Exp(float64(in[i]))
			worst = max(worst, math.Abs(float64(got[i])-want)/want)
		}
	}
	return worst, nil
}

// checkTranspose counts elements that differ from a naive transpose over
// random shapes, including every partial 8x8 tile.
func checkTranspose(ctx context.Context, rng *rand.Rand, samples int) (float64, error) {
	mismatches := 0
	for s := range max(samples/64, 1) {
		if ctx.Err() != nil {
			return float64(mismatches), ctx.Err()
		}
		m, n := 1+s%8, 1+(s/8)%8
		if s >= 64 {
			m, n = 1+rng.IntN(100), 1+rng.IntN(100)
		}
		src := make([]float32, m*n)
		for i := range src {
			src[i] = rng.Float32()
		}
		dst := make([]float32, n*m)
		if m <= 8 && n <= 8 {
			transpose.Transpose8x8(src, n, dst, m, m, n)
		} else {
			transpose.TransposeMxN(src, n, dst, m, m, n)
		}
		for i := range m {
			for j := range n {
				if dst[j*m+i] != src[i*n+j] {
					mismatches++
				}
			}
		}
	}
	return float64(mismatches), nil
}

// runChecks runs every self-check concurrently and logs each result. It
// returns an error if any check exceeded its bound or was cancelled.
func runChecks(ctx context.Context, logger *slog.Logger, samples int, seed uint64) ([]checkResult, error) {
	checks := allChecks()
	results := make([]checkResult, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range checks {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			metric, err := c.run(ctx, rng, samples)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			results[i] = checkResult{Name: c.name, Metric: metric, Bound: c.bound, Passed: metric <= c.bound}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failures := 0
	for _, r := range results {
		if r.Passed {
			logger.Info("check passed", "check", r.Name, "worst", r.Metric, "bound", r.Bound)
			continue
		}
		failures++
		logger.Warn("check failed", "check", r.Name, "worst", r.Metric, "bound", r.Bound)
	}
	if failures > 0 {
		return results, fmt.Errorf("%d of %d checks exceeded their bound", failures, len(results))
	}
	return results, nil
}
