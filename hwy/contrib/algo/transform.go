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

package algo

import (
	"github.com/ajroetker/vec256/hwy"
	"github.com/ajroetker/vec256/hwy/contrib/math"
)

type (
	// VecFunc is a lane-wise operation on one vector.
	VecFunc func(hwy.F32x8) hwy.F32x8

	// VecFunc2 is a lane-wise operation on two vectors.
	VecFunc2 func(a, b hwy.F32x8) hwy.F32x8
)

// Transform applies fn to src in 8-lane steps and writes the results to dst.
// It processes min(len(src), len(dst)) elements. The final partial vector is
// loaded with zeroed upper lanes, and only the live lanes are stored.
//
// Example usage:
//
//	algo.Transform(in, out, func(x hwy.F32x8) hwy.F32x8 {
//	    return hwy.MulAdd(x, x, x)
//	})
func Transform(src, dst []float32, fn VecFunc) {
	n := min(len(src), len(dst))
	hwy.ProcessWithTail(n,
		func(offset int) {
			fn(hwy.Load(src[offset:])).Store(dst[offset:])
		},
		func(offset, count int) {
			fn(hwy.LoadN(src[offset:], count)).StoreN(dst[offset:], count)
		},
	)
}

// Transform2 applies fn to pairs of vectors from a and b and writes the
// results to dst. It processes the length of the shortest slice.
func Transform2(a, b, dst []float32, fn VecFunc2) {
	n := min(len(a), len(b), len(dst))
	hwy.ProcessWithTail(n,
		func(offset int) {
			fn(hwy.Load(a[offset:]), hwy.Load(b[offset:])).Store(dst[offset:])
		},
		func(offset, count int) {
			x := hwy.LoadN(a[offset:], count)
			y := hwy.LoadN(b[offset:], count)
			fn(x, y).StoreN(dst[offset:], count)
		},
	)
}

// ExpTransform applies exp(x) to each element.
func ExpTransform(input, output []float32) {
	Transform(input, output, math.Exp)
}

// ExpU20Transform applies the fast exponential to each element. Inputs below
// ln(FLT_MIN) produce 0.
func ExpU20Transform(input, output []float32) {
	Transform(input, output, math.ExpU20)
}

// ErfTransform applies erf(x) to each element.
func ErfTransform(input, output []float32) {
	Transform(input, output, math.Erf)
}

// LogTransform applies ln(x) to each element.
func LogTransform(input, output []float32) {
	Transform(input, output, math.Log)
}

// SinTransform applies sin(x) to each element.
func SinTransform(input, output []float32) {
	Transform(input, output, math.Sin)
}

// CosTransform applies cos(x) to each element.
func CosTransform(input, output []float32) {
	Transform(input, output, math.Cos)
}

// TanhTransform applies tanh(x) to each element.
func TanhTransform(input, output []float32) {
	Transform(input, output, math.Tanh)
}

var one = hwy.Set(1)

// sigmoid passes NaN lanes through; ExpU20 alone would turn them into 0.
func sigmoid(x hwy.F32x8) hwy.F32x8 {
	r := one.Div(one.Add(math.ExpU20(x.Neg())))
	return hwy.BlendV(r, x, x.IsNaN())
}

// SigmoidTransform applies 1/(1+exp(-x)) to each element. NaN stays NaN.
func SigmoidTransform(input, output []float32) {
	Transform(input, output, sigmoid)
}
