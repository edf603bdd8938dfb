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

// Package algo provides slice-level algorithms built on hwy.F32x8.
//
// Each function walks its input in 8-lane steps and finishes a partial final
// vector with a masked load and store, so callers never handle tails.
//
// # Transform API
//
// Generic transforms:
//   - Transform(src, dst []float32, fn VecFunc)
//   - Transform2(a, b, dst []float32, fn VecFunc2)
//   - ParallelTransform(pool, src, dst, fn)
//
// Named transforms backed by contrib/math:
//   - ExpTransform, ExpU20Transform, ErfTransform
//   - LogTransform, SinTransform, CosTransform
//   - TanhTransform, SigmoidTransform
//
// # Copy and search
//
//   - Fill, Convert, CopyIf
//   - Find, FindIf, CountIf, All, Any, None
//
// Predicates are VecFunc values that return a mask vector; a lane is selected
// when its sign bit is set, which is what the hwy comparisons produce.
//
// # Example Usage
//
//	import "github.com/ajroetker/vec256/hwy/contrib/algo"
//
//	func Activate(input []float32) []float32 {
//	    output := make([]float32, len(input))
//	    algo.ErfTransform(input, output)
//	    return output
//	}
//
//	func Square(input []float32) []float32 {
//	    output := make([]float32, len(input))
//	    algo.Transform(input, output, func(x hwy.F32x8) hwy.F32x8 {
//	        return x.Mul(x)
//	    })
//	    return output
//	}
package algo
