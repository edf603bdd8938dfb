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

// Package math provides transcendental functions over hwy.F32x8.
//
// Functions fall into three groups.
//
// Vector kernels built from whole-vector hwy operations: range reduction,
// a polynomial and a rescale. Each meets ULPBound:
//   - Exp, Exp2, Expm1: Cody-Waite reduction by ln2 and a minimax or
//     Taylor polynomial, rescaled with Pow2.
//   - Log, Log2, Log10, Log1p: mantissa and exponent split with
//     GetMantissa and GetExponent, then the fdlibm logf kernel.
//   - Sin, Cos: four-part reduction by π for |x| <= 39000 and an odd
//     polynomial. Wider lanes are evaluated in float64.
//   - Tanh: an odd polynomial below |x| = 1, Expm1 above.
//   - Erf: Taylor series below |x| = 1, Abramowitz and Stegun 7.1.26
//     above. Absolute error below 2e-7 on [-6, 6].
//   - ExpU20: range-reduced exponential with a degree-5 polynomial,
//     relative error below 2e-5. Faster and less accurate than Exp.
//   - Copysign: exact bit operations.
//
// Degraded to float64. These have no vector kernel yet: each lane is
// evaluated with package math and rounded once to float32, so they are
// accurate but run at scalar speed:
//
//	Acos Acosh Asin Atan Atanh Atan2 Erfc Fmod Sinh Cosh Tan Lgamma
//	Hypot Nextafter Pow
//
// Per-lane scalar fallbacks. These have no vector algorithm and pay a
// store, eight scalar calls and a reload:
//
//	Erfinv I0 I0e Digamma Igamma Igammac
//
// All functions are safe for concurrent use. Constant tables are
// package-level values that are never written after init.
package math
