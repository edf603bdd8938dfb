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

package hwy

import "math"

// These treat a real vector as complex numbers with zero imaginary part.

var (
	piVec  = Set(math.Pi)
	nanVec = Set(float32(math.NaN()))
)

// Angle returns the argument of each lane viewed as a complex number:
// 0 for non-negative lanes, π for negative lanes and NaN for NaN lanes.
// -0.0 is not negative and gets 0.
func (x F32x8) Angle() F32x8 {
	angle := BlendV(Zero(), piVec, x.Less(Zero()))
	return BlendV(angle, nanVec, x.IsNaN())
}

// Real returns x.
func (x F32x8) Real() F32x8 { return x }

// Imag returns zero.
func (x F32x8) Imag() F32x8 { return Zero() }

// Conj returns x.
func (x F32x8) Conj() F32x8 { return x }
