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

// Constants shared by the kernels.
var (
	vOne     = hwy.Set(1)
	vHalf    = hwy.Set(0.5)
	vTwo     = hwy.Set(2)
	vInf     = hwy.Set(float32(stdmath.Inf(1)))
	vNegInf  = hwy.Set(float32(stdmath.Inf(-1)))
	vNaN     = hwy.Set(float32(stdmath.NaN()))
	signMask = hwy.Set(float32(stdmath.Copysign(0, -1)))
)
