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

// cvtps rounds to the nearest int32, ties to even, like vcvtps2dq.
// NaN and out-of-range lanes give the integer indefinite value MinInt32.
func cvtps(x float32) int32 {
	r := math.RoundToEven(float64(x))
	if r != r || r < math.MinInt32 || r > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(r)
}

// Pow2 returns 2^n for lanes holding integer values by writing n+127 into
// the exponent field. The result wraps like the integer instructions it
// models: lanes outside [-126, 127] do not saturate.
func Pow2(n F32x8) F32x8 {
	var b [Lanes]uint32
	for i := range b {
		b[i] = uint32(cvtps(n.v[i])+127) << 23
	}
	return fromBits(b)
}

// GetExponent returns the unbiased exponent of each lane as a float,
// floor(log2|x|) for normal lanes. Zero, subnormal, Inf and NaN lanes give 0.
func (x F32x8) GetExponent() F32x8 {
	var r F32x8
	for i, b := range x.bits() {
		if e := b >> 23 & 0xff; e != 0 && e != 0xff {
			r.v[i] = float32(int32(e) - 127)
		}
	}
	return r
}

// GetMantissa replaces the exponent of each lane with 0, giving a value in
// [1, 2) with the sign of x for normal lanes.
func (x F32x8) GetMantissa() F32x8 {
	var b [Lanes]uint32
	for i, v := range x.bits() {
		b[i] = v&0x807fffff | 0x3f800000
	}
	return fromBits(b)
}
