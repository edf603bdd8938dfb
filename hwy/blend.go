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

import "fmt"

// Blend picks lane i from b when bit i of mask is set, otherwise from a.
// This is vblendps with an immediate.
func Blend(a, b F32x8, mask uint8) F32x8 {
	r := a
	for i := range r.v {
		if mask&(1<<i) != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// BlendV picks lane i from b when the sign bit of mask lane i is set,
// otherwise from a. For mask vectors produced by comparisons this is
// "true lanes come from b". This is vblendvps.
func BlendV(a, b, mask F32x8) F32x8 {
	r := a
	for i, m := range mask.bits() {
		if m&signBit != 0 {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// Arange returns base + i*step in lane i.
func Arange(base, step float32) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = base + float32(i)*step
	}
	return r
}

// SetN returns a with its first count lanes replaced by those of b.
// count must be in [0, 8]; SetN(a, b, 8) is b.
func SetN(a, b F32x8, count int) F32x8 {
	if count < 0 || count > Lanes {
		panic(fmt.Sprintf("hwy: SetN count %d out of range [0, %d]", count, Lanes))
	}
	if count == Lanes {
		return b
	}
	return Blend(a, b, uint8(1<<count-1))
}
