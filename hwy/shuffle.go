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

// Shuffles follow the 256-bit AVX lane model: most operate independently on
// the lower (lanes 0-3) and upper (lanes 4-7) 128-bit halves.

// UnpackLo interleaves the low pairs of each half:
// [a0 b0 a1 b1 | a4 b4 a5 b5].
func UnpackLo(a, b F32x8) F32x8 {
	return F32x8{[Lanes]float32{
		a.v[0], b.v[0], a.v[1], b.v[1],
		a.v[4], b.v[4], a.v[5], b.v[5],
	}}
}

// UnpackHi interleaves the high pairs of each half:
// [a2 b2 a3 b3 | a6 b6 a7 b7].
func UnpackHi(a, b F32x8) F32x8 {
	return F32x8{[Lanes]float32{
		a.v[2], b.v[2], a.v[3], b.v[3],
		a.v[6], b.v[6], a.v[7], b.v[7],
	}}
}

// Shuffle selects two lanes from a and two from b within each half, using
// the 2-bit fields of imm (shufps).
func Shuffle(a, b F32x8, imm uint8) F32x8 {
	var r F32x8
	for base := 0; base < Lanes; base += 4 {
		r.v[base+0] = a.v[base+int(imm&3)]
		r.v[base+1] = a.v[base+int(imm>>2&3)]
		r.v[base+2] = b.v[base+int(imm>>4&3)]
		r.v[base+3] = b.v[base+int(imm>>6&3)]
	}
	return r
}

// Permute2F128 builds each half of the result from one of the four source
// halves (vperm2f128). Nibble k of imm selects result half k: 0 a.lo,
// 1 a.hi, 2 b.lo, 3 b.hi; bit 3 of the nibble zeroes the half instead.
func Permute2F128(a, b F32x8, imm uint8) F32x8 {
	var r F32x8
	for half := range 2 {
		ctl := imm >> (4 * half)
		if ctl&8 != 0 {
			continue
		}
		src := a
		if ctl&2 != 0 {
			src = b
		}
		from := int(ctl&1) * 4
		copy(r.v[half*4:half*4+4], src.v[from:from+4])
	}
	return r
}

// Reverse reverses the order of all eight lanes.
func (x F32x8) Reverse() F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = x.v[Lanes-1-i]
	}
	return r
}

// Broadcast copies lane to every lane. An out-of-range lane gives zero.
func (x F32x8) Broadcast(lane int) F32x8 {
	if lane < 0 || lane >= Lanes {
		return Zero()
	}
	return Set(x.v[lane])
}
