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

// minps and maxps return the second operand whenever the comparison is
// false, which covers NaN in either lane and +0/-0 pairs.

func minps(a, b F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		if a.v[i] < b.v[i] {
			r.v[i] = a.v[i]
		} else {
			r.v[i] = b.v[i]
		}
	}
	return r
}

func maxps(a, b F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		if a.v[i] > b.v[i] {
			r.v[i] = a.v[i]
		} else {
			r.v[i] = b.v[i]
		}
	}
	return r
}

// Min returns the lane-wise minimum with vminps semantics: when either
// lane is NaN, or both are zero, the lane of b is returned.
func Min(a, b F32x8) F32x8 {
	return minps(a, b)
}

// Max returns the lane-wise maximum with vmaxps semantics: when either
// lane is NaN, or both are zero, the lane of b is returned.
func Max(a, b F32x8) F32x8 {
	return maxps(a, b)
}

// Maximum returns the lane-wise maximum, propagating NaN from either side.
func Maximum(a, b F32x8) F32x8 {
	return maxps(a, b).Or(a.unordered(b))
}

// Minimum returns the lane-wise minimum, propagating NaN from either side.
func Minimum(a, b F32x8) F32x8 {
	return minps(a, b).Or(a.unordered(b))
}

// Clamp limits a to [lo, hi]. A NaN lane in a stays NaN; NaN bounds are
// ignored.
func Clamp(a, lo, hi F32x8) F32x8 {
	return minps(hi, maxps(lo, a))
}

// ClampMin limits a from below. A NaN lane in lo is ignored.
func ClampMin(a, lo F32x8) F32x8 {
	return maxps(lo, a)
}

// ClampMax limits a from above. A NaN lane in hi is ignored.
func ClampMax(a, hi F32x8) F32x8 {
	return minps(hi, a)
}
