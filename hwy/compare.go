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

// Comparisons follow the AVX _CMP_*_OQ predicates: ordered and quiet, so
// any NaN operand makes the lane false. NotEqual uses _CMP_NEQ_UQ and is
// true when either operand is NaN. The result is a mask vector.

// Equal returns a mask of lanes where x == y.
func (x F32x8) Equal(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] == y.v[i])
	}
	return r
}

// NotEqual returns a mask of lanes where x != y or either lane is NaN.
func (x F32x8) NotEqual(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(!(x.v[i] == y.v[i]))
	}
	return r
}

// Less returns a mask of lanes where x < y.
func (x F32x8) Less(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] < y.v[i])
	}
	return r
}

// LessEqual returns a mask of lanes where x <= y.
func (x F32x8) LessEqual(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] <= y.v[i])
	}
	return r
}

// Greater returns a mask of lanes where x > y.
func (x F32x8) Greater(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] > y.v[i])
	}
	return r
}

// GreaterEqual returns a mask of lanes where x >= y.
func (x F32x8) GreaterEqual(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] >= y.v[i])
	}
	return r
}

// unordered returns a mask of lanes where x or y is NaN (_CMP_UNORD_Q).
func (x F32x8) unordered(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = maskLane(x.v[i] != x.v[i] || y.v[i] != y.v[i])
	}
	return r
}

var one = Set(1)

// The boolean forms below turn a comparison mask into 0.0 / 1.0 lanes.

// Eq returns 1.0 where x == y, else 0.0.
func (x F32x8) Eq(y F32x8) F32x8 { return x.Equal(y).And(one) }

// Ne returns 1.0 where x != y (or either is NaN), else 0.0.
func (x F32x8) Ne(y F32x8) F32x8 { return x.NotEqual(y).And(one) }

// Lt returns 1.0 where x < y, else 0.0.
func (x F32x8) Lt(y F32x8) F32x8 { return x.Less(y).And(one) }

// Le returns 1.0 where x <= y, else 0.0.
func (x F32x8) Le(y F32x8) F32x8 { return x.LessEqual(y).And(one) }

// Gt returns 1.0 where x > y, else 0.0.
func (x F32x8) Gt(y F32x8) F32x8 { return x.Greater(y).And(one) }

// Ge returns 1.0 where x >= y, else 0.0.
func (x F32x8) Ge(y F32x8) F32x8 { return x.GreaterEqual(y).And(one) }
