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

// Add returns x + y lane-wise.
func (x F32x8) Add(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = x.v[i] + y.v[i]
	}
	return r
}

// Sub returns x - y lane-wise.
func (x F32x8) Sub(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = x.v[i] - y.v[i]
	}
	return r
}

// Mul returns x * y lane-wise.
func (x F32x8) Mul(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = x.v[i] * y.v[i]
	}
	return r
}

// Div returns x / y lane-wise. Division by zero yields ±Inf or NaN.
func (x F32x8) Div(y F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = x.v[i] / y.v[i]
	}
	return r
}

// And is the bitwise AND of the lane bit patterns.
func (x F32x8) And(y F32x8) F32x8 {
	xb, yb := x.bits(), y.bits()
	for i := range xb {
		xb[i] &= yb[i]
	}
	return fromBits(xb)
}

// Or is the bitwise OR of the lane bit patterns.
func (x F32x8) Or(y F32x8) F32x8 {
	xb, yb := x.bits(), y.bits()
	for i := range xb {
		xb[i] |= yb[i]
	}
	return fromBits(xb)
}

// Xor is the bitwise XOR of the lane bit patterns.
func (x F32x8) Xor(y F32x8) F32x8 {
	xb, yb := x.bits(), y.bits()
	for i := range xb {
		xb[i] ^= yb[i]
	}
	return fromBits(xb)
}

// AndNot returns ^x & y, the operand order of vandnps.
func (x F32x8) AndNot(y F32x8) F32x8 {
	xb, yb := x.bits(), y.bits()
	for i := range xb {
		xb[i] = ^xb[i] & yb[i]
	}
	return fromBits(xb)
}

// negZero has only the sign bit set in every lane.
var negZero = Set(math.Float32frombits(signBit))

// Neg flips the sign bit of every lane, including zeros and NaNs.
func (x F32x8) Neg() F32x8 {
	return x.Xor(negZero)
}

// Abs clears the sign bit of every lane.
func (x F32x8) Abs() F32x8 {
	return negZero.AndNot(x)
}

// MulAdd returns a*b + c with a single rounding.
func MulAdd(a, b, c F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = fma32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// MulSub returns a*b - c with a single rounding.
func MulSub(a, b, c F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = fma32(a.v[i], b.v[i], -c.v[i])
	}
	return r
}

// NegMulAdd returns c - a*b with a single rounding (vfnmadd).
func NegMulAdd(a, b, c F32x8) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = fma32(-a.v[i], b.v[i], c.v[i])
	}
	return r
}
