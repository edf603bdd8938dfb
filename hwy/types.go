// Package hwy provides an 8-lane float32 vector type with the semantics of
// one 256-bit AVX2 register.
//
// F32x8 is a value type: it is copied like an array, never aliases memory,
// and exposes no per-lane accessor. Lanes enter through the Load family or
// the constructors and leave through the Store family, reductions or Map.
// Operations follow the AVX2 instruction contracts exactly (ordered quiet
// comparisons, minps/maxps operand order, blendvps sign-bit selection) so
// code written against this package behaves the same whether the vector is
// backed by a register or by the portable array used here.
//
// Basic usage:
//
//	import "github.com/ajroetker/vec256/hwy"
//
//	a := hwy.Load(x[i:])
//	b := hwy.Load(y[i:])
//	hwy.MulAdd(a, b, hwy.Set(1)).Store(out[i:])
//
// Transcendental functions live in hwy/contrib/math and the 8x8 transpose
// kernel in hwy/contrib/transpose.
package hwy

import "math"

// Lanes is the number of float32 lanes in an F32x8.
const Lanes = 8

// F32x8 holds eight float32 lanes. The zero value is all +0.0.
type F32x8 struct {
	v [Lanes]float32
}

// Mask lanes are either allBits or zero.
const (
	signBit uint32 = 0x80000000
	allBits uint32 = 0xFFFFFFFF
)

// NumLanes returns the number of lanes, always 8.
func (F32x8) NumLanes() int {
	return Lanes
}

// Undefined returns a vector whose contents callers must not depend on.
// It is all zeros in this implementation.
func Undefined() F32x8 {
	return F32x8{}
}

// Zero returns a vector with every lane set to +0.0.
func Zero() F32x8 {
	return F32x8{}
}

// Set broadcasts x to all lanes.
func Set(x float32) F32x8 {
	return F32x8{v: [Lanes]float32{x, x, x, x, x, x, x, x}}
}

// Of builds a vector from eight scalars, v0 in lane 0.
func Of(v0, v1, v2, v3, v4, v5, v6, v7 float32) F32x8 {
	return F32x8{v: [Lanes]float32{v0, v1, v2, v3, v4, v5, v6, v7}}
}

// FromArray wraps a raw register image.
func FromArray(a [Lanes]float32) F32x8 {
	return F32x8{v: a}
}

// fromBits builds a vector from raw lane bit patterns.
func fromBits(b [Lanes]uint32) F32x8 {
	var r F32x8
	for i := range r.v {
		r.v[i] = math.Float32frombits(b[i])
	}
	return r
}

// bits returns the raw lane bit patterns.
func (x F32x8) bits() [Lanes]uint32 {
	var b [Lanes]uint32
	for i := range b {
		b[i] = math.Float32bits(x.v[i])
	}
	return b
}

// maskLane returns the mask lane for a predicate result.
func maskLane(ok bool) float32 {
	if ok {
		return math.Float32frombits(allBits)
	}
	return 0
}
