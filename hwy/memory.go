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

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// This file provides full and partial width transfers between vectors and
// caller-owned memory. Nothing here retains the memory it is given, and
// there is no alignment requirement.
//
// Partial transfers take a lane count in [0, 8]. A count outside that range
// is a contract violation and panics; it is never clamped.

func checkCount(count int) {
	if count < 0 || count > Lanes {
		panic(fmt.Sprintf("hwy: count %d out of range [0, %d]", count, Lanes))
	}
}

// Load reads 8 consecutive floats from src.
func Load(src []float32) F32x8 {
	var r F32x8
	copy(r.v[:], src[:Lanes])
	return r
}

// LoadN reads the first count floats of src into lanes [0, count) and sets
// lanes [count, 8) to +0.0. Only src[:count] is read.
func LoadN(src []float32, count int) F32x8 {
	checkCount(count)
	if count == Lanes {
		return Load(src)
	}
	var tmp [Lanes]float32 // zeroed; lanes past count stay +0.0
	copy(tmp[:], src[:count])
	return F32x8{v: tmp}
}

// Store writes all 8 lanes to dst[:8].
func (x F32x8) Store(dst []float32) {
	copy(dst[:Lanes], x.v[:])
}

// StoreN writes lanes [0, count) to dst[:count] and touches nothing else.
// A count of zero is a no-op.
func (x F32x8) StoreN(dst []float32, count int) {
	checkCount(count)
	switch {
	case count == Lanes:
		x.Store(dst)
	case count > 0:
		var tmp [Lanes]float32
		x.Store(tmp[:])
		copy(dst[:count], tmp[:count])
	}
}

// LoadBytes interprets src as packed native-endian float32 values and loads
// the first count of them, zero-filling the remaining lanes.
func LoadBytes(src []byte, count int) F32x8 {
	checkCount(count)
	src = src[:4*count]
	var r F32x8
	for i := range count {
		r.v[i] = math.Float32frombits(binary.NativeEndian.Uint32(src[4*i:]))
	}
	return r
}

// StoreBytes writes lanes [0, count) to dst as packed native-endian float32
// values. Exactly 4*count bytes are written.
func (x F32x8) StoreBytes(dst []byte, count int) {
	checkCount(count)
	dst = dst[:4*count]
	for i := range count {
		binary.NativeEndian.PutUint32(dst[4*i:], math.Float32bits(x.v[i]))
	}
}

// LoadPtr loads count floats from untyped memory at p. The memory does not
// need float32 alignment.
func LoadPtr(p unsafe.Pointer, count int) F32x8 {
	checkCount(count)
	if count == 0 {
		return F32x8{}
	}
	return LoadBytes(unsafe.Slice((*byte)(p), 4*count), count)
}

// StorePtr stores lanes [0, count) to untyped memory at p.
func (x F32x8) StorePtr(p unsafe.Pointer, count int) {
	checkCount(count)
	if count == 0 {
		return
	}
	x.StoreBytes(unsafe.Slice((*byte)(p), 4*count), count)
}
