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

// Package transpose provides an 8x8 float32 transpose kernel built from
// hwy.F32x8 shuffles, and strided MxN transposes tiled on top of it.
//
// All functions write dst[j*ldDst+i] = src[i*ldSrc+j] for 0 <= i < m and
// 0 <= j < n, where src holds m rows of n values with row stride ldSrc.
// Only those destination elements are written. A zero m or n is a no-op.
package transpose

import (
	"errors"
	"fmt"

	"github.com/ajroetker/vec256/hwy"
)

// ErrInvalidShape reports dimensions, strides or buffer lengths that do
// not describe a valid transpose.
var ErrInvalidShape = errors.New("transpose: invalid shape")

// Validate checks a strided m x n transpose against the buffer lengths.
// The returned error wraps ErrInvalidShape.
func Validate(lenSrc, ldSrc, lenDst, ldDst, m, n int) error {
	switch {
	case m < 0 || n < 0:
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidShape, m, n)
	case m == 0 || n == 0:
		return nil
	case ldSrc < n:
		return fmt.Errorf("%w: source stride %d shorter than row length %d", ErrInvalidShape, ldSrc, n)
	case ldDst < m:
		return fmt.Errorf("%w: destination stride %d shorter than row length %d", ErrInvalidShape, ldDst, m)
	case lenSrc < (m-1)*ldSrc+n:
		return fmt.Errorf("%w: source has %d elements, need %d", ErrInvalidShape, lenSrc, (m-1)*ldSrc+n)
	case lenDst < (n-1)*ldDst+m:
		return fmt.Errorf("%w: destination has %d elements, need %d", ErrInvalidShape, lenDst, (n-1)*ldDst+m)
	}
	return nil
}

func mustValidate(src []float32, ldSrc int, dst []float32, ldDst, m, n int) {
	if err := Validate(len(src), ldSrc, len(dst), ldDst, m, n); err != nil {
		panic(err)
	}
}

// Transpose8x8 transposes a block of at most 8x8. It panics unless
// 0 <= m, n <= 8 and the buffers fit.
//
// Rows are loaded with LoadN when n < 8, so no element past a row is read,
// and missing rows are zero. The network then runs:
//
//  1. UnpackLo/UnpackHi on row pairs, interleaving 32-bit lanes
//  2. Shuffle 0x44/0xee on groups of four, pairing 64-bit lanes
//  3. Permute2F128 0x02/0x13, exchanging 128-bit halves
//
// and stores n rows of m lanes, with StoreN when m < 8.
func Transpose8x8(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	if m > hwy.Lanes || n > hwy.Lanes {
		panic(fmt.Sprintf("transpose: Transpose8x8 expects m, n <= 8, got %dx%d", m, n))
	}
	mustValidate(src, ldSrc, dst, ldDst, m, n)
	if m == 0 || n == 0 {
		return
	}
	kernel8x8(src, ldSrc, dst, ldDst, m, n)
}

// kernel8x8 assumes validated arguments with 1 <= m, n <= 8.
func kernel8x8(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	var in, tmp [hwy.Lanes]hwy.F32x8
	for i := range m {
		in[i] = hwy.LoadN(src[i*ldSrc:], n)
	}

	for i := range (m + 1) / 2 {
		tmp[2*i] = hwy.UnpackLo(in[2*i], in[2*i+1])
		tmp[2*i+1] = hwy.UnpackHi(in[2*i], in[2*i+1])
	}

	for i := range (m + 3) / 4 {
		in[4*i] = hwy.Shuffle(tmp[4*i], tmp[4*i+2], 0x44)
		in[4*i+1] = hwy.Shuffle(tmp[4*i], tmp[4*i+2], 0xee)
		in[4*i+2] = hwy.Shuffle(tmp[4*i+1], tmp[4*i+3], 0x44)
		in[4*i+3] = hwy.Shuffle(tmp[4*i+1], tmp[4*i+3], 0xee)
	}

	for i := range n {
		if i < 4 {
			tmp[i] = hwy.Permute2F128(in[4+i], in[i], 0x02)
		} else {
			tmp[i] = hwy.Permute2F128(in[i], in[i-4], 0x13)
		}
	}

	for i := range n {
		tmp[i].StoreN(dst[i*ldDst:], m)
	}
}

// TransposeMxN transposes an m x n strided block of any size by tiling it
// into 8x8 blocks, with partial blocks along the right and bottom edges.
// It panics with an error wrapping ErrInvalidShape if the arguments do not
// pass Validate.
func TransposeMxN(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	mustValidate(src, ldSrc, dst, ldDst, m, n)
	if m == 0 || n == 0 {
		return
	}
	transposeTiles(src, ldSrc, dst, ldDst, m, n)
}

func transposeTiles(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	const b = hwy.Lanes
	fullM, fullN := m/b*b, n/b*b
	tile := func(i, j, rows, cols int) {
		kernel8x8(src[i*ldSrc+j:], ldSrc, dst[j*ldDst+i:], ldDst, rows, cols)
	}

	i := 0
	for ; i < fullM; i += b {
		j := 0
		for ; j < fullN; j += b {
			tile(i, j, b, b)
		}
		if rem := n - j; rem > 0 {
			tile(i, j, b, rem)
		}
	}
	if mrem := m - i; mrem > 0 {
		j := 0
		for ; j < fullN; j += b {
			tile(i, j, mrem, b)
		}
		if rem := n - j; rem > 0 {
			tile(i, j, mrem, rem)
		}
	}
}

// Transpose transposes a dense row-major m x n matrix into a dense n x m
// matrix.
func Transpose(src []float32, m, n int, dst []float32) {
	TransposeMxN(src, n, dst, m, m, n)
}
