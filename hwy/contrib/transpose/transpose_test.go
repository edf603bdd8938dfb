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

package transpose

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ajroetker/vec256/hwy/contrib/workerpool"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinel = float32(-1)

// fill returns a buffer of the given length filled with sentinel, with the
// m x n block at stride ld set to i*1000 + j.
func fill(length, ld, m, n int) []float32 {
	buf := make([]float32, length)
	for k := range buf {
		buf[k] = sentinel
	}
	for i := range m {
		for j := range n {
			buf[i*ld+j] = float32(i*1000 + j)
		}
	}
	return buf
}

// naive is the reference transpose.
func naive(src []float32, ldSrc int, dst []float32, ldDst, m, n int) {
	for i := range m {
		for j := range n {
			dst[j*ldDst+i] = src[i*ldSrc+j]
		}
	}
}

func TestTransposeMxNSmall(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	dst := make([]float32, 6)
	TransposeMxN(src, 2, dst, 3, 3, 2)
	require.Equal(t, []float32{1, 3, 5, 2, 4, 6}, dst)
}

func TestTranspose8x8AllShapes(t *testing.T) {
	const ldSrc, ldDst = 11, 10
	for m := 0; m <= 8; m++ {
		for n := 0; n <= 8; n++ {
			src := fill(8*ldSrc, ldSrc, m, n)
			got := fill(8*ldDst+3, 0, 0, 0)
			want := fill(8*ldDst+3, 0, 0, 0)

			Transpose8x8(src, ldSrc, got, ldDst, m, n)
			naive(src, ldSrc, want, ldDst, m, n)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("m=%d n=%d (-want +got):\n%s", m, n, diff)
			}
		}
	}
}

// A tight source buffer must be enough: partial rows are never over-read.
func TestTranspose8x8TightBuffers(t *testing.T) {
	for m := 1; m <= 8; m++ {
		for n := 1; n <= 8; n++ {
			src := fill(m*n, n, m, n)
			got := make([]float32, n*m)
			want := make([]float32, n*m)
			Transpose8x8(src, n, got, m, m, n)
			naive(src, n, want, m, m, n)
			require.Equal(t, want, got, "m=%d n=%d", m, n)
		}
	}
}

func TestTransposeMxN(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 8, 9, 15, 16, 17, 24, 31, 33}
	for _, m := range sizes {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%dx%d", m, n), func(t *testing.T) {
				ldSrc, ldDst := n+3, m+5
				src := fill(m*ldSrc, ldSrc, m, n)
				got := fill(n*ldDst, 0, 0, 0)
				want := fill(n*ldDst, 0, 0, 0)

				TransposeMxN(src, ldSrc, got, ldDst, m, n)
				naive(src, ldSrc, want, ldDst, m, n)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestTransposeDense(t *testing.T) {
	m, n := 13, 21
	src := fill(m*n, n, m, n)
	got := make([]float32, n*m)
	want := make([]float32, n*m)
	Transpose(src, m, n, got)
	naive(src, n, want, m, m, n)
	require.Equal(t, want, got)

	back := make([]float32, m*n)
	Transpose(got, n, m, back)
	require.Equal(t, src, back)
}

func TestZeroDimensionsAreNoOps(t *testing.T) {
	dst := fill(16, 0, 0, 0)
	before := append([]float32(nil), dst...)
	Transpose8x8(nil, 0, dst, 8, 0, 5)
	Transpose8x8(nil, 0, dst, 8, 5, 0)
	TransposeMxN(nil, 0, dst, 4, 0, 0)
	ParallelTransposeMxN(nil, nil, 0, dst, 4, 0, 3)
	require.Equal(t, before, dst)
}

func TestTranspose8x8Panics(t *testing.T) {
	buf := make([]float32, 128)
	require.PanicsWithValue(t, "transpose: Transpose8x8 expects m, n <= 8, got 9x1", func() {
		Transpose8x8(buf, 9, buf, 9, 9, 1)
	})
	require.Panics(t, func() { Transpose8x8(buf, 8, buf, 8, 3, 9) })
	require.Panics(t, func() { Transpose8x8(buf, 8, buf, 8, -1, 2) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name                         string
		lenSrc, ldSrc, lenDst, ldDst int
		m, n                         int
		ok                           bool
	}{
		{"exact", 6, 2, 6, 3, 3, 2, true},
		{"strided", 2*10 + 2, 10, 1*7 + 3, 7, 3, 2, true},
		{"empty", 0, 0, 0, 0, 0, 4, true},
		{"negative", 10, 2, 10, 2, -1, 2, false},
		{"short source stride", 100, 1, 100, 3, 3, 2, false},
		{"short destination stride", 100, 2, 100, 2, 3, 2, false},
		{"short source", 5, 2, 6, 3, 3, 2, false},
		{"short destination", 6, 2, 5, 3, 3, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.lenSrc, tt.ldSrc, tt.lenDst, tt.ldDst, tt.m, tt.n)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestTransposeMxNPanicsWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, ErrInvalidShape))
	}()
	TransposeMxN(make([]float32, 5), 2, make([]float32, 6), 3, 3, 2)
}

func TestParallelTransposeMxN(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, shape := range [][2]int{{5, 7}, {64, 64}, {200, 65}, {257, 129}, {1000, 9}} {
		m, n := shape[0], shape[1]
		t.Run(fmt.Sprintf("%dx%d", m, n), func(t *testing.T) {
			ldSrc, ldDst := n+1, m+2
			src := fill(m*ldSrc, ldSrc, m, n)
			got := fill(n*ldDst, 0, 0, 0)
			want := fill(n*ldDst, 0, 0, 0)

			ParallelTransposeMxN(pool, src, ldSrc, got, ldDst, m, n)
			TransposeMxN(src, ldSrc, want, ldDst, m, n)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkTransposeMxN(b *testing.B) {
	for _, size := range []int{64, 256, 1024} {
		src := make([]float32, size*size)
		dst := make([]float32, size*size)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				Transpose(src, size, size, dst)
			}
		})
	}
}

func BenchmarkParallelTransposeMxN(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, size := range []int{256, 1024} {
		src := make([]float32, size*size)
		dst := make([]float32, size*size)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for b.Loop() {
				ParallelTransposeMxN(pool, src, size, dst, size, size, size)
			}
		})
	}
}
