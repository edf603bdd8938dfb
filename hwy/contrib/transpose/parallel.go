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
	"github.com/ajroetker/vec256/hwy"
	"github.com/ajroetker/vec256/hwy/contrib/workerpool"
)

const (
	// MinParallelElems is the smallest m*n that ParallelTransposeMxN
	// splits across workers.
	MinParallelElems = 64 * 64

	// RowsPerStrip is the number of source rows per unit of parallel work.
	// It is a multiple of the tile height so strips never share a tile.
	RowsPerStrip = 8 * hwy.Lanes
)

// ParallelTransposeMxN is TransposeMxN with the source rows split into
// strips that run on pool. Each strip writes its own destination columns.
// Small inputs and a nil pool run serially.
func ParallelTransposeMxN(pool *workerpool.Pool, src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	mustValidate(src, ldSrc, dst, ldDst, m, n)
	if m == 0 || n == 0 {
		return
	}
	if pool == nil || m*n < MinParallelElems || m <= RowsPerStrip {
		transposeTiles(src, ldSrc, dst, ldDst, m, n)
		return
	}

	pool.ParallelForAligned(m, RowsPerStrip, func(start, end int) {
		transposeTiles(src[start*ldSrc:], ldSrc, dst[start:], ldDst, end-start, n)
	})
}
