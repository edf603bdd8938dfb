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

package algo

import (
	"github.com/ajroetker/vec256/hwy"
	"github.com/ajroetker/vec256/hwy/contrib/workerpool"
)

// ParallelBatch is the number of elements per batch handed to a worker by
// ParallelTransform. It is a multiple of the vector width, so only the last
// batch has a tail.
const ParallelBatch = 512 * hwy.Lanes

// ParallelTransform is Transform with the slice split into batches that run
// on pool. A nil pool or an input of a single batch runs serially.
func ParallelTransform(pool *workerpool.Pool, src, dst []float32, fn VecFunc) {
	n := min(len(src), len(dst))
	if pool == nil || n <= ParallelBatch {
		Transform(src[:n], dst[:n], fn)
		return
	}
	pool.ParallelForBatched(n, ParallelBatch, func(start, end int) {
		Transform(src[start:end], dst[start:end], fn)
	})
}
