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
	"fmt"
	"math/bits"

	"github.com/ajroetker/vec256/hwy"
)

// Fill sets all elements in dst to value.
func Fill(dst []float32, value float32) {
	v := hwy.Set(value)
	hwy.ProcessWithTail(len(dst),
		func(offset int) { v.Store(dst[offset:]) },
		func(offset, count int) { v.StoreN(dst[offset:], count) },
	)
}

// Convert copies the first n elements of src to dst, one full vector at a
// time and element by element for the remainder. It panics if either slice
// holds fewer than n elements.
func Convert(src, dst []float32, n int) {
	if n < 0 || n > len(src) || n > len(dst) {
		panic(fmt.Sprintf("algo: Convert of %d elements with len(src)=%d, len(dst)=%d",
			n, len(src), len(dst)))
	}
	i := 0
	for ; i <= n-hwy.Lanes; i += hwy.Lanes {
		hwy.Load(src[i:]).Store(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
}

// CopyIf copies the elements of src whose lane in pred(v) is set to dst,
// packed together and in order (stream compaction). It returns the number of
// elements copied, which is limited by len(dst).
//
// Example: copy only positive values
//
//	n := algo.CopyIf(src, dst, func(v hwy.F32x8) hwy.F32x8 {
//	    return v.Greater(hwy.Zero())
//	})
func CopyIf(src, dst []float32, pred VecFunc) int {
	var buf [hwy.Lanes]float32
	copied := 0
	for i := 0; i < len(src) && copied < len(dst); i += hwy.Lanes {
		count := min(hwy.Lanes, len(src)-i)
		v := hwy.LoadN(src[i:], count)
		mask := pred(v).MaskBits() & uint8(1<<count-1)
		if mask == 0 {
			continue
		}
		v.Store(buf[:])
		for ; mask != 0 && copied < len(dst); mask &= mask - 1 {
			dst[copied] = buf[bits.TrailingZeros8(mask)]
			copied++
		}
	}
	return copied
}
