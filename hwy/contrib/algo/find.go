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
	"math/bits"

	"github.com/ajroetker/vec256/hwy"
)

// scan evaluates pred over slice one vector at a time and calls visit with
// the offset and the mask bits of the live lanes. It stops when visit
// returns false.
func scan(slice []float32, pred VecFunc, visit func(offset int, mask uint8) bool) {
	for i := 0; i < len(slice); i += hwy.Lanes {
		count := min(hwy.Lanes, len(slice)-i)
		mask := pred(hwy.LoadN(slice[i:], count)).MaskBits() & uint8(1<<count-1)
		if !visit(i, mask) {
			return
		}
	}
}

// Find returns the index of the first element equal to value, or -1.
// A NaN value is never found.
func Find(slice []float32, value float32) int {
	v := hwy.Set(value)
	return FindIf(slice, func(x hwy.F32x8) hwy.F32x8 { return x.Equal(v) })
}

// FindIf returns the index of the first element whose lane in pred(v) is set,
// or -1 if there is none.
//
// Example: find the first element greater than 10
//
//	idx := algo.FindIf(data, func(v hwy.F32x8) hwy.F32x8 {
//	    return v.Greater(hwy.Set(10))
//	})
func FindIf(slice []float32, pred VecFunc) int {
	idx := -1
	scan(slice, pred, func(offset int, mask uint8) bool {
		if mask == 0 {
			return true
		}
		idx = offset + bits.TrailingZeros8(mask)
		return false
	})
	return idx
}

// CountIf returns the number of elements whose lane in pred(v) is set.
func CountIf(slice []float32, pred VecFunc) int {
	n := 0
	scan(slice, pred, func(_ int, mask uint8) bool {
		n += bits.OnesCount8(mask)
		return true
	})
	return n
}

// All reports whether pred holds for every element. It is true for an empty
// slice.
func All(slice []float32, pred VecFunc) bool {
	all := true
	scan(slice, pred, func(offset int, mask uint8) bool {
		count := min(hwy.Lanes, len(slice)-offset)
		all = mask == uint8(1<<count-1)
		return all
	})
	return all
}

// Any reports whether pred holds for some element.
func Any(slice []float32, pred VecFunc) bool {
	return FindIf(slice, pred) >= 0
}

// None reports whether pred holds for no element.
func None(slice []float32, pred VecFunc) bool {
	return !Any(slice, pred)
}
