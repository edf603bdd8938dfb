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

// ReduceSum returns the sum of all lanes, added pairwise across halves the
// way a horizontal-add tree does.
func (x F32x8) ReduceSum() float32 {
	s := x.Add(Permute2F128(x, x, 0x01))
	s = s.Add(Shuffle(s, s, 0x4e))
	s = s.Add(Shuffle(s, s, 0xb1))
	return s.v[0]
}

// ReduceMax returns the largest lane, propagating NaN.
func (x F32x8) ReduceMax() float32 {
	s := Maximum(x, Permute2F128(x, x, 0x01))
	s = Maximum(s, Shuffle(s, s, 0x4e))
	s = Maximum(s, Shuffle(s, s, 0xb1))
	return s.v[0]
}

// ReduceMin returns the smallest lane, propagating NaN.
func (x F32x8) ReduceMin() float32 {
	s := Minimum(x, Permute2F128(x, x, 0x01))
	s = Minimum(s, Shuffle(s, s, 0x4e))
	s = Minimum(s, Shuffle(s, s, 0xb1))
	return s.v[0]
}
