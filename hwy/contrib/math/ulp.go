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

package math

import (
	"fmt"
	stdmath "math"
)

// Func identifies a function with a per-function ULP contract.
type Func int

const (
	FuncAcos Func = iota
	FuncAcosh
	FuncAsin
	FuncAtan
	FuncAtanh
	FuncAtan2
	FuncCopysign
	FuncErfc
	FuncExp
	FuncExp2
	FuncExpm1
	FuncFmod
	FuncLog
	FuncLog2
	FuncLog10
	FuncLog1p
	FuncSin
	FuncCos
	FuncSinh
	FuncCosh
	FuncTan
	FuncTanh
	FuncLgamma
	FuncHypot
	FuncNextafter
	FuncPow

	numFuncs
)

var funcNames = [numFuncs]string{
	FuncAcos:      "acos",
	FuncAcosh:     "acosh",
	FuncAsin:      "asin",
	FuncAtan:      "atan",
	FuncAtanh:     "atanh",
	FuncAtan2:     "atan2",
	FuncCopysign:  "copysign",
	FuncErfc:      "erfc",
	FuncExp:       "exp",
	FuncExp2:      "exp2",
	FuncExpm1:     "expm1",
	FuncFmod:      "fmod",
	FuncLog:       "log",
	FuncLog2:      "log2",
	FuncLog10:     "log10",
	FuncLog1p:     "log1p",
	FuncSin:       "sin",
	FuncCos:       "cos",
	FuncSinh:      "sinh",
	FuncCosh:      "cosh",
	FuncTan:       "tan",
	FuncTanh:      "tanh",
	FuncLgamma:    "lgamma",
	FuncHypot:     "hypot",
	FuncNextafter: "nextafter",
	FuncPow:       "pow",
}

func (f Func) String() string {
	if f < 0 || f >= numFuncs {
		return fmt.Sprintf("Func(%d)", int(f))
	}
	return funcNames[f]
}

// ulpBounds are the accuracy contracts in float32 ULPs. Exact operations
// have a bound of zero. Callers depend on these values; changing one
// changes results downstream.
var ulpBounds = [numFuncs]float64{
	FuncAcos:      1.0,
	FuncAcosh:     1.0,
	FuncAsin:      1.0,
	FuncAtan:      1.0,
	FuncAtanh:     1.0,
	FuncAtan2:     1.0,
	FuncCopysign:  0,
	FuncErfc:      1.5,
	FuncExp:       1.0,
	FuncExp2:      1.0,
	FuncExpm1:     1.0,
	FuncFmod:      0,
	FuncLog:       1.0,
	FuncLog2:      1.0,
	FuncLog10:     1.0,
	FuncLog1p:     1.0,
	FuncSin:       3.5,
	FuncCos:       3.5,
	FuncSinh:      1.0,
	FuncCosh:      1.0,
	FuncTan:       1.0,
	FuncTanh:      1.0,
	FuncLgamma:    1.0,
	FuncHypot:     0.5,
	FuncNextafter: 0,
	FuncPow:       1.0,
}

// ULPBound returns the maximum error of f in float32 ULPs, relative to the
// exact result. Unknown functions report 1.0.
func ULPBound(f Func) float64 {
	if f < 0 || f >= numFuncs {
		return 1.0
	}
	return ulpBounds[f]
}

// ULPError returns |got - want| in units of the float32 ULP at want.
// Matching NaNs, matching infinities and a float32 overflow of a value
// beyond the float32 range all count as zero error.
func ULPError(got float32, want float64) float64 {
	g := float64(got)
	switch {
	case stdmath.IsNaN(want) || stdmath.IsNaN(g):
		if stdmath.IsNaN(want) && stdmath.IsNaN(g) {
			return 0
		}
		return stdmath.Inf(1)
	case g == want:
		return 0
	case stdmath.IsInf(g, 0):
		if stdmath.Abs(want) > stdmath.MaxFloat32 && stdmath.Signbit(g) == stdmath.Signbit(want) {
			return 0
		}
		return stdmath.Inf(1)
	case stdmath.IsInf(want, 0):
		return stdmath.Inf(1)
	}

	// ULP of the float32 binade holding |want|, rounded toward zero.
	a := stdmath.Abs(want)
	f := float32(a)
	if float64(f) > a {
		f = stdmath.Nextafter32(f, 0)
	}
	ulp := float64(stdmath.Nextafter32(f, stdmath.MaxFloat32)) - float64(f)
	if f == stdmath.MaxFloat32 {
		ulp = float64(f) - float64(stdmath.Nextafter32(f, 0))
	}
	return stdmath.Abs(g-want) / ulp
}
