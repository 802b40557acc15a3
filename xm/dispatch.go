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

package xm

import (
	"math"
	"os"
	"strings"
)

// DispatchLevel identifies the multiply-add path selected for this process.
type DispatchLevel int

const (
	// DispatchScalar rounds the product before the add.
	DispatchScalar DispatchLevel = iota
	// DispatchFMA uses a single rounding step (x86 FMA3).
	DispatchFMA
	// DispatchNEON uses a single rounding step (ARM fmla).
	DispatchNEON
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchFMA:
		return "fma"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentName  string
	hardwareFMA  bool
)

// multiplyAddLane computes a*b + c for one lane. It is bound in init to
// either fusedMultiplyAdd or roundedMultiplyAdd.
var multiplyAddLane func(a, b, c float32) float32

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the name of the detected dispatch level.
func CurrentName() string {
	return currentName
}

// HasFusedMultiplyAdd reports whether MultiplyAdd and the multiply-subtract
// family currently round once.
func HasFusedMultiplyAdd() bool {
	return currentLevel != DispatchScalar
}

// SetFusedMultiplyAdd forces the fused (true) or rounded-product (false)
// multiply-add path. Requesting the fused path on hardware without FMA still
// succeeds; the single rounding is then emulated in float64. It returns the
// previous setting so tests can restore it.
//
// Not safe to call concurrently with other operations.
func SetFusedMultiplyAdd(fused bool) (previous bool) {
	previous = HasFusedMultiplyAdd()
	if fused {
		setFusedMode()
	} else {
		setScalarMode()
	}
	return previous
}

// NoFMAEnv reports whether XM_NO_FMA requests the unfused path.
func NoFMAEnv() bool {
	v := strings.TrimSpace(os.Getenv("XM_NO_FMA"))
	switch strings.ToLower(v) {
	case "", "0", "false", "off":
		return false
	}
	return true
}

func init() {
	detectCPUFeatures()
	if NoFMAEnv() {
		setScalarMode()
		return
	}
	if hardwareFMA {
		setFusedMode()
	} else {
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = DispatchScalar.String()
	multiplyAddLane = roundedMultiplyAdd
}

func setFusedMode() {
	currentLevel = fusedLevel
	if currentLevel == DispatchScalar {
		// No native fused instruction; emulate the single rounding in float64.
		currentLevel = DispatchFMA
	}
	currentName = currentLevel.String()
	multiplyAddLane = fusedMultiplyAdd
}

// fusedMultiplyAdd returns a*b + c rounded once to float32. The float32
// product is exact in float64. The float64 sum is rounded to odd, which
// keeps the final conversion to float32 from rounding twice.
func fusedMultiplyAdd(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	addend := float64(c)
	s := p + addend
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// Two-sum error of p + addend.
	bv := s - p
	e := (p - (s - bv)) + (addend - bv)
	if e != 0 && math.Float64bits(s)&1 == 0 {
		if e > 0 {
			s = math.Nextafter(s, math.Inf(1))
		} else {
			s = math.Nextafter(s, math.Inf(-1))
		}
	}
	return float32(s)
}

// roundedMultiplyAdd rounds the product to float32 before adding. The
// explicit conversion stops the compiler from fusing the expression.
func roundedMultiplyAdd(a, b, c float32) float32 {
	return float32(a*b) + c
}
