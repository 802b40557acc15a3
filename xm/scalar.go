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

	"github.com/ajroetker/go-xmath/xm/internal/poly"
)

// Minimax coefficients, ascending powers of y² for sin/cos and of |x| for
// the arc functions.
const (
	sinC0 float32 = 1.0
	sinC1 float32 = -0.16666667
	sinC2 float32 = 0.0083333310
	sinC3 float32 = -0.00019840874
	sinC4 float32 = 2.7525562e-06
	sinC5 float32 = -2.3889859e-08

	cosC0 float32 = 1.0
	cosC1 float32 = -0.5
	cosC2 float32 = 0.041666638
	cosC3 float32 = -0.0013888378
	cosC4 float32 = 2.4760495e-05
	cosC5 float32 = -2.6051615e-07

	sinEstC0 float32 = 1.0
	sinEstC1 float32 = -0.16665852
	sinEstC2 float32 = 0.0083139502
	sinEstC3 float32 = -0.00018524670

	cosEstC0 float32 = 1.0
	cosEstC1 float32 = -0.49992746
	cosEstC2 float32 = 0.041493919
	cosEstC3 float32 = -0.0012712436

	acosC0 float32 = 1.5707963050
	acosC1 float32 = -0.2145988016
	acosC2 float32 = 0.0889789874
	acosC3 float32 = -0.0501743046
	acosC4 float32 = 0.0308918810
	acosC5 float32 = -0.0170881256
	acosC6 float32 = 0.0066700901
	acosC7 float32 = -0.0012624911

	acosEstC0 float32 = 1.5707288
	acosEstC1 float32 = -0.2121144
	acosEstC2 float32 = 0.0742610
	acosEstC3 float32 = -0.0187293
)

// modAngleSplitLimit bounds the quotients reduced with the float32
// Cody-Waite split. Up to it q*twoPiHi is exact and q*twoPiLo stays within
// a few ulp; larger angles reduce in float64.
const modAngleSplitLimit = 1 << 10

// modAngle maps value to value - 2π·round(value/2π), in [-π, π]. The
// quotient rounds half away from zero. Large angles and results the float32
// split pushes past ±π fall back to remainderTwoPi.
func modAngle(value float32) float32 {
	quotient := value * OneDivTwoPi
	if quotient > modAngleSplitLimit || quotient < -modAngleSplitLimit {
		return remainderTwoPi(value)
	}
	if value >= 0 {
		quotient = float32(math.Trunc(float64(quotient + 0.5)))
	} else {
		quotient = float32(math.Trunc(float64(quotient - 0.5)))
	}
	y := value - float32(quotient*twoPiHi)
	y -= float32(quotient * twoPiLo)
	if y > Pi || y < -Pi {
		return remainderTwoPi(value)
	}
	return y
}

// remainderTwoPi reduces value in float64. Inf yields NaN.
func remainderTwoPi(value float32) float32 {
	return float32(math.Remainder(float64(value), 2*math.Pi))
}

// reduceSinCos maps value to y in [-π/2, π/2] with sin(y) = sin(value) and
// cos(value) = sign·cos(y).
func reduceSinCos(value float32) (y, sign float32) {
	y = modAngle(value)
	switch {
	case y > PiDiv2:
		return (piHi - y) + piLo, -1
	case y < -PiDiv2:
		return (-piHi - y) - piLo, -1
	default:
		return y, 1
	}
}

func sinPoly(y float32) float32 {
	return poly.Horner5(y*y, sinC0, sinC1, sinC2, sinC3, sinC4, sinC5) * y
}

func cosPoly(y float32) float32 {
	return poly.Horner5(y*y, cosC0, cosC1, cosC2, cosC3, cosC4, cosC5)
}

func sinEstPoly(y float32) float32 {
	return poly.Horner3(y*y, sinEstC0, sinEstC1, sinEstC2, sinEstC3) * y
}

func cosEstPoly(y float32) float32 {
	return poly.Horner3(y*y, cosEstC0, cosEstC1, cosEstC2, cosEstC3)
}

// ScalarModAngle reduces an angle in radians to [-π, π].
func ScalarModAngle(angle float32) float32 {
	return modAngle(angle)
}

// ScalarSin computes sin(value) with an 11-degree minimax polynomial.
//
// Special cases:
//   - ScalarSin(±Inf) = NaN
//   - ScalarSin(NaN) = NaN
func ScalarSin(value float32) float32 {
	y, _ := reduceSinCos(value)
	return sinPoly(y)
}

// ScalarSinEst computes sin(value) with a 7-degree minimax polynomial.
func ScalarSinEst(value float32) float32 {
	y, _ := reduceSinCos(value)
	return sinEstPoly(y)
}

// ScalarCos computes cos(value) with a 10-degree minimax polynomial.
//
// Special cases:
//   - ScalarCos(±Inf) = NaN
//   - ScalarCos(NaN) = NaN
func ScalarCos(value float32) float32 {
	y, sign := reduceSinCos(value)
	return sign * cosPoly(y)
}

// ScalarCosEst computes cos(value) with a 6-degree minimax polynomial.
func ScalarCosEst(value float32) float32 {
	y, sign := reduceSinCos(value)
	return sign * cosEstPoly(y)
}

// ScalarSinCos computes sin(value) and cos(value) from a single range
// reduction, so both results describe the same reduced angle.
func ScalarSinCos(value float32) (sin, cos float32) {
	y, sign := reduceSinCos(value)
	return sinPoly(y), sign * cosPoly(y)
}

// ScalarSinCosEst is the estimate form of ScalarSinCos.
func ScalarSinCosEst(value float32) (sin, cos float32) {
	y, sign := reduceSinCos(value)
	return sinEstPoly(y), sign * cosEstPoly(y)
}

// acosAbs returns acos(|value|) and whether value was non-negative. |value|
// above 1 saturates to 1.
func acosAbs(value float32, est bool) (float32, bool) {
	nonnegative := value >= 0
	x := value
	if x < 0 {
		x = -x
	}
	omx := 1 - x
	if omx < 0 {
		omx = 0
	}
	root := sqrt32(omx)
	var p float32
	if est {
		p = poly.Horner3(x, acosEstC0, acosEstC1, acosEstC2, acosEstC3)
	} else {
		p = poly.Horner7(x, acosC0, acosC1, acosC2, acosC3, acosC4, acosC5, acosC6, acosC7)
	}
	return p * root, nonnegative
}

// ScalarASin computes asin(value) with a 7-degree minimax polynomial.
// Inputs outside [-1, 1] are not rejected; they return ±π/2.
func ScalarASin(value float32) float32 {
	r, nonnegative := acosAbs(value, false)
	if nonnegative {
		return PiDiv2 - r
	}
	return r - PiDiv2
}

// ScalarASinEst computes asin(value) with a 3-degree minimax polynomial.
func ScalarASinEst(value float32) float32 {
	r, nonnegative := acosAbs(value, true)
	if nonnegative {
		return PiDiv2 - r
	}
	return r - PiDiv2
}

// ScalarACos computes acos(value) with a 7-degree minimax polynomial.
// Inputs outside [-1, 1] are not rejected; they return 0 or π.
func ScalarACos(value float32) float32 {
	r, nonnegative := acosAbs(value, false)
	if nonnegative {
		return r
	}
	return Pi - r
}

// ScalarACosEst computes acos(value) with a 3-degree minimax polynomial.
func ScalarACosEst(value float32) float32 {
	r, nonnegative := acosAbs(value, true)
	if nonnegative {
		return r
	}
	return Pi - r
}

// ScalarNearEqual reports whether |a - b| <= epsilon.
func ScalarNearEqual(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}
