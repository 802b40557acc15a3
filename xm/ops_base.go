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

import "math"

// This file holds the elementwise arithmetic operations. Every operation
// works lane by lane on the float interpretation of the lanes unless noted.

// Add returns a + b.
func Add(a, b Vector) Vector {
	return Set(a.f(0)+b.f(0), a.f(1)+b.f(1), a.f(2)+b.f(2), a.f(3)+b.f(3))
}

// Subtract returns a - b.
func Subtract(a, b Vector) Vector {
	return Set(a.f(0)-b.f(0), a.f(1)-b.f(1), a.f(2)-b.f(2), a.f(3)-b.f(3))
}

// Multiply returns a * b.
func Multiply(a, b Vector) Vector {
	return Set(a.f(0)*b.f(0), a.f(1)*b.f(1), a.f(2)*b.f(2), a.f(3)*b.f(3))
}

// Divide returns a / b. Division by zero follows IEEE-754.
func Divide(a, b Vector) Vector {
	return Set(a.f(0)/b.f(0), a.f(1)/b.f(1), a.f(2)/b.f(2), a.f(3)/b.f(3))
}

// Scale returns v * s.
func Scale(v Vector, s float32) Vector {
	return Set(v.f(0)*s, v.f(1)*s, v.f(2)*s, v.f(3)*s)
}

// MultiplyAdd returns a*b + c.
func MultiplyAdd(a, b, c Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(multiplyAddLane(a.f(i), b.f(i), c.f(i)))
	}
	return r
}

// MultiplySubtract returns a*b - c.
func MultiplySubtract(a, b, c Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(multiplyAddLane(a.f(i), b.f(i), -c.f(i)))
	}
	return r
}

// NegativeMultiplySubtract returns c - a*b.
func NegativeMultiplySubtract(a, b, c Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(multiplyAddLane(-a.f(i), b.f(i), c.f(i)))
	}
	return r
}

// Negate flips the sign bit of every lane.
func Negate(v Vector) Vector {
	return XorInt(v, SplatSignMask())
}

// Abs clears the sign bit of every lane.
func Abs(v Vector) Vector {
	return AndInt(v, ReplicateInt(bitsAbsMask))
}

// Min returns the lane-wise minimum. If either lane is NaN the lane from b
// is returned.
func Min(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		if a.f(i) < b.f(i) {
			r.u[i] = a.u[i]
		} else {
			r.u[i] = b.u[i]
		}
	}
	return r
}

// Max returns the lane-wise maximum. If either lane is NaN the lane from b
// is returned.
func Max(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		if a.f(i) > b.f(i) {
			r.u[i] = a.u[i]
		} else {
			r.u[i] = b.u[i]
		}
	}
	return r
}

// Clamp limits every lane of v to [lo, hi]. It requires lo <= hi lane-wise.
// A NaN lane of v yields hi.
func Clamp(v, lo, hi Vector) Vector {
	return Min(Max(lo, v), hi)
}

// Saturate clamps every lane of v to [0, 1]. A NaN lane saturates to 0.
func Saturate(v Vector) Vector {
	return Min(Max(v, Zero()), SplatOne())
}

// Reciprocal returns 1/v.
func Reciprocal(v Vector) Vector {
	return Divide(SplatOne(), v)
}

// ReciprocalEst returns an estimate of 1/v with roughly 12 bits of precision.
//
// Special cases:
//   - ReciprocalEst(±0) = ±Inf
//   - ReciprocalEst(±Inf) = ±0
//   - ReciprocalEst(NaN) = NaN
func ReciprocalEst(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(truncateMantissa(1 / v.f(i)))
	}
	return r
}

// Sqrt returns the square root of every lane. Negative lanes yield NaN.
func Sqrt(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(sqrt32(v.f(i)))
	}
	return r
}

// SqrtEst returns an estimate of the square root of every lane.
func SqrtEst(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(truncateMantissa(sqrt32(v.f(i))))
	}
	return r
}

// ReciprocalSqrt returns 1/sqrt(v).
//
// Special cases:
//   - ReciprocalSqrt(+0) = +Inf
//   - ReciprocalSqrt(+Inf) = 0
//   - ReciprocalSqrt(x < 0) = NaN
func ReciprocalSqrt(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(1 / sqrt32(v.f(i)))
	}
	return r
}

// ReciprocalSqrtEst returns an estimate of 1/sqrt(v).
func ReciprocalSqrtEst(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(truncateMantissa(1 / sqrt32(v.f(i))))
	}
	return r
}

// Round rounds every lane to the nearest integer, ties to even.
func Round(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(float32(math.RoundToEven(float64(v.f(i)))))
	}
	return r
}

// Truncate rounds every lane toward zero.
func Truncate(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(float32(math.Trunc(float64(v.f(i)))))
	}
	return r
}

// Floor rounds every lane toward negative infinity.
func Floor(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(float32(math.Floor(float64(v.f(i)))))
	}
	return r
}

// Ceiling rounds every lane toward positive infinity.
func Ceiling(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(float32(math.Ceil(float64(v.f(i)))))
	}
	return r
}

// Lerp interpolates between a and b by t: a + t*(b - a).
func Lerp(a, b Vector, t float32) Vector {
	return LerpV(a, b, Replicate(t))
}

// LerpV interpolates between a and b by the per-lane weights in t.
func LerpV(a, b, t Vector) Vector {
	return MultiplyAdd(Subtract(b, a), t, a)
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// truncateMantissa keeps the top 12 mantissa bits of x. It models the
// precision of hardware estimate instructions so that Est results are
// distinguishable from the full-precision ones. Inf and NaN pass through.
func truncateMantissa(x float32) float32 {
	b := math.Float32bits(x)
	if b&bitsExponent == bitsExponent {
		return x
	}
	return math.Float32frombits(b &^ 0x7FF)
}
