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

// The lane trigonometric functions apply the scalar approximations to each
// lane independently. Inputs are radians.

func mapLanes(v Vector, fn func(float32) float32) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = math.Float32bits(fn(v.f(i)))
	}
	return r
}

// ModAngles reduces every lane to [-π, π].
func ModAngles(v Vector) Vector { return mapLanes(v, modAngle) }

// Sin computes sin for each lane.
//
// Example:
//
//	v := xm.Set(0, xm.PiDiv2, xm.Pi, -xm.PiDiv2)
//	s := xm.Sin(v) // ≈ (0, 1, 0, -1)
func Sin(v Vector) Vector { return mapLanes(v, ScalarSin) }

// SinEst computes a lower-precision sin for each lane.
func SinEst(v Vector) Vector { return mapLanes(v, ScalarSinEst) }

// Cos computes cos for each lane.
func Cos(v Vector) Vector { return mapLanes(v, ScalarCos) }

// CosEst computes a lower-precision cos for each lane.
func CosEst(v Vector) Vector { return mapLanes(v, ScalarCosEst) }

// SinCos computes sin and cos for each lane, sharing one range reduction
// per lane.
func SinCos(v Vector) (sin, cos Vector) {
	for i := range 4 {
		s, c := ScalarSinCos(v.f(i))
		sin.u[i] = math.Float32bits(s)
		cos.u[i] = math.Float32bits(c)
	}
	return sin, cos
}

// SinCosEst is the estimate form of SinCos.
func SinCosEst(v Vector) (sin, cos Vector) {
	for i := range 4 {
		s, c := ScalarSinCosEst(v.f(i))
		sin.u[i] = math.Float32bits(s)
		cos.u[i] = math.Float32bits(c)
	}
	return sin, cos
}

// ASin computes asin for each lane. Lanes outside [-1, 1] saturate.
func ASin(v Vector) Vector { return mapLanes(v, ScalarASin) }

// ASinEst computes a lower-precision asin for each lane.
func ASinEst(v Vector) Vector { return mapLanes(v, ScalarASinEst) }

// ACos computes acos for each lane. Lanes outside [-1, 1] saturate.
func ACos(v Vector) Vector { return mapLanes(v, ScalarACos) }

// ACosEst computes a lower-precision acos for each lane.
func ACosEst(v Vector) Vector { return mapLanes(v, ScalarACosEst) }
