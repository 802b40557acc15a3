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
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(8, 4, 2, 1)
	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"Add", Add(a, b), Set(9, 6, 5, 5)},
		{"Subtract", Subtract(a, b), Set(-7, -2, 1, 3)},
		{"Multiply", Multiply(a, b), Set(8, 8, 6, 4)},
		{"Divide", Divide(a, b), Set(0.125, 0.5, 1.5, 4)},
		{"Scale", Scale(a, 2), Set(2, 4, 6, 8)},
		{"MultiplyAdd", MultiplyAdd(a, b, a), Set(9, 10, 9, 8)},
		{"MultiplySubtract", MultiplySubtract(a, b, a), Set(7, 6, 3, 0)},
		{"NegativeMultiplySubtract", NegativeMultiplySubtract(a, b, a), Set(-7, -6, -3, 0)},
		{"Negate", Negate(a), Set(-1, -2, -3, -4)},
		{"Abs", Abs(Set(-1, 2, -3, 0)), Set(1, 2, 3, 0)},
		{"Min", Min(a, b), Set(1, 2, 2, 1)},
		{"Max", Max(a, b), Set(8, 4, 3, 4)},
		{"Clamp", Clamp(Set(-5, 0.5, 5, 1), Zero(), Replicate(2)), Set(0, 0.5, 2, 1)},
		{"Saturate", Saturate(Set(-0.5, 0.25, 1.5, 1)), Set(0, 0.25, 1, 1)},
		{"Reciprocal", Reciprocal(b), Set(0.125, 0.25, 0.5, 1)},
		{"Sqrt", Sqrt(Set(1, 4, 9, 16)), Set(1, 2, 3, 4)},
		{"ReciprocalSqrt", ReciprocalSqrt(Set(1, 4, 16, 64)), Set(1, 0.5, 0.25, 0.125)},
		{"Round", Round(Set(0.5, 1.5, -2.5, 2.6)), Set(0, 2, -2, 3)},
		{"Truncate", Truncate(Set(1.9, -1.9, 0.1, -0.1)), Set(1, -1, 0, 0)},
		{"Floor", Floor(Set(1.9, -1.1, 2, -0.5)), Set(1, -2, 2, -1)},
		{"Ceiling", Ceiling(Set(1.1, -1.9, 2, -0.5)), Set(2, -1, 2, 0)},
		{"Lerp", Lerp(Zero(), Set(2, 4, 6, 8), 0.5), Set(1, 2, 3, 4)},
		{"LerpV", LerpV(Zero(), Set(2, 4, 6, 8), Set(0, 0.5, 1, 0.25)), Set(0, 2, 6, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Vector4Equal(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNegateAbsAreBitwise(t *testing.T) {
	v := SetInt(bitsQNaN, 0, bitsInfinity, bitsSignMask)
	n := Negate(v)
	want := [4]uint32{bitsQNaN | bitsSignMask, bitsSignMask, bitsInfinity | bitsSignMask, 0}
	if n.Bits() != want {
		t.Errorf("Negate bits = %#v, want %#v", n.Bits(), want)
	}
	if a := Abs(n); a.Bits() != [4]uint32{bitsQNaN, 0, bitsInfinity, 0} {
		t.Errorf("Abs bits = %#v", a.Bits())
	}
}

func TestEstimatesWithinTolerance(t *testing.T) {
	inputs := Set(0.3, 2, 17, 1234.5)
	tests := []struct {
		name string
		est  Vector
		full Vector
	}{
		{"ReciprocalEst", ReciprocalEst(inputs), Reciprocal(inputs)},
		{"SqrtEst", SqrtEst(inputs), Sqrt(inputs)},
		{"ReciprocalSqrtEst", ReciprocalSqrtEst(inputs), ReciprocalSqrt(inputs)},
	}
	for _, tt := range tests {
		for i := range 4 {
			e, f := float64(tt.est.Lane(i)), float64(tt.full.Lane(i))
			if rel := math.Abs(e-f) / math.Abs(f); rel > 1.0/4096 {
				t.Errorf("%s lane %d: %v vs %v (relative error %g)", tt.name, i, e, f, rel)
			}
		}
	}
}

func TestReciprocalSpecialCases(t *testing.T) {
	r := ReciprocalEst(Set(0, float32(math.Inf(1)), float32(math.NaN()), -4))
	if !math.IsInf(float64(r.X()), 1) {
		t.Errorf("ReciprocalEst(0) = %v, want +Inf", r.X())
	}
	if r.Y() != 0 {
		t.Errorf("ReciprocalEst(+Inf) = %v, want 0", r.Y())
	}
	if r.Z() == r.Z() {
		t.Errorf("ReciprocalEst(NaN) = %v, want NaN", r.Z())
	}
	if r.W() != -0.25 {
		t.Errorf("ReciprocalEst(-4) = %v, want -0.25", r.W())
	}

	rs := ReciprocalSqrt(Set(0, float32(math.Inf(1)), -1, 4))
	if !math.IsInf(float64(rs.X()), 1) || rs.Y() != 0 || rs.Z() == rs.Z() || rs.W() != 0.5 {
		t.Errorf("ReciprocalSqrt special cases = %v", rs)
	}
}

func TestMultiplyAddRounding(t *testing.T) {
	// a*b = 1 + 2^-11 + 2^-24, whose last term is lost when the product is
	// rounded to float32 first.
	a := Replicate(1 + 1.0/4096)
	c := Replicate(-(1 + 1.0/2048))

	prev := SetFusedMultiplyAdd(true)
	defer SetFusedMultiplyAdd(prev)

	if got, want := MultiplyAdd(a, a, c).X(), float32(1.0/(1<<24)); got != want {
		t.Errorf("fused MultiplyAdd = %g, want %g", got, want)
	}

	SetFusedMultiplyAdd(false)
	if got := MultiplyAdd(a, a, c).X(); got != 0 {
		t.Errorf("rounded MultiplyAdd = %g, want 0", got)
	}
}

func TestMultiplyAddSingleRounding(t *testing.T) {
	// a*b = 1 + 2^-11 + 2^-24 sits halfway between two float32 values, and
	// the tiny addend decides the direction. Rounding to float64 first would
	// drop the addend and then tie to even.
	a := Replicate(1 + 1.0/4096)
	c := Replicate(float32(math.Ldexp(1, -70)))

	prev := SetFusedMultiplyAdd(true)
	defer SetFusedMultiplyAdd(prev)

	if got, want := math.Float32bits(MultiplyAdd(a, a, c).X()), uint32(0x3F801001); got != want {
		t.Errorf("fused MultiplyAdd bits = %#x, want %#x", got, want)
	}
	if got, want := math.Float32bits(MultiplyAdd(a, a, Negate(c)).X()), uint32(0x3F801000); got != want {
		t.Errorf("fused MultiplyAdd with negative addend bits = %#x, want %#x", got, want)
	}

	SetFusedMultiplyAdd(false)
	if got, want := math.Float32bits(MultiplyAdd(a, a, c).X()), uint32(0x3F801000); got != want {
		t.Errorf("rounded MultiplyAdd bits = %#x, want %#x", got, want)
	}
}

func TestSaturateNaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := Saturate(Replicate(nan)); got != Zero() {
		t.Errorf("Saturate(NaN) = %v, want (0, 0, 0, 0)", got)
	}
	if got, want := Saturate(Set(-1, 0.5, 2, nan)), Set(0, 0.5, 1, 0); got != want {
		t.Errorf("Saturate = %v, want %v", got, want)
	}
}
