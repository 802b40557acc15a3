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

var (
	negZero = math.Float32frombits(bitsSignMask)
	inf32   = float32(math.Inf(1))
)

func TestEqualVersusEqualInt(t *testing.T) {
	nan := SplatQNaN()
	if Vector4Equal(nan, nan) {
		t.Error("Vector4Equal(QNaN, QNaN) = true, want false")
	}
	if !Vector4EqualInt(nan, nan) {
		t.Error("Vector4EqualInt(QNaN, QNaN) = false, want true")
	}

	pz, nz := Zero(), Replicate(negZero)
	if !Vector4Equal(pz, nz) {
		t.Error("Vector4Equal(+0, -0) = false, want true")
	}
	if Vector4EqualInt(pz, nz) {
		t.Error("Vector4EqualInt(+0, -0) = true, want false")
	}
	if !Vector4NotEqualInt(pz, nz) || Vector4NotEqual(pz, nz) {
		t.Error("NotEqual/NotEqualInt disagree with Equal/EqualInt on ±0")
	}
}

func TestComparisonMasks(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(4, 2, 1, 4)
	tests := []struct {
		name string
		got  Vector
		want [4]uint32
	}{
		{"Equal", Equal(a, b), [4]uint32{0, maskTrue, 0, maskTrue}},
		{"NotEqual", NotEqual(a, b), [4]uint32{maskTrue, 0, maskTrue, 0}},
		{"Greater", Greater(a, b), [4]uint32{0, 0, maskTrue, 0}},
		{"GreaterOrEqual", GreaterOrEqual(a, b), [4]uint32{0, maskTrue, maskTrue, maskTrue}},
		{"Less", Less(a, b), [4]uint32{maskTrue, 0, 0, 0}},
		{"LessOrEqual", LessOrEqual(a, b), [4]uint32{maskTrue, maskTrue, 0, maskTrue}},
		{"NearEqual", NearEqual(a, b, Replicate(1)), [4]uint32{0, maskTrue, 0, maskTrue}},
		{"InBounds", InBounds(Set(-1, 2, 0.5, -3), Replicate(2)), [4]uint32{maskTrue, maskTrue, maskTrue, 0}},
	}
	for _, tt := range tests {
		if tt.got.Bits() != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.name, tt.got.Bits(), tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	v := SetInt(bitsQNaN, bitsInfinity, bitsInfinity|bitsSignMask, bitsOne)
	if got, want := IsNaN(v).Bits(), [4]uint32{maskTrue, 0, 0, 0}; got != want {
		t.Errorf("IsNaN = %#v, want %#v", got, want)
	}
	if got, want := IsInfinite(v).Bits(), [4]uint32{0, maskTrue, maskTrue, 0}; got != want {
		t.Errorf("IsInfinite = %#v, want %#v", got, want)
	}

	// The all-ones mask is itself a NaN pattern.
	if !Vector4IsNaN(TrueInt()) {
		t.Error("Vector4IsNaN(TrueInt()) = false")
	}
	if Vector3IsNaN(Set(1, 2, 3, 0).SetUintW(bitsQNaN)) {
		t.Error("Vector3IsNaN looked at the w lane")
	}
	if !Vector4IsInfinite(Set(0, 0, 0, -inf32)) {
		t.Error("Vector4IsInfinite missed -Inf")
	}
}

func TestBitwise(t *testing.T) {
	a := SetInt(0xF0F0F0F0, 0xFFFF0000, 0, maskTrue)
	b := SetInt(0xFF00FF00, 0x0000FFFF, maskTrue, maskTrue)
	tests := []struct {
		name string
		got  Vector
		want [4]uint32
	}{
		{"AndInt", AndInt(a, b), [4]uint32{0xF000F000, 0, 0, maskTrue}},
		{"AndCInt", AndCInt(a, b), [4]uint32{0x00F000F0, 0xFFFF0000, 0, 0}},
		{"OrInt", OrInt(a, b), [4]uint32{0xFFF0FFF0, maskTrue, maskTrue, maskTrue}},
		{"XorInt", XorInt(a, b), [4]uint32{0x0FF00FF0, maskTrue, maskTrue, 0}},
		{"NorInt", NorInt(a, b), [4]uint32{0x000F000F, 0, 0, 0}},
	}
	for _, tt := range tests {
		if tt.got.Bits() != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.name, tt.got.Bits(), tt.want)
		}
	}
}

func TestSelectIsBitExact(t *testing.T) {
	a := SetInt(0x7FA00001, bitsQNaN, 0x12345678, bitsSignMask)
	b := SetInt(0xFFFFFFFF, 0x00000001, 0xDEADBEEF, bitsInfinity)

	for pattern := range 16 {
		var control Vector
		for i := range 4 {
			if pattern&(1<<i) != 0 {
				control.u[i] = maskTrue
			}
		}
		got := Select(a, b, control)
		for i := range 4 {
			want := a.UintLane(i)
			if pattern&(1<<i) != 0 {
				want = b.UintLane(i)
			}
			if got.UintLane(i) != want {
				t.Errorf("pattern %04b lane %d = %#08x, want %#08x", pattern, i, got.UintLane(i), want)
			}
		}
	}
}

func TestSelectControl(t *testing.T) {
	c := SelectControl(1, 0, 1, 0)
	if c.Bits() != [4]uint32{maskTrue, 0, maskTrue, 0} {
		t.Errorf("SelectControl(1, 0, 1, 0) = %#v", c.Bits())
	}
	got := Select(Set(1, 2, 3, 4), Set(5, 6, 7, 8), c)
	if !Vector4Equal(got, Set(5, 2, 7, 4)) {
		t.Errorf("Select with control = %v", got)
	}
}

func TestPermuteAndSwizzle(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(5, 6, 7, 8)

	if got := Permute(a, b, PermuteW1, PermuteX0, PermuteZ1, PermuteY0); !Vector4Equal(got, Set(8, 1, 7, 2)) {
		t.Errorf("Permute = %v", got)
	}
	if got := Swizzle(a, SwizzleW, SwizzleZ, SwizzleY, SwizzleX); !Vector4Equal(got, Set(4, 3, 2, 1)) {
		t.Errorf("Swizzle = %v", got)
	}
	if got := Swizzle(a, SwizzleX, SwizzleX, SwizzleX, SwizzleX); got != SplatX(a) {
		t.Errorf("Swizzle XXXX = %v, want %v", got, SplatX(a))
	}
	if got := MergeXY(a, b); !Vector4Equal(got, Set(1, 5, 2, 6)) {
		t.Errorf("MergeXY = %v", got)
	}
	if got := MergeZW(a, b); !Vector4Equal(got, Set(3, 7, 4, 8)) {
		t.Errorf("MergeZW = %v", got)
	}

	// Permute moves patterns, not values.
	n := SetInt(0x7FA00001, 0, 0, 0)
	if got := Permute(n, Zero(), PermuteX0, PermuteX0, PermuteX1, PermuteX1); got.UintY() != 0x7FA00001 {
		t.Errorf("Permute altered NaN payload: %#08x", got.UintY())
	}
}
