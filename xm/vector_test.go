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

func TestSetAndAccessors(t *testing.T) {
	v := Set(1, 2, 3, 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Fatalf("Set(1, 2, 3, 4) = %v", v)
	}
	if got := v.Floats(); got != [4]float32{1, 2, 3, 4} {
		t.Errorf("Floats() = %v", got)
	}

	v = v.SetX(-1).SetY(-2).SetZ(-3).SetW(-4)
	if got := v.Floats(); got != [4]float32{-1, -2, -3, -4} {
		t.Errorf("after setters = %v", got)
	}

	for i := range 4 {
		w := v.SetLane(i, 9)
		if w.Lane(i) != 9 {
			t.Errorf("SetLane(%d, 9).Lane(%d) = %v", i, i, w.Lane(i))
		}
		if w == v {
			t.Errorf("SetLane(%d) did not change the copy", i)
		}
	}
}

func TestIntAccessors(t *testing.T) {
	v := SetInt(0x7FC00000, 0x7F800000, 0xFFFFFFFF, 0x00000001)
	if v.UintX() != 0x7FC00000 || v.UintY() != 0x7F800000 || v.UintZ() != 0xFFFFFFFF || v.UintW() != 1 {
		t.Fatalf("SetInt lanes = %#v", v.Bits())
	}

	v = v.SetUintX(1).SetUintY(2).SetUintZ(3).SetUintW(4)
	if got := v.Bits(); got != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Bits() = %v", got)
	}
}

func TestSentinelPatternsRoundTrip(t *testing.T) {
	// A signaling NaN payload must survive a float read and write.
	const sNaN uint32 = 0x7FA00001
	v := SetInt(sNaN, bitsQNaN, maskTrue, bitsInfinity)
	w := Set(v.X(), v.Y(), v.Z(), v.W())
	for i := range 4 {
		if w.UintLane(i) != v.UintLane(i) {
			t.Errorf("lane %d: %#08x after round trip, want %#08x", i, w.UintLane(i), v.UintLane(i))
		}
	}

	checkAllLanesBits(t, "SplatQNaN", SplatQNaN(), QNaNBits)
	checkAllLanesBits(t, "TrueInt", TrueInt(), 0xFFFFFFFF)
	checkAllLanesBits(t, "FalseInt", FalseInt(), 0)
	checkAllLanesBits(t, "SplatInfinity", SplatInfinity(), 0x7F800000)
	checkAllLanesBits(t, "SplatSignMask", SplatSignMask(), 0x80000000)

	if SplatEpsilon().X() != Epsilon {
		t.Errorf("SplatEpsilon().X() = %v, want %v", SplatEpsilon().X(), Epsilon)
	}
	if SplatOne() != Replicate(1) {
		t.Errorf("SplatOne() = %v", SplatOne())
	}
}

func TestSplat(t *testing.T) {
	v := Set(1, 2, 3, 4)
	tests := []struct {
		name string
		got  Vector
		want float32
	}{
		{"SplatX", SplatX(v), 1},
		{"SplatY", SplatY(v), 2},
		{"SplatZ", SplatZ(v), 3},
		{"SplatW", SplatW(v), 4},
	}
	for _, tt := range tests {
		if tt.got != Replicate(tt.want) {
			t.Errorf("%s = %v, want all %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFromFloatsAndBits(t *testing.T) {
	f := [4]float32{0.5, -0.25, float32(math.Inf(-1)), 7}
	v := FromFloats(f)
	if v.Floats() != f {
		t.Errorf("FromFloats(%v) = %v", f, v)
	}
	if FromBits(v.Bits()) != v {
		t.Errorf("FromBits(Bits()) changed %v", v)
	}
}

func TestString(t *testing.T) {
	if got, want := Set(1, -2.5, 0, 4).String(), "(1, -2.5, 0, 4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
