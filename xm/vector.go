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
	"fmt"
	"math"
)

// Vector is a four-lane single-precision value.
//
// Lanes are held as raw bit patterns and reinterpreted as float32 on access,
// so sentinel patterns (QNaN, Infinity, all-ones masks) are never altered by
// a float move. The zero value is (0, 0, 0, 0).
//
// Vector is immutable by convention: every setter returns a modified copy.
// Two Vectors compare equal with == exactly when their bit patterns match.
type Vector struct {
	u [4]uint32
}

// Set creates a vector from four float lanes.
func Set(x, y, z, w float32) Vector {
	return Vector{u: [4]uint32{
		math.Float32bits(x),
		math.Float32bits(y),
		math.Float32bits(z),
		math.Float32bits(w),
	}}
}

// SetInt creates a vector from four raw 32-bit lane patterns.
func SetInt(x, y, z, w uint32) Vector {
	return Vector{u: [4]uint32{x, y, z, w}}
}

// FromFloats creates a vector from an array of four floats.
func FromFloats(f [4]float32) Vector {
	return Set(f[0], f[1], f[2], f[3])
}

// FromBits creates a vector from an array of four raw lane patterns.
func FromBits(u [4]uint32) Vector {
	return Vector{u: u}
}

// Zero returns (0, 0, 0, 0).
func Zero() Vector {
	return Vector{}
}

// Replicate returns a vector with every lane set to f.
func Replicate(f float32) Vector {
	b := math.Float32bits(f)
	return Vector{u: [4]uint32{b, b, b, b}}
}

// ReplicateInt returns a vector with every lane set to the bit pattern u.
func ReplicateInt(u uint32) Vector {
	return Vector{u: [4]uint32{u, u, u, u}}
}

// TrueInt returns a vector with every lane set to the all-ones mask.
func TrueInt() Vector {
	return ReplicateInt(maskTrue)
}

// FalseInt returns a vector with every lane cleared.
func FalseInt() Vector {
	return Vector{}
}

// SplatOne returns (1, 1, 1, 1).
func SplatOne() Vector {
	return ReplicateInt(bitsOne)
}

// SplatInfinity returns +Inf in every lane.
func SplatInfinity() Vector {
	return ReplicateInt(bitsInfinity)
}

// SplatQNaN returns the quiet NaN sentinel 0x7FC00000 in every lane.
func SplatQNaN() Vector {
	return ReplicateInt(bitsQNaN)
}

// SplatEpsilon returns the float32 machine epsilon in every lane.
func SplatEpsilon() Vector {
	return ReplicateInt(bitsEpsilon)
}

// SplatSignMask returns 0x80000000 in every lane.
func SplatSignMask() Vector {
	return ReplicateInt(bitsSignMask)
}

// SplatX replicates the X lane of v into every lane.
func SplatX(v Vector) Vector { return ReplicateInt(v.u[0]) }

// SplatY replicates the Y lane of v into every lane.
func SplatY(v Vector) Vector { return ReplicateInt(v.u[1]) }

// SplatZ replicates the Z lane of v into every lane.
func SplatZ(v Vector) Vector { return ReplicateInt(v.u[2]) }

// SplatW replicates the W lane of v into every lane.
func SplatW(v Vector) Vector { return ReplicateInt(v.u[3]) }

// X returns the X lane as a float.
func (v Vector) X() float32 { return math.Float32frombits(v.u[0]) }

// Y returns the Y lane as a float.
func (v Vector) Y() float32 { return math.Float32frombits(v.u[1]) }

// Z returns the Z lane as a float.
func (v Vector) Z() float32 { return math.Float32frombits(v.u[2]) }

// W returns the W lane as a float.
func (v Vector) W() float32 { return math.Float32frombits(v.u[3]) }

// UintX returns the raw bit pattern of the X lane.
func (v Vector) UintX() uint32 { return v.u[0] }

// UintY returns the raw bit pattern of the Y lane.
func (v Vector) UintY() uint32 { return v.u[1] }

// UintZ returns the raw bit pattern of the Z lane.
func (v Vector) UintZ() uint32 { return v.u[2] }

// UintW returns the raw bit pattern of the W lane.
func (v Vector) UintW() uint32 { return v.u[3] }

// SetX returns a copy of v with the X lane replaced.
func (v Vector) SetX(f float32) Vector { v.u[0] = math.Float32bits(f); return v }

// SetY returns a copy of v with the Y lane replaced.
func (v Vector) SetY(f float32) Vector { v.u[1] = math.Float32bits(f); return v }

// SetZ returns a copy of v with the Z lane replaced.
func (v Vector) SetZ(f float32) Vector { v.u[2] = math.Float32bits(f); return v }

// SetW returns a copy of v with the W lane replaced.
func (v Vector) SetW(f float32) Vector { v.u[3] = math.Float32bits(f); return v }

// SetUintX returns a copy of v with the X lane pattern replaced.
func (v Vector) SetUintX(u uint32) Vector { v.u[0] = u; return v }

// SetUintY returns a copy of v with the Y lane pattern replaced.
func (v Vector) SetUintY(u uint32) Vector { v.u[1] = u; return v }

// SetUintZ returns a copy of v with the Z lane pattern replaced.
func (v Vector) SetUintZ(u uint32) Vector { v.u[2] = u; return v }

// SetUintW returns a copy of v with the W lane pattern replaced.
func (v Vector) SetUintW(u uint32) Vector { v.u[3] = u; return v }

// Lane returns lane i (0..3) as a float.
func (v Vector) Lane(i int) float32 {
	assertIndex(i, 4)
	return math.Float32frombits(v.u[i&3])
}

// UintLane returns the raw pattern of lane i (0..3).
func (v Vector) UintLane(i int) uint32 {
	assertIndex(i, 4)
	return v.u[i&3]
}

// SetLane returns a copy of v with lane i (0..3) replaced.
func (v Vector) SetLane(i int, f float32) Vector {
	assertIndex(i, 4)
	v.u[i&3] = math.Float32bits(f)
	return v
}

// Floats returns the four lanes as floats.
func (v Vector) Floats() [4]float32 {
	return [4]float32{v.X(), v.Y(), v.Z(), v.W()}
}

// Bits returns the four raw lane patterns.
func (v Vector) Bits() [4]uint32 {
	return v.u
}

// String formats v as (x, y, z, w).
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X(), v.Y(), v.Z(), v.W())
}

// f returns lane i as a float without the bounds assertion.
func (v Vector) f(i int) float32 {
	return math.Float32frombits(v.u[i])
}
