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

// Select returns, for each lane, b's lane where control is all ones and a's
// lane where control is all zeros. It is a bitwise multiplexer: a control
// lane that is neither all ones nor all zeros mixes the bits of a and b,
// and callers should not rely on that result.
func Select(a, b, control Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = (a.u[i] &^ control.u[i]) | (b.u[i] & control.u[i])
	}
	return r
}

// SelectControl builds a Select control vector. Each index must be 0
// (take from a) or 1 (take from b).
func SelectControl(i0, i1, i2, i3 uint32) Vector {
	assertIndex(int(i0), 2)
	assertIndex(int(i1), 2)
	assertIndex(int(i2), 2)
	assertIndex(int(i3), 2)
	return Vector{u: [4]uint32{-(i0 & 1), -(i1 & 1), -(i2 & 1), -(i3 & 1)}}
}

// select1110 takes x, y and z from the second Select source.
var select1110 = SelectControl(1, 1, 1, 0)

// PermuteIndex picks a lane from the concatenation of two vectors.
type PermuteIndex uint32

// Permute lane selectors. The 0 suffix picks from the first source, the 1
// suffix from the second.
const (
	PermuteX0 PermuteIndex = iota
	PermuteY0
	PermuteZ0
	PermuteW0
	PermuteX1
	PermuteY1
	PermuteZ1
	PermuteW1
)

// SwizzleIndex picks a lane from a single vector.
type SwizzleIndex uint32

// Swizzle lane selectors.
const (
	SwizzleX SwizzleIndex = iota
	SwizzleY
	SwizzleZ
	SwizzleW
)

// Permute builds a vector whose lane k is lane pk of the eight-lane
// concatenation (a, b). Selectors outside PermuteX0..PermuteW1 are a caller
// error; they panic under the xmdebug build tag.
func Permute(a, b Vector, px, py, pz, pw PermuteIndex) Vector {
	assertIndex(int(px), 8)
	assertIndex(int(py), 8)
	assertIndex(int(pz), 8)
	assertIndex(int(pw), 8)
	src := [8]uint32{a.u[0], a.u[1], a.u[2], a.u[3], b.u[0], b.u[1], b.u[2], b.u[3]}
	return Vector{u: [4]uint32{src[px&7], src[py&7], src[pz&7], src[pw&7]}}
}

// Swizzle builds a vector whose lane k is lane sk of v. Selectors outside
// SwizzleX..SwizzleW are a caller error; they panic under the xmdebug
// build tag.
func Swizzle(v Vector, sx, sy, sz, sw SwizzleIndex) Vector {
	assertIndex(int(sx), 4)
	assertIndex(int(sy), 4)
	assertIndex(int(sz), 4)
	assertIndex(int(sw), 4)
	return Vector{u: [4]uint32{v.u[sx&3], v.u[sy&3], v.u[sz&3], v.u[sw&3]}}
}

// MergeXY interleaves the low lanes: (a.x, b.x, a.y, b.y).
func MergeXY(a, b Vector) Vector {
	return Permute(a, b, PermuteX0, PermuteX1, PermuteY0, PermuteY1)
}

// MergeZW interleaves the high lanes: (a.z, b.z, a.w, b.w).
func MergeZW(a, b Vector) Vector {
	return Permute(a, b, PermuteZ0, PermuteZ1, PermuteW0, PermuteW1)
}
