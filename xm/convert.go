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

	"golang.org/x/image/math/f32"
)

// Load and store between Vector and the plain coordinate tuples. Float
// tuples are the golang.org/x/image/math/f32 types; integer tuples are
// defined here. Lanes a tuple does not carry are zero on load.

// Int2 is a pair of signed integers.
type Int2 [2]int32

// Int3 is a triple of signed integers.
type Int3 [3]int32

// Int4 is a quadruple of signed integers.
type Int4 [4]int32

// UInt2 is a pair of unsigned integers.
type UInt2 [2]uint32

// UInt3 is a triple of unsigned integers.
type UInt3 [3]uint32

// UInt4 is a quadruple of unsigned integers.
type UInt4 [4]uint32

// LoadFloat2 loads (x, y, 0, 0).
func LoadFloat2(src f32.Vec2) Vector { return Set(src[0], src[1], 0, 0) }

// LoadFloat3 loads (x, y, z, 0).
func LoadFloat3(src f32.Vec3) Vector { return Set(src[0], src[1], src[2], 0) }

// LoadFloat4 loads (x, y, z, w).
func LoadFloat4(src f32.Vec4) Vector { return Set(src[0], src[1], src[2], src[3]) }

// StoreFloat2 stores x and y.
func StoreFloat2(v Vector) f32.Vec2 { return f32.Vec2{v.X(), v.Y()} }

// StoreFloat3 stores x, y and z.
func StoreFloat3(v Vector) f32.Vec3 { return f32.Vec3{v.X(), v.Y(), v.Z()} }

// StoreFloat4 stores all four lanes.
func StoreFloat4(v Vector) f32.Vec4 { return f32.Vec4{v.X(), v.Y(), v.Z(), v.W()} }

// LoadInt2 converts (x, y) to floats.
func LoadInt2(src Int2) Vector { return Set(float32(src[0]), float32(src[1]), 0, 0) }

// LoadInt3 converts (x, y, z) to floats.
func LoadInt3(src Int3) Vector {
	return Set(float32(src[0]), float32(src[1]), float32(src[2]), 0)
}

// LoadInt4 converts all four integers to floats.
func LoadInt4(src Int4) Vector {
	return Set(float32(src[0]), float32(src[1]), float32(src[2]), float32(src[3]))
}

// StoreInt2 converts x and y to integers, truncating toward zero.
func StoreInt2(v Vector) Int2 { return Int2{toInt32(v.X()), toInt32(v.Y())} }

// StoreInt3 converts x, y and z to integers, truncating toward zero.
func StoreInt3(v Vector) Int3 {
	return Int3{toInt32(v.X()), toInt32(v.Y()), toInt32(v.Z())}
}

// StoreInt4 converts all four lanes to integers, truncating toward zero.
// Out-of-range lanes saturate and NaN stores 0.
func StoreInt4(v Vector) Int4 {
	return Int4{toInt32(v.X()), toInt32(v.Y()), toInt32(v.Z()), toInt32(v.W())}
}

// LoadUInt2 converts (x, y) to floats.
func LoadUInt2(src UInt2) Vector { return Set(float32(src[0]), float32(src[1]), 0, 0) }

// LoadUInt3 converts (x, y, z) to floats.
func LoadUInt3(src UInt3) Vector {
	return Set(float32(src[0]), float32(src[1]), float32(src[2]), 0)
}

// LoadUInt4 converts all four integers to floats.
func LoadUInt4(src UInt4) Vector {
	return Set(float32(src[0]), float32(src[1]), float32(src[2]), float32(src[3]))
}

// StoreUInt2 converts x and y to unsigned integers.
func StoreUInt2(v Vector) UInt2 { return UInt2{toUint32(v.X()), toUint32(v.Y())} }

// StoreUInt3 converts x, y and z to unsigned integers.
func StoreUInt3(v Vector) UInt3 {
	return UInt3{toUint32(v.X()), toUint32(v.Y()), toUint32(v.Z())}
}

// StoreUInt4 converts all four lanes to unsigned integers, truncating
// toward zero. Negative lanes and NaN store 0; large lanes saturate.
func StoreUInt4(v Vector) UInt4 {
	return UInt4{toUint32(v.X()), toUint32(v.Y()), toUint32(v.Z()), toUint32(v.W())}
}

func toInt32(f float32) int32 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func toUint32(f float32) uint32 {
	switch {
	case f != f || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

// LoadFloat4x4 loads a row-major f32.Mat4.
func LoadFloat4x4(src f32.Mat4) Matrix {
	return Matrix{
		src[0], src[1], src[2], src[3],
		src[4], src[5], src[6], src[7],
		src[8], src[9], src[10], src[11],
		src[12], src[13], src[14], src[15],
	}
}

// StoreFloat4x4 stores m as a row-major f32.Mat4.
func StoreFloat4x4(m Matrix) f32.Mat4 {
	return f32.Mat4{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// LoadFloat3x3 embeds a row-major f32.Mat3 in the upper-left of a 4×4
// matrix whose remaining elements come from the identity.
func LoadFloat3x3(src f32.Mat3) Matrix {
	return Matrix{
		src[0], src[1], src[2], 0,
		src[3], src[4], src[5], 0,
		src[6], src[7], src[8], 0,
		0, 0, 0, 1,
	}
}

// StoreFloat3x3 stores the upper-left 3×3 block of m.
func StoreFloat3x3(m Matrix) f32.Mat3 {
	return f32.Mat3{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

// VectorFromSlice builds a Vector from exactly four floats.
func VectorFromSlice(src []float32) (Vector, error) {
	if err := checkSlice("Vector", src, 4); err != nil {
		return Vector{}, err
	}
	return Set(src[0], src[1], src[2], src[3]), nil
}

// Float2FromSlice builds an f32.Vec2 from exactly two floats.
func Float2FromSlice(src []float32) (f32.Vec2, error) {
	if err := checkSlice("Float2", src, 2); err != nil {
		return f32.Vec2{}, err
	}
	return f32.Vec2{src[0], src[1]}, nil
}

// Float3FromSlice builds an f32.Vec3 from exactly three floats.
func Float3FromSlice(src []float32) (f32.Vec3, error) {
	if err := checkSlice("Float3", src, 3); err != nil {
		return f32.Vec3{}, err
	}
	return f32.Vec3{src[0], src[1], src[2]}, nil
}

// Float4FromSlice builds an f32.Vec4 from exactly four floats.
func Float4FromSlice(src []float32) (f32.Vec4, error) {
	if err := checkSlice("Float4", src, 4); err != nil {
		return f32.Vec4{}, err
	}
	return f32.Vec4{src[0], src[1], src[2], src[3]}, nil
}

// Int2FromSlice builds an Int2 from exactly two integers.
func Int2FromSlice(src []int32) (Int2, error) {
	if err := checkSlice("Int2", src, 2); err != nil {
		return Int2{}, err
	}
	return Int2{src[0], src[1]}, nil
}

// Int3FromSlice builds an Int3 from exactly three integers.
func Int3FromSlice(src []int32) (Int3, error) {
	if err := checkSlice("Int3", src, 3); err != nil {
		return Int3{}, err
	}
	return Int3{src[0], src[1], src[2]}, nil
}

// Int4FromSlice builds an Int4 from exactly four integers.
func Int4FromSlice(src []int32) (Int4, error) {
	if err := checkSlice("Int4", src, 4); err != nil {
		return Int4{}, err
	}
	return Int4{src[0], src[1], src[2], src[3]}, nil
}

// UInt2FromSlice builds a UInt2 from exactly two integers.
func UInt2FromSlice(src []uint32) (UInt2, error) {
	if err := checkSlice("UInt2", src, 2); err != nil {
		return UInt2{}, err
	}
	return UInt2{src[0], src[1]}, nil
}

// UInt3FromSlice builds a UInt3 from exactly three integers.
func UInt3FromSlice(src []uint32) (UInt3, error) {
	if err := checkSlice("UInt3", src, 3); err != nil {
		return UInt3{}, err
	}
	return UInt3{src[0], src[1], src[2]}, nil
}

// UInt4FromSlice builds a UInt4 from exactly four integers.
func UInt4FromSlice(src []uint32) (UInt4, error) {
	if err := checkSlice("UInt4", src, 4); err != nil {
		return UInt4{}, err
	}
	return UInt4{src[0], src[1], src[2], src[3]}, nil
}
