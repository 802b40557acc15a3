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

// Matrix is a row-major 4×4 matrix. Vectors are treated as row vectors, so
// a point p transforms as p·M and translation lives in row 4.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r0, r1, r2, r3 Vector) Matrix {
	return Matrix{
		r0.X(), r0.Y(), r0.Z(), r0.W(),
		r1.X(), r1.Y(), r1.Z(), r1.W(),
		r2.X(), r2.Y(), r2.Z(), r2.W(),
		r3.X(), r3.Y(), r3.Z(), r3.W(),
	}
}

// Row returns row i (0..3) as a Vector.
func (m Matrix) Row(i int) Vector {
	assertIndex(i, 4)
	switch i & 3 {
	case 0:
		return Set(m.M11, m.M12, m.M13, m.M14)
	case 1:
		return Set(m.M21, m.M22, m.M23, m.M24)
	case 2:
		return Set(m.M31, m.M32, m.M33, m.M34)
	default:
		return Set(m.M41, m.M42, m.M43, m.M44)
	}
}

// Rows returns the four rows.
func (m Matrix) Rows() [4]Vector {
	return [4]Vector{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// MatrixTranslation returns a matrix translating by (x, y, z).
func MatrixTranslation(x, y, z float32) Matrix {
	m := MatrixIdentity()
	m.M41, m.M42, m.M43 = x, y, z
	return m
}

// MatrixScaling returns a matrix scaling by (x, y, z).
func MatrixScaling(x, y, z float32) Matrix {
	return Matrix{M11: x, M22: y, M33: z, M44: 1}
}

// MatrixRotationX returns a matrix rotating by angle radians about the x
// axis. Rotation is clockwise when looking along the axis toward the
// origin, matching left-handed coordinates.
func MatrixRotationX(angle float32) Matrix {
	s, c := ScalarSinCos(angle)
	m := MatrixIdentity()
	m.M22, m.M23 = c, s
	m.M32, m.M33 = -s, c
	return m
}

// MatrixRotationY returns a matrix rotating by angle radians about the y
// axis.
func MatrixRotationY(angle float32) Matrix {
	s, c := ScalarSinCos(angle)
	m := MatrixIdentity()
	m.M11, m.M13 = c, -s
	m.M31, m.M33 = s, c
	return m
}

// MatrixRotationZ returns a matrix rotating by angle radians about the z
// axis.
func MatrixRotationZ(angle float32) Matrix {
	s, c := ScalarSinCos(angle)
	m := MatrixIdentity()
	m.M11, m.M12 = c, s
	m.M21, m.M22 = -s, c
	return m
}

// MatrixTranspose swaps rows and columns.
func MatrixTranspose(m Matrix) Matrix {
	return Matrix{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// MatrixMultiply returns a·b: transforming by the result equals
// transforming by a and then by b.
func MatrixMultiply(a, b Matrix) Matrix {
	return MatrixFromRows(
		Vector4Transform(a.Row(0), b),
		Vector4Transform(a.Row(1), b),
		Vector4Transform(a.Row(2), b),
		Vector4Transform(a.Row(3), b),
	)
}
