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

// Package xm is a single-precision vector and matrix algebra kernel built
// around one uniform four-lane value type, Vector.
//
// The same Vector carries 2D, 3D and 4D vectors, matrix rows, planes
// (A, B, C, D coefficients of Ax+By+Cz+D=0) and quaternions. Every lane is
// stored as its raw 32-bit IEEE-754 pattern, so sentinel values such as the
// quiet NaN (0x7FC00000) and comparison masks (0xFFFFFFFF) round-trip
// exactly through loads, stores and Select.
//
// # Operations
//
// Elementwise:
//   - Add, Subtract, Multiply, Divide, Scale, Negate, Abs, Min, Max
//   - MultiplyAdd (a*b + c), MultiplySubtract (a*b - c),
//     NegativeMultiplySubtract (c - a*b)
//   - Reciprocal, Sqrt, ReciprocalSqrt and their Est variants
//   - Clamp, Saturate, Round, Truncate, Floor, Ceiling, Lerp
//
// Comparison and selection:
//   - Equal, EqualInt, Greater, Less, NearEqual, InBounds, ... return lane masks
//   - EqualR, GreaterR, InBoundsR, ... return a ComparisonRecord
//   - Select, Permute, Swizzle, MergeXY, MergeZW
//   - IsNaN, IsInfinite classify by bit pattern
//
// Geometry:
//   - Vector2*, Vector3*, Vector4* dot/cross/length/normalize/reflect/refract
//   - Plane* construction, normalization, intersection and transform
//   - Matrix construction and multiplication
//
// Scalar approximations:
//   - ScalarSin, ScalarCos, ScalarSinCos, ScalarASin, ScalarACos and Est variants
//
// Degenerate geometric inputs never fail. They produce documented sentinel
// results instead: the zero vector for zero-length normalization and total
// internal reflection, and QNaN in every lane for parallel line/plane and
// plane/plane intersections.
//
// # Example Usage
//
//	plane := xm.PlaneFromPointNormal(xm.Set(0, 0, 0, 0), xm.Set(0, 0, 1, 0))
//	hit := xm.PlaneIntersectLine(plane, xm.Set(0, 0, 1, 1), xm.Set(0, 0, 5, 1))
//	if xm.Vector4IsNaN(hit) {
//	    // line is parallel to the plane
//	}
package xm
