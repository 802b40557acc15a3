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

// A plane is a Vector (A, B, C, D) holding the coefficients of
// Ax + By + Cz + D = 0. (A, B, C) is the plane normal.

// PlaneEqual reports whether two planes have identical coefficients.
// Planes that differ by a scale factor are not equal; use PlaneNearEqual.
func PlaneEqual(p1, p2 Vector) bool {
	return Vector4Equal(p1, p2)
}

// PlaneNotEqual reports whether any coefficient differs.
func PlaneNotEqual(p1, p2 Vector) bool {
	return Vector4NotEqual(p1, p2)
}

// PlaneNearEqual normalizes both planes and compares the coefficients
// within epsilon. Positive scalar multiples of one plane compare equal.
func PlaneNearEqual(p1, p2, epsilon Vector) bool {
	return Vector4NearEqual(PlaneNormalize(p1), PlaneNormalize(p2), epsilon)
}

// PlaneIsNaN reports whether any coefficient is NaN.
func PlaneIsNaN(p Vector) bool {
	return Vector4IsNaN(p)
}

// PlaneIsInfinite reports whether any coefficient is ±Inf.
func PlaneIsInfinite(p Vector) bool {
	return Vector4IsInfinite(p)
}

// PlaneDot returns the 4D dot product of the plane and v.
func PlaneDot(p, v Vector) Vector {
	return Vector4Dot(p, v)
}

// PlaneDotCoord evaluates the plane equation at the point v, treating v.w
// as 1. The result is the signed distance when p is normalized.
func PlaneDotCoord(p, v Vector) Vector {
	point := Select(SplatOne(), v, select1110)
	return Vector4Dot(p, point)
}

// PlaneDotNormal returns the dot product of the plane normal (A, B, C) and
// the direction v, treating v.w as 0.
func PlaneDotNormal(p, v Vector) Vector {
	return Vector3Dot(p, v)
}

// PlaneNormalize divides all four coefficients by the length of (A, B, C).
// A plane whose normal has zero length is returned unscaled.
func PlaneNormalize(p Vector) Vector {
	length := sqrt32(dotN(p, p, 3))
	if length > 0 {
		return Scale(p, 1/length)
	}
	return p
}

// PlaneNormalizeEst scales the plane by the estimated reciprocal length of
// its normal.
func PlaneNormalizeEst(p Vector) Vector {
	return Multiply(p, Vector3ReciprocalLengthEst(p))
}

// PlaneIntersectLine returns the point where the line through p1 and p2
// crosses the plane p. The returned point has w = 1 when p1.w = p2.w = 1.
// A line parallel to the plane returns QNaN in every lane.
func PlaneIntersectLine(p, p1, p2 Vector) Vector {
	v1 := Vector3Dot(p, p1)
	v2 := Vector3Dot(p, p2)
	d := Subtract(v1, v2)

	t := PlaneDotCoord(p, p1)
	t = Divide(t, d)

	point := Subtract(p2, p1)
	point = MultiplyAdd(point, t, p1)

	parallel := NearEqual(d, Zero(), SplatEpsilon())
	return Select(point, SplatQNaN(), parallel)
}

// PlaneIntersectPlane returns two points on the line where p1 and p2 meet.
// Parallel planes return QNaN in every lane of both points.
func PlaneIntersectPlane(p1, p2 Vector) (linePoint1, linePoint2 Vector) {
	v1 := Vector3Cross(p2, p1)
	lengthSq := Vector3LengthSq(v1)

	v2 := Vector3Cross(p2, v1)
	point := Multiply(v2, SplatW(p1))
	v3 := Vector3Cross(v1, p1)
	point = MultiplyAdd(v3, SplatW(p2), point)

	linePoint1 = Divide(point, lengthSq)
	linePoint2 = Add(linePoint1, v1)

	parallel := LessOrEqual(lengthSq, SplatEpsilon())
	linePoint1 = Select(linePoint1, SplatQNaN(), parallel)
	linePoint2 = Select(linePoint2, SplatQNaN(), parallel)
	return linePoint1, linePoint2
}

// PlaneTransform transforms the plane p by m, weighting the rows of m by
// the plane coefficients. To transform a plane along with points moved by
// a matrix M, pass the inverse transpose of M; the matrix is not checked.
func PlaneTransform(p Vector, m Matrix) Vector {
	result := Multiply(SplatW(p), m.Row(3))
	result = MultiplyAdd(SplatZ(p), m.Row(2), result)
	result = MultiplyAdd(SplatY(p), m.Row(1), result)
	return MultiplyAdd(SplatX(p), m.Row(0), result)
}

// PlaneFromPointNormal builds the plane through point with the given
// normal. The normal is used as given.
func PlaneFromPointNormal(point, normal Vector) Vector {
	w := Negate(Vector3Dot(point, normal))
	return Select(w, normal, select1110)
}

// PlaneFromPoints builds the normalized plane through three points. The
// normal follows (p1-p2)×(p1-p3). Collinear points give a zero normal.
func PlaneFromPoints(p1, p2, p3 Vector) Vector {
	v21 := Subtract(p1, p2)
	v31 := Subtract(p1, p3)

	n := Vector3Normalize(Vector3Cross(v21, v31))
	d := Negate(PlaneDotNormal(n, p1))
	return Select(d, n, select1110)
}
