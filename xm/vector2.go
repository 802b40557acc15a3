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

// Vector2Equal reports whether x and y are equal as floats.
func Vector2Equal(a, b Vector) bool { return allTrue(Equal(a, b), 2) }

// Vector2EqualR compares x and y as floats.
func Vector2EqualR(a, b Vector) ComparisonRecord { return recordOf(Equal(a, b), 2) }

// Vector2EqualInt reports whether the x and y bit patterns are equal.
func Vector2EqualInt(a, b Vector) bool { return allTrue(EqualInt(a, b), 2) }

// Vector2NearEqual reports whether x and y differ by at most epsilon.
func Vector2NearEqual(a, b, epsilon Vector) bool { return allTrue(NearEqual(a, b, epsilon), 2) }

// Vector2InBoundsR checks x and y against bounds.
func Vector2InBoundsR(v, bounds Vector) ComparisonRecord {
	return boundsRecordOf(InBounds(v, bounds), 2)
}

// Vector2IsNaN reports whether x or y is NaN.
func Vector2IsNaN(v Vector) bool { return anyTrue(IsNaN(v), 2) }

// Vector2Dot returns the 2D dot product replicated into every lane.
func Vector2Dot(a, b Vector) Vector {
	return Replicate(dotN(a, b, 2))
}

// Vector2Cross returns the z component of the 3D cross product of (x, y, 0)
// vectors, replicated into every lane.
func Vector2Cross(a, b Vector) Vector {
	return Replicate(a.X()*b.Y() - a.Y()*b.X())
}

// Vector2LengthSq returns the squared 2D length replicated into every lane.
func Vector2LengthSq(v Vector) Vector {
	return Vector2Dot(v, v)
}

// Vector2Length returns the 2D length replicated into every lane.
func Vector2Length(v Vector) Vector {
	return Sqrt(Vector2LengthSq(v))
}

// Vector2ReciprocalLength returns 1/length replicated into every lane.
func Vector2ReciprocalLength(v Vector) Vector {
	return ReciprocalSqrt(Vector2LengthSq(v))
}

// Vector2Normalize scales v by the reciprocal of its 2D length. Zero
// lengths and squared lengths that overflow to +Inf follow Vector4Normalize.
func Vector2Normalize(v Vector) Vector {
	return normalizeLength(v, Vector2LengthSq(v))
}

// Vector2ClampLength limits the 2D length of v to [lengthMin, lengthMax].
func Vector2ClampLength(v Vector, lengthMin, lengthMax float32) Vector {
	return clampLength(v, Vector2LengthSq(v), Replicate(lengthMin), Replicate(lengthMax))
}

// Vector2Orthogonal returns (-y, x, 0, 0).
func Vector2Orthogonal(v Vector) Vector {
	return Set(-v.Y(), v.X(), 0, 0)
}
