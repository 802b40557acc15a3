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

// Vector4Equal reports whether all four lanes are equal as floats.
func Vector4Equal(a, b Vector) bool { return allTrue(Equal(a, b), 4) }

// Vector4EqualR compares all four lanes as floats.
func Vector4EqualR(a, b Vector) ComparisonRecord { return recordOf(Equal(a, b), 4) }

// Vector4EqualInt reports whether all four lane bit patterns are equal.
func Vector4EqualInt(a, b Vector) bool { return allTrue(EqualInt(a, b), 4) }

// Vector4EqualIntR compares all four lane bit patterns.
func Vector4EqualIntR(a, b Vector) ComparisonRecord { return recordOf(EqualInt(a, b), 4) }

// Vector4NearEqual reports whether every lane differs by at most the
// matching lane of epsilon.
func Vector4NearEqual(a, b, epsilon Vector) bool { return allTrue(NearEqual(a, b, epsilon), 4) }

// Vector4NotEqual reports whether any lane differs as a float.
func Vector4NotEqual(a, b Vector) bool { return anyTrue(NotEqual(a, b), 4) }

// Vector4NotEqualInt reports whether any lane bit pattern differs.
func Vector4NotEqualInt(a, b Vector) bool { return anyTrue(NotEqualInt(a, b), 4) }

// Vector4Greater reports whether a > b in every lane.
func Vector4Greater(a, b Vector) bool { return allTrue(Greater(a, b), 4) }

// Vector4GreaterR compares a > b in all four lanes.
func Vector4GreaterR(a, b Vector) ComparisonRecord { return recordOf(Greater(a, b), 4) }

// Vector4GreaterOrEqual reports whether a >= b in every lane.
func Vector4GreaterOrEqual(a, b Vector) bool { return allTrue(GreaterOrEqual(a, b), 4) }

// Vector4GreaterOrEqualR compares a >= b in all four lanes.
func Vector4GreaterOrEqualR(a, b Vector) ComparisonRecord {
	return recordOf(GreaterOrEqual(a, b), 4)
}

// Vector4Less reports whether a < b in every lane.
func Vector4Less(a, b Vector) bool { return allTrue(Less(a, b), 4) }

// Vector4LessOrEqual reports whether a <= b in every lane.
func Vector4LessOrEqual(a, b Vector) bool { return allTrue(LessOrEqual(a, b), 4) }

// Vector4InBounds reports whether -bounds <= v <= bounds in every lane.
func Vector4InBounds(v, bounds Vector) bool { return allTrue(InBounds(v, bounds), 4) }

// Vector4InBoundsR checks all four lanes against bounds.
func Vector4InBoundsR(v, bounds Vector) ComparisonRecord {
	return boundsRecordOf(InBounds(v, bounds), 4)
}

// Vector4IsNaN reports whether any lane is NaN.
func Vector4IsNaN(v Vector) bool { return anyTrue(IsNaN(v), 4) }

// Vector4IsInfinite reports whether any lane is ±Inf.
func Vector4IsInfinite(v Vector) bool { return anyTrue(IsInfinite(v), 4) }

// Vector4Dot returns the 4D dot product replicated into every lane.
func Vector4Dot(a, b Vector) Vector {
	return Replicate(dotN(a, b, 4))
}

// Vector4Cross returns the 4D cross product of three vectors: the vector
// orthogonal to v1, v2 and v3, expanded from the 2×2 minors of v2 and v3.
func Vector4Cross(v1, v2, v3 Vector) Vector {
	x1, y1, z1, w1 := v1.X(), v1.Y(), v1.Z(), v1.W()
	x2, y2, z2, w2 := v2.X(), v2.Y(), v2.Z(), v2.W()
	x3, y3, z3, w3 := v3.X(), v3.Y(), v3.Z(), v3.W()

	zw := z2*w3 - w2*z3
	yw := y2*w3 - w2*y3
	yz := y2*z3 - z2*y3
	xw := x2*w3 - w2*x3
	xz := x2*z3 - z2*x3
	xy := x2*y3 - y2*x3

	return Set(
		zw*y1-yw*z1+yz*w1,
		-zw*x1+xw*z1-xz*w1,
		yw*x1-xw*y1+xy*w1,
		-yz*x1+xz*y1-xy*z1,
	)
}

// Vector4LengthSq returns the squared 4D length replicated into every lane.
func Vector4LengthSq(v Vector) Vector {
	return Vector4Dot(v, v)
}

// Vector4Length returns the 4D length replicated into every lane.
func Vector4Length(v Vector) Vector {
	return Sqrt(Vector4LengthSq(v))
}

// Vector4LengthEst returns an estimate of the 4D length.
func Vector4LengthEst(v Vector) Vector {
	return SqrtEst(Vector4LengthSq(v))
}

// Vector4ReciprocalLength returns 1/length replicated into every lane.
func Vector4ReciprocalLength(v Vector) Vector {
	return ReciprocalSqrt(Vector4LengthSq(v))
}

// Vector4ReciprocalLengthEst returns an estimate of 1/length.
func Vector4ReciprocalLengthEst(v Vector) Vector {
	return ReciprocalSqrtEst(Vector4LengthSq(v))
}

// Vector4Normalize scales v to unit length.
//
// Special cases:
//   - a zero-length v returns (0, 0, 0, 0)
//   - a v whose squared length overflows to +Inf returns QNaN in every
//     lane; this covers any infinite lane and finite lanes such as 1e20
func Vector4Normalize(v Vector) Vector {
	return normalizeLength(v, Vector4LengthSq(v))
}

// Vector4NormalizeEst scales v by the estimated reciprocal length. It does
// not special-case zero or overflowing lengths.
func Vector4NormalizeEst(v Vector) Vector {
	return Multiply(v, Vector4ReciprocalLengthEst(v))
}

// Vector4ClampLength limits the 4D length of v to [lengthMin, lengthMax].
func Vector4ClampLength(v Vector, lengthMin, lengthMax float32) Vector {
	return Vector4ClampLengthV(v, Replicate(lengthMin), Replicate(lengthMax))
}

// Vector4ClampLengthV limits the 4D length of v to [lengthMin, lengthMax].
// Both bounds must be replicated, non-negative and lengthMax >= lengthMin.
// A v whose length is already in range is returned unchanged. A zero-length
// v stays zero.
func Vector4ClampLengthV(v, lengthMin, lengthMax Vector) Vector {
	return clampLength(v, Vector4LengthSq(v), lengthMin, lengthMax)
}

// Vector4Reflect reflects incident about normal:
// incident - 2*dot(incident, normal)*normal.
func Vector4Reflect(incident, normal Vector) Vector {
	d := Vector4Dot(incident, normal)
	d = Add(d, d)
	return NegativeMultiplySubtract(d, normal, incident)
}

// Vector4Refract refracts incident through a surface with the given normal
// and ratio of refraction indices. Total internal reflection returns the
// zero vector.
func Vector4Refract(incident, normal Vector, refractionIndex float32) Vector {
	return Vector4RefractV(incident, normal, Replicate(refractionIndex))
}

// Vector4RefractV is Vector4Refract with a per-lane refraction index.
func Vector4RefractV(incident, normal, refractionIndex Vector) Vector {
	return refract(incident, normal, Vector4Dot(incident, normal), refractionIndex, 4)
}

// Vector4Orthogonal returns (z, w, -x, -y), a vector orthogonal to v.
func Vector4Orthogonal(v Vector) Vector {
	return Set(v.Z(), v.W(), -v.X(), -v.Y())
}

// Vector4AngleBetweenNormals returns the angle between two unit vectors,
// replicated into every lane.
func Vector4AngleBetweenNormals(n1, n2 Vector) Vector {
	return ACos(Clamp(Vector4Dot(n1, n2), Replicate(-1), SplatOne()))
}

// Vector4AngleBetweenNormalsEst is the estimate form of
// Vector4AngleBetweenNormals.
func Vector4AngleBetweenNormalsEst(n1, n2 Vector) Vector {
	return ACosEst(Clamp(Vector4Dot(n1, n2), Replicate(-1), SplatOne()))
}

// Vector4AngleBetweenVectors returns the angle between two vectors of any
// nonzero length, replicated into every lane.
func Vector4AngleBetweenVectors(v1, v2 Vector) Vector {
	rcp := Multiply(Vector4ReciprocalLength(v1), Vector4ReciprocalLength(v2))
	cosAngle := Multiply(Vector4Dot(v1, v2), rcp)
	return ACos(Clamp(cosAngle, Replicate(-1), SplatOne()))
}

// Vector4Transform multiplies the row vector v by m:
// x*row0 + y*row1 + z*row2 + w*row3.
func Vector4Transform(v Vector, m Matrix) Vector {
	result := Multiply(SplatW(v), m.Row(3))
	result = MultiplyAdd(SplatZ(v), m.Row(2), result)
	result = MultiplyAdd(SplatY(v), m.Row(1), result)
	return MultiplyAdd(SplatX(v), m.Row(0), result)
}
