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

// Vector3Equal reports whether x, y and z are equal as floats.
func Vector3Equal(a, b Vector) bool { return allTrue(Equal(a, b), 3) }

// Vector3EqualR compares x, y and z as floats.
func Vector3EqualR(a, b Vector) ComparisonRecord { return recordOf(Equal(a, b), 3) }

// Vector3EqualInt reports whether the x, y and z bit patterns are equal.
func Vector3EqualInt(a, b Vector) bool { return allTrue(EqualInt(a, b), 3) }

// Vector3EqualIntR compares the x, y and z bit patterns.
func Vector3EqualIntR(a, b Vector) ComparisonRecord { return recordOf(EqualInt(a, b), 3) }

// Vector3NearEqual reports whether x, y and z differ by at most epsilon.
func Vector3NearEqual(a, b, epsilon Vector) bool { return allTrue(NearEqual(a, b, epsilon), 3) }

// Vector3NotEqual reports whether any of x, y, z differs as a float.
func Vector3NotEqual(a, b Vector) bool { return anyTrue(NotEqual(a, b), 3) }

// Vector3Greater reports whether a > b in x, y and z.
func Vector3Greater(a, b Vector) bool { return allTrue(Greater(a, b), 3) }

// Vector3GreaterR compares a > b in x, y and z.
func Vector3GreaterR(a, b Vector) ComparisonRecord { return recordOf(Greater(a, b), 3) }

// Vector3Less reports whether a < b in x, y and z.
func Vector3Less(a, b Vector) bool { return allTrue(Less(a, b), 3) }

// Vector3LessOrEqual reports whether a <= b in x, y and z.
func Vector3LessOrEqual(a, b Vector) bool { return allTrue(LessOrEqual(a, b), 3) }

// Vector3InBounds reports whether x, y and z lie within ±bounds.
func Vector3InBounds(v, bounds Vector) bool { return allTrue(InBounds(v, bounds), 3) }

// Vector3InBoundsR checks x, y and z against bounds.
func Vector3InBoundsR(v, bounds Vector) ComparisonRecord {
	return boundsRecordOf(InBounds(v, bounds), 3)
}

// Vector3IsNaN reports whether any of x, y, z is NaN.
func Vector3IsNaN(v Vector) bool { return anyTrue(IsNaN(v), 3) }

// Vector3IsInfinite reports whether any of x, y, z is ±Inf.
func Vector3IsInfinite(v Vector) bool { return anyTrue(IsInfinite(v), 3) }

// Vector3Dot returns the 3D dot product replicated into every lane.
func Vector3Dot(a, b Vector) Vector {
	return Replicate(dotN(a, b, 3))
}

// Vector3Cross returns the 3D cross product with w set to 0.
func Vector3Cross(a, b Vector) Vector {
	return Set(
		a.Y()*b.Z()-a.Z()*b.Y(),
		a.Z()*b.X()-a.X()*b.Z(),
		a.X()*b.Y()-a.Y()*b.X(),
		0,
	)
}

// Vector3LengthSq returns the squared 3D length replicated into every lane.
func Vector3LengthSq(v Vector) Vector {
	return Vector3Dot(v, v)
}

// Vector3Length returns the 3D length replicated into every lane.
func Vector3Length(v Vector) Vector {
	return Sqrt(Vector3LengthSq(v))
}

// Vector3LengthEst returns an estimate of the 3D length.
func Vector3LengthEst(v Vector) Vector {
	return SqrtEst(Vector3LengthSq(v))
}

// Vector3ReciprocalLength returns 1/length replicated into every lane.
func Vector3ReciprocalLength(v Vector) Vector {
	return ReciprocalSqrt(Vector3LengthSq(v))
}

// Vector3ReciprocalLengthEst returns an estimate of 1/length.
func Vector3ReciprocalLengthEst(v Vector) Vector {
	return ReciprocalSqrtEst(Vector3LengthSq(v))
}

// Vector3Normalize scales v by the reciprocal of its 3D length. All four
// lanes are scaled. Zero lengths and squared lengths that overflow to +Inf
// follow Vector4Normalize.
func Vector3Normalize(v Vector) Vector {
	return normalizeLength(v, Vector3LengthSq(v))
}

// Vector3NormalizeEst scales v by the estimated reciprocal 3D length.
func Vector3NormalizeEst(v Vector) Vector {
	return Multiply(v, Vector3ReciprocalLengthEst(v))
}

// Vector3ClampLength limits the 3D length of v to [lengthMin, lengthMax].
func Vector3ClampLength(v Vector, lengthMin, lengthMax float32) Vector {
	return Vector3ClampLengthV(v, Replicate(lengthMin), Replicate(lengthMax))
}

// Vector3ClampLengthV is Vector3ClampLength with replicated bound vectors.
func Vector3ClampLengthV(v, lengthMin, lengthMax Vector) Vector {
	return clampLength(v, Vector3LengthSq(v), lengthMin, lengthMax)
}

// Vector3Reflect reflects incident about normal in 3D.
func Vector3Reflect(incident, normal Vector) Vector {
	d := Vector3Dot(incident, normal)
	d = Add(d, d)
	return NegativeMultiplySubtract(d, normal, incident)
}

// Vector3Refract refracts incident through a surface in 3D. Total internal
// reflection returns the zero vector.
func Vector3Refract(incident, normal Vector, refractionIndex float32) Vector {
	return Vector3RefractV(incident, normal, Replicate(refractionIndex))
}

// Vector3RefractV is Vector3Refract with a per-lane refraction index.
func Vector3RefractV(incident, normal, refractionIndex Vector) Vector {
	return refract(incident, normal, Vector3Dot(incident, normal), refractionIndex, 3)
}

// Vector3AngleBetweenNormals returns the angle between two unit vectors.
func Vector3AngleBetweenNormals(n1, n2 Vector) Vector {
	return ACos(Clamp(Vector3Dot(n1, n2), Replicate(-1), SplatOne()))
}

// Vector3AngleBetweenVectors returns the angle between two nonzero vectors.
func Vector3AngleBetweenVectors(v1, v2 Vector) Vector {
	rcp := Multiply(Vector3ReciprocalLength(v1), Vector3ReciprocalLength(v2))
	cosAngle := Multiply(Vector3Dot(v1, v2), rcp)
	return ACos(Clamp(cosAngle, Replicate(-1), SplatOne()))
}

// Vector3TransformCoord transforms the point (x, y, z, 1) by m and divides
// the result by its w.
func Vector3TransformCoord(v Vector, m Matrix) Vector {
	result := MultiplyAdd(SplatZ(v), m.Row(2), m.Row(3))
	result = MultiplyAdd(SplatY(v), m.Row(1), result)
	result = MultiplyAdd(SplatX(v), m.Row(0), result)
	return Divide(result, SplatW(result))
}

// Vector3TransformNormal transforms the direction (x, y, z, 0) by m.
func Vector3TransformNormal(v Vector, m Matrix) Vector {
	result := Multiply(SplatZ(v), m.Row(2))
	result = MultiplyAdd(SplatY(v), m.Row(1), result)
	return MultiplyAdd(SplatX(v), m.Row(0), result)
}
