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

// Helpers shared by the 2D, 3D and 4D algebra. n is the number of leading
// lanes that take part.

func dotN(a, b Vector, n int) float32 {
	var sum float32
	for i := range n {
		sum += a.f(i) * b.f(i)
	}
	return sum
}

// allTrue reports whether the first n lanes of m are all ones.
func allTrue(m Vector, n int) bool {
	for i := range n {
		if m.u[i] != maskTrue {
			return false
		}
	}
	return true
}

// anyTrue reports whether any of the first n lanes of m is all ones.
func anyTrue(m Vector, n int) bool {
	for i := range n {
		if m.u[i] == maskTrue {
			return true
		}
	}
	return false
}

// normalizeLength divides v by sqrt(lengthSq). A zero length yields the
// zero vector. A squared length of +Inf, from an infinite lane or from
// finite lanes whose squares overflow, yields QNaN in every lane.
func normalizeLength(v, lengthSq Vector) Vector {
	length := Sqrt(lengthSq)
	nonZero := NotEqual(length, Zero())
	result := AndInt(Divide(v, length), nonZero)
	infinite := EqualInt(lengthSq, SplatInfinity())
	return Select(result, SplatQNaN(), infinite)
}

// clampLength implements the ClampLengthV family for any dimension once
// the squared length has been computed.
func clampLength(v, lengthSq, lengthMin, lengthMax Vector) Vector {
	assertf(lengthMin.X() >= 0 && lengthMax.X() >= 0, "negative clamp bound (%v, %v)", lengthMin, lengthMax)
	assertf(lengthMax.X() >= lengthMin.X(), "clamp max %v below min %v", lengthMax, lengthMin)

	rcpLength := ReciprocalSqrt(lengthSq)
	infiniteLength := EqualInt(lengthSq, SplatInfinity())
	zeroLength := Equal(lengthSq, Zero())
	normal := Multiply(v, rcpLength)
	length := Multiply(lengthSq, rcpLength)

	// Zero or infinite lengths keep lengthSq in place of the NaN-producing
	// products above.
	regular := EqualInt(infiniteLength, zeroLength)
	length = Select(lengthSq, length, regular)
	normal = Select(lengthSq, normal, regular)

	controlMax := Greater(length, lengthMax)
	controlMin := Less(length, lengthMin)
	clamped := Select(length, lengthMax, controlMax)
	clamped = Select(clamped, lengthMin, controlMin)
	result := Multiply(normal, clamped)

	// In range: return v itself rather than the renormalized vector.
	inRange := EqualInt(controlMax, controlMin)
	return Select(result, v, inRange)
}

// refract implements RefractV for any dimension given the replicated
// incident·normal dot product.
func refract(incident, normal, iDotN, refractionIndex Vector, n int) Vector {
	// r = 1 - index² * (1 - iDotN²)
	r := NegativeMultiplySubtract(iDotN, iDotN, SplatOne())
	r = Multiply(r, refractionIndex)
	r = NegativeMultiplySubtract(r, refractionIndex, SplatOne())

	if allTrue(LessOrEqual(r, Zero()), n) {
		// Total internal reflection.
		return Zero()
	}

	r = Sqrt(r)
	r = MultiplyAdd(refractionIndex, iDotN, r)
	result := Multiply(refractionIndex, incident)
	return NegativeMultiplySubtract(normal, r, result)
}
