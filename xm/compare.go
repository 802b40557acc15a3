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

// Comparisons return lane masks: a lane is 0xFFFFFFFF where the predicate
// holds and 0 where it does not. Masks are the control input of Select.

func mask(b bool) uint32 {
	if b {
		return maskTrue
	}
	return maskFalse
}

// Equal compares lanes as floats. NaN is never equal to anything and +0
// equals -0.
func Equal(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) == b.f(i))
	}
	return r
}

// EqualInt compares lanes as raw bit patterns, so identical NaN patterns
// are equal and +0 differs from -0.
func EqualInt(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.u[i] == b.u[i])
	}
	return r
}

// NotEqual compares lanes as floats.
func NotEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) != b.f(i))
	}
	return r
}

// NotEqualInt compares lanes as raw bit patterns.
func NotEqualInt(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.u[i] != b.u[i])
	}
	return r
}

// Greater tests a > b.
func Greater(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) > b.f(i))
	}
	return r
}

// GreaterOrEqual tests a >= b.
func GreaterOrEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) >= b.f(i))
	}
	return r
}

// Less tests a < b.
func Less(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) < b.f(i))
	}
	return r
}

// LessOrEqual tests a <= b.
func LessOrEqual(a, b Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(a.f(i) <= b.f(i))
	}
	return r
}

// NearEqual tests |a - b| <= epsilon per lane.
func NearEqual(a, b, epsilon Vector) Vector {
	var r Vector
	for i := range 4 {
		d := a.f(i) - b.f(i)
		if d < 0 {
			d = -d
		}
		r.u[i] = mask(d <= epsilon.f(i))
	}
	return r
}

// InBounds tests -bounds <= v <= bounds per lane.
func InBounds(v, bounds Vector) Vector {
	var r Vector
	for i := range 4 {
		x, b := v.f(i), bounds.f(i)
		r.u[i] = mask(x <= b && x >= -b)
	}
	return r
}

// IsNaN tests for an all-ones exponent with a nonzero mantissa.
func IsNaN(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(isNaNBits(v.u[i]))
	}
	return r
}

// IsInfinite tests for an all-ones exponent with a zero mantissa, either sign.
func IsInfinite(v Vector) Vector {
	var r Vector
	for i := range 4 {
		r.u[i] = mask(isInfBits(v.u[i]))
	}
	return r
}

func isNaNBits(u uint32) bool {
	return u&bitsExponent == bitsExponent && u&bitsMantissa != 0
}

func isInfBits(u uint32) bool {
	return u&bitsAbsMask == bitsInfinity
}

// AndInt returns a & b on the raw lane patterns.
func AndInt(a, b Vector) Vector {
	return Vector{u: [4]uint32{a.u[0] & b.u[0], a.u[1] & b.u[1], a.u[2] & b.u[2], a.u[3] & b.u[3]}}
}

// AndCInt returns a &^ b on the raw lane patterns.
func AndCInt(a, b Vector) Vector {
	return Vector{u: [4]uint32{a.u[0] &^ b.u[0], a.u[1] &^ b.u[1], a.u[2] &^ b.u[2], a.u[3] &^ b.u[3]}}
}

// OrInt returns a | b on the raw lane patterns.
func OrInt(a, b Vector) Vector {
	return Vector{u: [4]uint32{a.u[0] | b.u[0], a.u[1] | b.u[1], a.u[2] | b.u[2], a.u[3] | b.u[3]}}
}

// NorInt returns ^(a | b) on the raw lane patterns.
func NorInt(a, b Vector) Vector {
	return Vector{u: [4]uint32{^(a.u[0] | b.u[0]), ^(a.u[1] | b.u[1]), ^(a.u[2] | b.u[2]), ^(a.u[3] | b.u[3])}}
}

// XorInt returns a ^ b on the raw lane patterns.
func XorInt(a, b Vector) Vector {
	return Vector{u: [4]uint32{a.u[0] ^ b.u[0], a.u[1] ^ b.u[1], a.u[2] ^ b.u[2], a.u[3] ^ b.u[3]}}
}

// EqualR is Equal over all four lanes, summarized as a ComparisonRecord.
func EqualR(a, b Vector) ComparisonRecord {
	return recordOf(Equal(a, b), 4)
}

// EqualIntR is EqualInt over all four lanes, summarized as a ComparisonRecord.
func EqualIntR(a, b Vector) ComparisonRecord {
	return recordOf(EqualInt(a, b), 4)
}

// GreaterR is Greater over all four lanes, summarized as a ComparisonRecord.
func GreaterR(a, b Vector) ComparisonRecord {
	return recordOf(Greater(a, b), 4)
}

// GreaterOrEqualR is GreaterOrEqual over all four lanes, summarized as a
// ComparisonRecord.
func GreaterOrEqualR(a, b Vector) ComparisonRecord {
	return recordOf(GreaterOrEqual(a, b), 4)
}

// InBoundsR is InBounds over all four lanes. The record only carries the
// bounds bit: IsAllInBounds reports whether every lane is inside.
func InBoundsR(v, bounds Vector) ComparisonRecord {
	return boundsRecordOf(InBounds(v, bounds), 4)
}
