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

// Angle constants, rounded to float32.
const (
	Pi          float32 = 3.141592654
	TwoPi       float32 = 6.283185307
	OneDivPi    float32 = 0.318309886
	OneDivTwoPi float32 = 0.159154943
	PiDiv2      float32 = 1.570796327
	PiDiv4      float32 = 0.785398163
)

// Epsilon is the float32 machine epsilon (2^-23), the tolerance used by the
// degenerate-case checks in plane intersection.
const Epsilon float32 = 1.192092896e-7

// Lane bit patterns.
const (
	bitsOne      uint32 = 0x3F800000
	bitsInfinity uint32 = 0x7F800000
	bitsQNaN     uint32 = 0x7FC00000
	bitsEpsilon  uint32 = 0x34000000
	bitsSignMask uint32 = 0x80000000
	bitsAbsMask  uint32 = 0x7FFFFFFF
	bitsExponent uint32 = 0x7F800000
	bitsMantissa uint32 = 0x007FFFFF

	maskTrue  uint32 = 0xFFFFFFFF
	maskFalse uint32 = 0x00000000
)

// QNaNBits is the quiet NaN sentinel pattern written into every lane of a
// failed intersection.
const QNaNBits uint32 = bitsQNaN

// Cody-Waite splits of 2π and π. The high parts carry few enough mantissa
// bits that q*hi is exact for the quotients reached by range reduction.
const (
	twoPiHi float32 = 6.28125
	twoPiLo float32 = 1.9353071795864769e-3
	piHi    float32 = 3.140625
	piLo    float32 = 9.676535897932384e-4
)
