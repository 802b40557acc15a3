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

// Package poly evaluates the fixed-coefficient polynomials behind the
// scalar approximations in package xm.
package poly

// Horner evaluates a polynomial using Horner's method.
// Given coefficients [c0, c1, c2, ..., cn], computes:
//
//	p(x) = c0 + x*(c1 + x*(c2 + ... + x*cn))
//
// Every product is rounded to float32 before the add, so results are the
// same on targets that would otherwise fuse the multiply-add.
//
// Example:
//
//	coeffs := []float32{1.0, 2.0, 3.0}  // represents 1 + 2x + 3x²
//	result := Horner(x, coeffs)
func Horner(x float32, coeffs []float32) float32 {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = float32(result*x) + coeffs[i]
	}
	return result
}

// Horner3 evaluates a degree-3 polynomial. Coefficients are in ascending
// order.
func Horner3(x, c0, c1, c2, c3 float32) float32 {
	result := c3
	result = float32(result*x) + c2
	result = float32(result*x) + c1
	result = float32(result*x) + c0
	return result
}

// Horner5 evaluates a degree-5 polynomial. Coefficients are in ascending
// order.
func Horner5(x, c0, c1, c2, c3, c4, c5 float32) float32 {
	result := c5
	result = float32(result*x) + c4
	result = float32(result*x) + c3
	result = float32(result*x) + c2
	result = float32(result*x) + c1
	result = float32(result*x) + c0
	return result
}

// Horner7 evaluates a degree-7 polynomial. Coefficients are in ascending
// order.
func Horner7(x, c0, c1, c2, c3, c4, c5, c6, c7 float32) float32 {
	result := c7
	result = float32(result*x) + c6
	result = float32(result*x) + c5
	result = float32(result*x) + c4
	result = float32(result*x) + c3
	result = float32(result*x) + c2
	result = float32(result*x) + c1
	result = float32(result*x) + c0
	return result
}
