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

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// checkVecNear fails the test when any lane of got differs from want by
// more than tol.
func checkVecNear(t *testing.T, name string, got, want Vector, tol float32) {
	t.Helper()
	for i := range 4 {
		g, w := got.Lane(i), want.Lane(i)
		if absDiff(float64(g), float64(w)) > float64(tol) || g != g {
			t.Errorf("%s: lane %d = %v, want %v (tol %g); got %v", name, i, g, w, tol, got)
		}
	}
}

// checkAllLanesBits fails the test unless every lane of got has the bit
// pattern want.
func checkAllLanesBits(t *testing.T, name string, got Vector, want uint32) {
	t.Helper()
	for i := range 4 {
		if u := got.UintLane(i); u != want {
			t.Errorf("%s: lane %d = %#08x, want %#08x", name, i, u, want)
		}
	}
}
