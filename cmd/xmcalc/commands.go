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

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ajroetker/go-xmath/xm"
)

// command evaluates one xm operation. Every argument is parsed as a
// Vector before fn runs.
type command struct {
	args  []string
	about string
	fn    func(v []xm.Vector) []xm.Vector
}

func one(v xm.Vector) []xm.Vector { return []xm.Vector{v} }

var commands = map[string]command{
	"add": {
		args:  []string{"a", "b"},
		about: "lane-wise sum",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Add(v[0], v[1])) },
	},
	"multiply-add": {
		args:  []string{"a", "b", "c"},
		about: "a*b + c on the active multiply-add path",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.MultiplyAdd(v[0], v[1], v[2])) },
	},
	"dot": {
		args:  []string{"a", "b"},
		about: "4D dot product",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4Dot(v[0], v[1])) },
	},
	"cross3": {
		args:  []string{"a", "b"},
		about: "3D cross product",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector3Cross(v[0], v[1])) },
	},
	"cross4": {
		args:  []string{"a", "b", "c"},
		about: "4D cross product of three vectors",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4Cross(v[0], v[1], v[2])) },
	},
	"length": {
		args:  []string{"v"},
		about: "4D length",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4Length(v[0])) },
	},
	"normalize": {
		args:  []string{"v"},
		about: "scale to unit 4D length",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4Normalize(v[0])) },
	},
	"normalize3": {
		args:  []string{"v"},
		about: "scale to unit 3D length",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector3Normalize(v[0])) },
	},
	"clamp-length": {
		args:  []string{"v", "min", "max"},
		about: "limit the 4D length to [min, max]",
		fn: func(v []xm.Vector) []xm.Vector {
			return one(xm.Vector4ClampLengthV(v[0], v[1], v[2]))
		},
	},
	"reflect": {
		args:  []string{"incident", "normal"},
		about: "reflect incident about normal",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4Reflect(v[0], v[1])) },
	},
	"refract": {
		args:  []string{"incident", "normal", "index"},
		about: "refract incident through normal; zero on total internal reflection",
		fn: func(v []xm.Vector) []xm.Vector {
			return one(xm.Vector4RefractV(v[0], v[1], v[2]))
		},
	},
	"angle": {
		args:  []string{"a", "b"},
		about: "angle between two 4D vectors in radians",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Vector4AngleBetweenVectors(v[0], v[1])) },
	},
	"equal": {
		args:  []string{"a", "b"},
		about: "lane-wise equality mask",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Equal(v[0], v[1])) },
	},
	"sin": {
		args:  []string{"v"},
		about: "lane-wise sine",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Sin(v[0])) },
	},
	"cos": {
		args:  []string{"v"},
		about: "lane-wise cosine",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.Cos(v[0])) },
	},
	"asin": {
		args:  []string{"v"},
		about: "lane-wise arcsine",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.ASin(v[0])) },
	},
	"acos": {
		args:  []string{"v"},
		about: "lane-wise arccosine",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.ACos(v[0])) },
	},
	"translate": {
		args:  []string{"v", "offset"},
		about: "transform v by the translation matrix of offset",
		fn: func(v []xm.Vector) []xm.Vector {
			m := xm.MatrixTranslation(v[1].X(), v[1].Y(), v[1].Z())
			return one(xm.Vector4Transform(v[0], m))
		},
	},
	"rotate-z": {
		args:  []string{"v", "angle"},
		about: "rotate v about the z axis",
		fn: func(v []xm.Vector) []xm.Vector {
			return one(xm.Vector4Transform(v[0], xm.MatrixRotationZ(v[1].X())))
		},
	},
	"plane-points": {
		args:  []string{"p1", "p2", "p3"},
		about: "normalized plane through three points",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.PlaneFromPoints(v[0], v[1], v[2])) },
	},
	"plane-normalize": {
		args:  []string{"plane"},
		about: "scale a plane to a unit normal",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.PlaneNormalize(v[0])) },
	},
	"plane-line": {
		args:  []string{"plane", "p1", "p2"},
		about: "intersection of a plane and the line through p1 and p2",
		fn:    func(v []xm.Vector) []xm.Vector { return one(xm.PlaneIntersectLine(v[0], v[1], v[2])) },
	},
	"plane-plane": {
		args:  []string{"plane1", "plane2"},
		about: "two points on the line where two planes meet",
		fn: func(v []xm.Vector) []xm.Vector {
			a, b := xm.PlaneIntersectPlane(v[0], v[1])
			return []xm.Vector{a, b}
		},
	},
}

// recordCommands report a ComparisonRecord for their mask result.
var recordCommands = map[string]func(a, b xm.Vector) xm.ComparisonRecord{
	"equal": xm.EqualR,
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseVector accepts a single number, replicated into every lane, or
// exactly four comma-separated lanes.
func parseVector(s string) (xm.Vector, error) {
	fields := strings.Split(s, ",")
	vals := make([]float32, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return xm.Vector{}, fmt.Errorf("parse %q: %w", s, err)
		}
		vals = append(vals, float32(x))
	}
	if len(vals) == 1 {
		return xm.Replicate(vals[0]), nil
	}
	v, err := xm.VectorFromSlice(vals)
	if err != nil {
		return xm.Vector{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}

func formatVector(v xm.Vector, bits bool) string {
	if !bits {
		return v.String()
	}
	b := v.Bits()
	return fmt.Sprintf("[%#08x %#08x %#08x %#08x]", b[0], b[1], b[2], b[3])
}
