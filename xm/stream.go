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
	"fmt"

	"golang.org/x/image/math/f32"
)

// Stream forms apply a transform to every element of src and write the
// results to dst. dst must hold at least len(src) elements; only the first
// len(src) are written.

// Vector4TransformStream transforms each 4D vector in src by m.
//
// Example:
//
//	out := make([]f32.Vec4, len(points))
//	if err := xm.Vector4TransformStream(out, points, m); err != nil {
//	    return err
//	}
func Vector4TransformStream(dst, src []f32.Vec4, m Matrix) error {
	if err := checkStream("Vector4TransformStream", dst, src); err != nil {
		return err
	}
	for i := range src {
		v := LoadFloat4(src[i])
		dst[i] = StoreFloat4(Vector4Transform(v, m))
	}
	return nil
}

// Vector3TransformCoordStream transforms each point in src by m, dividing
// by the resulting w.
func Vector3TransformCoordStream(dst, src []f32.Vec3, m Matrix) error {
	if err := checkStream("Vector3TransformCoordStream", dst, src); err != nil {
		return err
	}
	for i := range src {
		v := LoadFloat3(src[i])
		dst[i] = StoreFloat3(Vector3TransformCoord(v, m))
	}
	return nil
}

// PlaneTransformStream transforms each plane in src by m.
func PlaneTransformStream(dst, src []f32.Vec4, m Matrix) error {
	if err := checkStream("PlaneTransformStream", dst, src); err != nil {
		return err
	}
	for i := range src {
		p := LoadFloat4(src[i])
		dst[i] = StoreFloat4(PlaneTransform(p, m))
	}
	return nil
}

// checkStream accepts an empty src with any dst.
func checkStream[T any](name string, dst, src []T) error {
	switch {
	case len(src) == 0:
		return nil
	case dst == nil:
		return fmt.Errorf("%w: %s destination", ErrNullInput, name)
	case len(dst) < len(src):
		return &LengthError{Type: name + " destination", Expected: len(src), Actual: len(dst)}
	}
	return nil
}
