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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestVector4TransformStream(t *testing.T) {
	m := MatrixTranslation(1, 2, 3)
	src := []f32.Vec4{{0, 0, 0, 1}, {1, 1, 1, 0}, {-1, 0, 2, 1}}
	dst := make([]f32.Vec4, len(src)+1)
	dst[len(src)] = f32.Vec4{9, 9, 9, 9}

	require.NoError(t, Vector4TransformStream(dst, src, m))
	assert.Equal(t, []f32.Vec4{{1, 2, 3, 1}, {1, 1, 1, 0}, {0, 2, 5, 1}, {9, 9, 9, 9}}, dst)
}

func TestVector3TransformCoordStream(t *testing.T) {
	m := MatrixMultiply(MatrixScaling(2, 2, 2), MatrixTranslation(0, 0, 1))
	src := []f32.Vec3{{1, 2, 3}, {0, 0, 0}}
	dst := make([]f32.Vec3, len(src))

	require.NoError(t, Vector3TransformCoordStream(dst, src, m))
	assert.Equal(t, []f32.Vec3{{2, 4, 7}, {0, 0, 1}}, dst)
}

func TestPlaneTransformStream(t *testing.T) {
	m := MatrixTranspose(MatrixTranslation(0, 0, -5))
	src := []f32.Vec4{{0, 0, 1, 0}, {1, 0, 0, 0}}
	dst := make([]f32.Vec4, len(src))

	require.NoError(t, PlaneTransformStream(dst, src, m))
	assert.Equal(t, []f32.Vec4{{0, 0, 1, -5}, {1, 0, 0, 0}}, dst)
}

func TestStreamErrors(t *testing.T) {
	m := MatrixIdentity()
	src := []f32.Vec4{{1, 2, 3, 4}, {5, 6, 7, 8}}

	// Empty input is a no-op, even with no destination.
	assert.NoError(t, Vector4TransformStream(nil, nil, m))
	assert.NoError(t, PlaneTransformStream(nil, []f32.Vec4{}, m))

	err := Vector4TransformStream(nil, src, m)
	assert.ErrorIs(t, err, ErrNullInput)
	assert.Contains(t, err.Error(), "Vector4TransformStream destination")

	err = PlaneTransformStream(make([]f32.Vec4, 1), src, m)
	require.ErrorIs(t, err, ErrInvalidLength)
	var lerr *LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "PlaneTransformStream destination", lerr.Type)
	assert.Equal(t, 2, lerr.Expected)
	assert.Equal(t, 1, lerr.Actual)

	err = Vector3TransformCoordStream(make([]f32.Vec3, 0), []f32.Vec3{{1, 1, 1}}, m)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
