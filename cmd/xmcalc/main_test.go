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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-xmath/xm"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, 2,3 ,4")
	require.NoError(t, err)
	assert.Equal(t, xm.Set(1, 2, 3, 4), v)

	v, err = parseVector("2.5")
	require.NoError(t, err)
	assert.Equal(t, xm.Replicate(2.5), v)

	_, err = parseVector("1,2")
	require.Error(t, err)
	assert.ErrorIs(t, err, xm.ErrInvalidLength)
	var lerr *xm.LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Actual)

	_, err = parseVector("1,x,3,4")
	assert.Error(t, err)
}

func TestRunOperations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"normalize", "3,0,4,0"}, "(0.6, 0, 0.8, 0)\n"},
		{[]string{"dot", "1,2,3,4", "5,6,7,8"}, "(70, 70, 70, 70)\n"},
		{[]string{"reflect", "1,-1,0,0", "0,1,0,0"}, "(1, 1, 0, 0)\n"},
		{[]string{"refract", "0.8,-0.6,0,0", "0,1,0,0", "1.5"}, "(0, 0, 0, 0)\n"},
		{[]string{"translate", "1,2,3,1", "10,20,30,0"}, "(11, 22, 33, 1)\n"},
		{[]string{"plane-line", "0,0,1,0", "0,0,1,1", "0,0,5,1"}, "(0, 0, 0, 1)\n"},
		{[]string{"plane-points", "0,0,2,0", "1,0,2,0", "0,1,2,0"}, "(0, 0, 1, -2)\n"},
		{[]string{"equal", "1,2,3,4", "1,2,3,4"}, "(NaN, NaN, NaN, NaN)\nall-true\n"},
		{[]string{"-bits", "plane-line", "0,0,1,0", "0,0,1,1", "1,0,1,1"},
			"[0x7fc00000 0x7fc00000 0x7fc00000 0x7fc00000]\n"},
		{[]string{"-bits", "equal", "1,2,3,4", "1,0,3,0"},
			"[0xffffffff 0x00000000 0xffffffff 0x00000000]\nmixed\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunPlanePlane(t *testing.T) {
	out, _, err := runCLI(t, "plane-plane", "0,0,1,-2", "1,0,0,-3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	// Zero lanes may carry either sign.
	assert.True(t, strings.HasPrefix(lines[0], "(3, "), "first point %s", lines[0])
	assert.Contains(t, lines[0], ", 2, ")
}

func TestRunNoFMA(t *testing.T) {
	before := xm.HasFusedMultiplyAdd()
	out, _, err := runCLI(t, "-no-fma", "multiply-add", "1.000244140625", "1.000244140625", "-1.00048828125")
	require.NoError(t, err)
	assert.Equal(t, "(0, 0, 0, 0)\n", out)
	assert.Equal(t, before, xm.HasFusedMultiplyAdd(), "dispatch mode restored")
}

func TestRunErrors(t *testing.T) {
	_, _, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "frobnicate", "1")
	assert.ErrorContains(t, err, "unknown operation")

	_, _, err = runCLI(t, "dot", "1,2,3,4")
	assert.ErrorContains(t, err, "dot takes 2 operands (a b), got 1")

	_, _, err = runCLI(t, "normalize", "1,2,3")
	assert.ErrorIs(t, err, xm.ErrInvalidLength)
	assert.ErrorContains(t, err, "normalize operand v")
}

func TestRunVerboseLogsDispatch(t *testing.T) {
	_, stderr, err := runCLI(t, "-v", "length", "0,3,4,0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `msg="dispatch selected"`)
	assert.Contains(t, stderr, "name="+xm.CurrentName())
}

func TestList(t *testing.T) {
	out, _, err := runCLI(t, "-list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(commands))
	assert.Contains(t, out, "Plane Line: intersection of a plane")
	assert.Contains(t, out, "Clamp Length: limit the 4D length")
	assert.True(t, strings.HasPrefix(lines[0], "acos"), "sorted listing starts with acos, got %q", lines[0])
}
