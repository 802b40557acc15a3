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
	"fmt"
)

var (
	// ErrNullInput is returned when a required source slice is nil.
	ErrNullInput = errors.New("xm: nil input")

	// ErrInvalidLength is returned when a source slice does not match the
	// arity of the value being built. Match it with errors.Is; the concrete
	// error is a *LengthError.
	ErrInvalidLength = errors.New("xm: invalid length")
)

// LengthError reports a slice whose length does not match the target
// arity.
type LengthError struct {
	Type     string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("xm: %s requires %d elements, got %d", e.Type, e.Expected, e.Actual)
}

// Unwrap returns ErrInvalidLength.
func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// checkSlice validates a constructor source of the given arity.
func checkSlice[T any](typeName string, src []T, n int) error {
	if src == nil {
		return fmt.Errorf("%w: %s source", ErrNullInput, typeName)
	}
	if len(src) != n {
		return &LengthError{Type: typeName, Expected: n, Actual: len(src)}
	}
	return nil
}
