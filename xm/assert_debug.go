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

//go:build xmdebug

package xm

import "fmt"

// assertIndex panics when i is outside [0, n). Only built with -tags xmdebug.
func assertIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("xm: lane selector %d out of range [0, %d)", i, n))
	}
}

// assertf panics with the formatted message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("xm: " + fmt.Sprintf(format, args...))
	}
}
