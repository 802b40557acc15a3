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

//go:build !xmdebug

package xm

// assertIndex is a no-op in release builds. Callers mask the selector so an
// out-of-range value picks an unspecified lane instead of panicking.
func assertIndex(i, n int) {}

// assertf is a no-op in release builds.
func assertf(cond bool, format string, args ...any) {}
