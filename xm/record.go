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

// ComparisonRecord summarizes a lane comparison.
//
// The result field (mask 0xF0) holds at most one of two bits: 0x80 when the
// predicate held in every compared lane, 0x20 when it held in none. Neither
// bit set means the lanes were mixed. Bounds checks reuse 0x20 to mean that
// every lane was in bounds.
type ComparisonRecord uint32

const (
	// CRMask selects the result field of a ComparisonRecord.
	CRMask ComparisonRecord = 0xF0
	// CRTrue is set when the predicate held in every lane.
	CRTrue ComparisonRecord = 0x80
	// CRFalse is set when the predicate held in no lane.
	CRFalse ComparisonRecord = 0x20
	// CRBounds is set when every lane was in bounds.
	CRBounds = CRFalse
)

// IsAllTrue reports whether the predicate held in every lane.
func (cr ComparisonRecord) IsAllTrue() bool { return cr&CRTrue == CRTrue }

// IsAnyTrue reports whether the predicate held in at least one lane.
func (cr ComparisonRecord) IsAnyTrue() bool { return cr&CRFalse != CRFalse }

// IsAllFalse reports whether the predicate held in no lane.
func (cr ComparisonRecord) IsAllFalse() bool { return cr&CRFalse == CRFalse }

// IsAnyFalse reports whether the predicate failed in at least one lane.
func (cr ComparisonRecord) IsAnyFalse() bool { return cr&CRTrue != CRTrue }

// IsMixed reports whether the predicate held in some lanes but not all.
func (cr ComparisonRecord) IsMixed() bool { return cr&CRMask == 0 }

// IsAllInBounds reports whether every lane of a bounds check was inside.
func (cr ComparisonRecord) IsAllInBounds() bool { return cr&CRBounds == CRBounds }

// IsAnyOutOfBounds reports whether some lane of a bounds check was outside.
func (cr ComparisonRecord) IsAnyOutOfBounds() bool { return cr&CRBounds != CRBounds }

func (cr ComparisonRecord) String() string {
	switch {
	case cr&CRMask == CRTrue:
		return "all-true"
	case cr&CRMask == CRFalse:
		return "all-false"
	case cr&CRMask == 0:
		return "mixed"
	default:
		return "invalid"
	}
}

// recordOf summarizes the first n lanes of a comparison mask.
func recordOf(m Vector, n int) ComparisonRecord {
	all, none := true, true
	for i := range n {
		if m.u[i] == maskTrue {
			none = false
		} else {
			all = false
		}
	}
	switch {
	case all:
		return CRTrue
	case none:
		return CRFalse
	default:
		return 0
	}
}

// boundsRecordOf summarizes the first n lanes of a bounds mask.
func boundsRecordOf(m Vector, n int) ComparisonRecord {
	for i := range n {
		if m.u[i] != maskTrue {
			return 0
		}
	}
	return CRBounds
}
