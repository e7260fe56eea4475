// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
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

package pubgrub

import "strings"

// SimpleVersion orders versions by plain string comparison. It exists for
// sources that don't carry semver-shaped version strings (hashes, dates
// formatted as sortable strings, arbitrary tags) where SemanticVersion
// would reject the input outright.
//
//	v1, v2 := SimpleVersion("1.0.0"), SimpleVersion("2.0.0")
//	v1.Sort(v2) < 0 // true
type SimpleVersion string

// Sort returns negative, zero, or positive as v is less than, equal to, or
// greater than other, using lexicographic string comparison.
func (v SimpleVersion) Sort(other Version) int {
	return strings.Compare(string(v), other.String())
}

func (v SimpleVersion) String() string {
	return string(v)
}

var _ Version = SimpleVersion("")
