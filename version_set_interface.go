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

// VersionSet is an immutable set of versions with the algebra the solver
// needs to narrow, widen, and compare constraints: union, intersection,
// complement, and subset/disjoint tests. Every operation returns a new
// VersionSet rather than mutating the receiver.
//
// VersionIntervalSet, backed by a sorted slice of rangeSpans, is the only
// implementation this package provides, but custom Version types can pair
// with a custom VersionSet as long as it satisfies this interface.
//
//	set1, _ := ParseVersionRange(">=1.0.0, <2.0.0")
//	set2, _ := ParseVersionRange(">=1.5.0, <3.0.0")
//	union := set1.Union(set2)               // >=1.0.0, <3.0.0
//	intersection := set1.Intersection(set2) // >=1.5.0, <2.0.0
//	complement := set1.Complement()         // <1.0.0 || >=2.0.0
type VersionSet interface {
	Empty() VersionSet
	Full() VersionSet
	Singleton(version Version) VersionSet

	Union(other VersionSet) VersionSet
	Intersection(other VersionSet) VersionSet
	Complement() VersionSet

	Contains(version Version) bool
	IsEmpty() bool
	IsSubset(other VersionSet) bool
	IsDisjoint(other VersionSet) bool

	String() string
}
