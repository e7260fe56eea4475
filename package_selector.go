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

import "math"

// PackageSelector decides which pending package the solver should make its
// next decision for. candidates lists every package that is constrained but
// not yet assigned a version, in the order each first appeared on the
// assignment trail; remaining reports how many versions of a candidate still
// satisfy the current partial solution (useful for most-constrained-first
// strategies). The returned name must be one of candidates.
//
// Deciding a more constrained package earlier tends to surface conflicts
// sooner and reduces backtracking on wide dependency graphs, but the choice
// never changes the set of solutions the solver can reach — only the order
// it explores them in.
type PackageSelector func(candidates []Name, remaining func(Name) int) Name

// lexicalPackageSelector reproduces the solver's original behavior: decide
// packages in the order they were first seen. It is the default when no
// PackageSelector is configured.
func lexicalPackageSelector(candidates []Name, _ func(Name) int) Name {
	return candidates[0]
}

// FewestVersionsFirst is a PackageSelector that picks the pending package
// with the fewest remaining candidate versions, breaking ties by trail
// order. Packages near their last viable version are the most likely to
// cause a conflict, so deciding them early tends to shorten the search.
func FewestVersionsFirst(candidates []Name, remaining func(Name) int) Name {
	best := candidates[0]
	bestCount := math.MaxInt
	for _, name := range candidates {
		if count := remaining(name); count < bestCount {
			best = name
			bestCount = count
		}
	}
	return best
}
