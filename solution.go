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

import (
	"fmt"
	"iter"
)

// NameVersion pairs a package with the version the solver chose for it.
type NameVersion struct {
	Name    Name
	Version Version
}

func (n NameVersion) String() string {
	return fmt.Sprintf("%s %s", n.Name.Value(), n.Version)
}

// Solution is the resolved package set a successful Solve returns: one
// NameVersion per package that appeared anywhere in the dependency graph.
//
//	solution, err := solver.Solve(root.Term())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for pkg := range solution.All() {
//	    fmt.Printf("%s: %s\n", pkg.Name.Value(), pkg.Version)
//	}
type Solution []NameVersion

// GetVersion looks up the version a solution assigned to name.
func (s Solution) GetVersion(name Name) (Version, bool) {
	for _, nv := range s {
		if nv.Name == name {
			return nv.Version, true
		}
	}
	return nil, false
}

// All iterates the solution's package/version pairs in resolution order.
func (s Solution) All() iter.Seq[NameVersion] {
	return func(yield func(NameVersion) bool) {
		for _, nv := range s {
			if !yield(nv) {
				return
			}
		}
	}
}
