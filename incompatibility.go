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
	"strings"
)

// IncompatibilityKind records why an Incompatibility exists, which in turn
// decides how String() renders it and whether it has Cause1/Cause2 parents
// in the derivation DAG.
type IncompatibilityKind int

const (
	// KindNoVersions: the term's package has no version satisfying it.
	KindNoVersions IncompatibilityKind = iota
	// KindFromDependency: Package@Version requires the negation of one of Terms.
	KindFromDependency
	// KindConflict: derived by resolving two other incompatibilities against each other.
	KindConflict
)

// Incompatibility is a disjunction over Terms: at least one of them must be
// false in any valid solution. The solver derives new incompatibilities by
// resolving existing ones against the current partial assignment; Cause1 and
// Cause2 record that derivation so NoSolutionError can explain a failure.
type Incompatibility struct {
	Terms   []Term
	Kind    IncompatibilityKind
	Cause1  *Incompatibility
	Cause2  *Incompatibility
	Package Name
	Version Version
}

// NewIncompatibilityNoVersions builds the single-term incompatibility asserting
// that term's package has no candidate version, so term itself is forbidden.
func NewIncompatibilityNoVersions(term Term) *Incompatibility {
	return &Incompatibility{
		Terms: []Term{term},
		Kind:  KindNoVersions,
	}
}

// NewIncompatibilityFromDependency encodes "pkg@ver requires dependency" as
// the two-term incompatibility {pkg==ver, not dependency}: both terms can't
// hold at once unless the dependency is also satisfied.
func NewIncompatibilityFromDependency(pkg Name, ver Version, dependency Term) *Incompatibility {
	selected := NewTerm(pkg, EqualsCondition{Version: ver})
	return &Incompatibility{
		Terms:   []Term{selected, dependency.Negate()},
		Kind:    KindFromDependency,
		Package: pkg,
		Version: ver,
	}
}

// NewIncompatibilityConflict merges terms learned while resolving cause1
// against cause2 into a new derived incompatibility, keeping only the first
// occurrence of each package name.
func NewIncompatibilityConflict(terms []Term, cause1, cause2 *Incompatibility) *Incompatibility {
	return &Incompatibility{
		Terms:  dedupeByName(terms),
		Kind:   KindConflict,
		Cause1: cause1,
		Cause2: cause2,
	}
}

func dedupeByName(terms []Term) []Term {
	seen := make(map[Name]struct{}, len(terms))
	out := make([]Term, 0, len(terms))
	for _, term := range terms {
		if _, exists := seen[term.Name]; exists {
			continue
		}
		seen[term.Name] = struct{}{}
		out = append(out, term)
	}
	return out
}

// String renders the incompatibility the way PubGrub error reports do:
// a single term prints as a prohibition, a dependency pair prints as "X
// depends on Y", and anything else prints as a conjunction of terms that
// cannot all hold.
func (inc *Incompatibility) String() string {
	switch {
	case len(inc.Terms) == 0:
		return "version solving failed"
	case len(inc.Terms) == 1:
		return fmt.Sprintf("%s is forbidden", inc.Terms[0])
	case inc.Kind == KindFromDependency && len(inc.Terms) == 2:
		return inc.dependencyString()
	default:
		return inc.conjunctionString()
	}
}

func (inc *Incompatibility) dependencyString() string {
	dep := inc.Terms[1]
	for _, term := range inc.Terms {
		if term.Name != inc.Package {
			dep = term
			break
		}
	}
	if !dep.Positive {
		dep = dep.Negate()
	}
	return fmt.Sprintf("%s %s depends on %s", inc.Package.Value(), inc.Version, dep)
}

func (inc *Incompatibility) conjunctionString() string {
	parts := make([]string, len(inc.Terms))
	for i, term := range inc.Terms {
		parts[i] = term.String()
	}
	return fmt.Sprintf("%s are incompatible", strings.Join(parts, " and "))
}
