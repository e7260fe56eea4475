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

// Version is a package version. The solver is version-type agnostic: any
// type satisfying this interface can stand in for SimpleVersion or
// SemanticVersion, as long as Sort gives a total order.
type Version interface {
	String() string

	// Sort returns negative, zero, or positive as this version is less
	// than, equal to, or greater than other.
	Sort(other Version) int
}

// Condition constrains which versions of a package are acceptable. Custom
// conditions need only String and Satisfies to work as a raw constraint;
// implement VersionSetConverter as well to let the CDCL solver reason
// about the condition algebraically (union, intersection, complement).
type Condition interface {
	String() string
	Satisfies(ver Version) bool
}

// VersionSetConverter is an optional capability of a Condition: exposing
// the condition as a VersionSet lets the solver intersect, union, and
// complement it against other constraints during propagation and conflict
// resolution. VersionSetCondition implements it, and the solver converts
// EqualsCondition directly. A Condition that is neither can still be
// checked with Satisfies, but Solve returns an error when one appears in a
// dependency.
type VersionSetConverter interface {
	ToVersionSet() VersionSet
}

// Source resolves package names to their known versions and each
// version's dependencies. RootSource, InMemorySource, CombinedSource,
// CachedSource, LRUCachedSource, and ManifestSource are the built-in
// implementations; a registry-backed source
// need only satisfy these two methods.
type Source interface {
	// GetVersions returns every known version of name. Order doesn't need
	// to be sorted descending; callers that care about selection order
	// sort themselves.
	GetVersions(name Name) ([]Version, error)

	// GetDependencies returns the dependency terms declared by name at
	// version.
	GetDependencies(name Name, version Version) ([]Term, error)
}
