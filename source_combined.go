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
	"errors"
	"slices"
)

// CombinedSource tries several sources in order and merges their answers,
// useful for layering a local override source over a remote registry or
// mixing several package source types in one solve.
//
//	local := &InMemorySource{}
//	remote := NewCachedSource(registry) // registry: any network-backed Source
//	combined := CombinedSource{local, remote}
//	solver := NewSolver(root, combined)
type CombinedSource []Source

// sortVersions orders a version slice ascending; both CombinedSource and
// InMemorySource need this since map iteration and concatenation leave
// their results unordered.
func sortVersions(versions []Version) []Version {
	slices.SortFunc(versions, func(a, b Version) int { return a.Sort(b) })
	return versions
}

// GetVersions merges every source's versions for name. A source reporting
// PackageNotFoundError is skipped rather than treated as a hard failure,
// since the union only fails if no source has the package at all.
func (s CombinedSource) GetVersions(name Name) ([]Version, error) {
	var merged []Version
	for _, source := range s {
		versions, err := source.GetVersions(name)
		var notFound *PackageNotFoundError
		switch {
		case err == nil:
			merged = append(merged, versions...)
		case errors.As(err, &notFound):
			continue
		default:
			return nil, err
		}
	}

	if len(merged) == 0 {
		return nil, &PackageNotFoundError{Package: name}
	}
	return sortVersions(merged), nil
}

// GetDependencies returns the dependencies from the first source that knows
// about name@version, skipping sources that report it missing.
func (s CombinedSource) GetDependencies(name Name, version Version) ([]Term, error) {
	for _, source := range s {
		deps, err := source.GetDependencies(name, version)
		if err == nil {
			return deps, nil
		}

		var pkgErr *PackageNotFoundError
		var verErr *PackageVersionNotFoundError
		if !errors.As(err, &pkgErr) && !errors.As(err, &verErr) {
			return nil, err
		}
	}

	return nil, &PackageVersionNotFoundError{Package: name, Version: version}
}

var _ Source = CombinedSource{}
