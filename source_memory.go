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

// InMemorySource holds package versions and dependencies entirely in
// memory, with no I/O. It is the source used for tests and small example
// dependency graphs; wrap it (or any other Source) in CachedSource if the
// underlying lookups are ever expensive.
//
//	source := &InMemorySource{}
//	source.AddPackage(MakeName("lodash"), SimpleVersion("1.0.0"), []Term{
//	    NewTerm(MakeName("core-js"), EqualsCondition{Version: SimpleVersion("2.0.0")}),
//	})
//	source.AddPackage(MakeName("core-js"), SimpleVersion("2.0.0"), nil)
type InMemorySource struct {
	Packages map[Name]map[Version][]Term
}

func (s *InMemorySource) GetVersions(name Name) ([]Version, error) {
	byVersion, ok := s.Packages[name]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}

	versions := make([]Version, 0, len(byVersion))
	for v := range byVersion {
		versions = append(versions, v)
	}
	return sortVersions(versions), nil
}

func (s *InMemorySource) GetDependencies(name Name, version Version) ([]Term, error) {
	byVersion, ok := s.Packages[name]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}

	deps, ok := byVersion[version]
	if !ok {
		return nil, &PackageVersionNotFoundError{Package: name, Version: version}
	}
	return deps, nil
}

// AddPackage records a package version and its dependencies, initializing
// the underlying map on first use.
func (s *InMemorySource) AddPackage(name Name, version Version, deps []Term) {
	if s.Packages == nil {
		s.Packages = make(map[Name]map[Version][]Term)
	}
	if s.Packages[name] == nil {
		s.Packages[name] = make(map[Version][]Term)
	}
	s.Packages[name][version] = deps
}

var _ Source = &InMemorySource{}
