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
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ManifestSource loads package versions and dependencies from a TOML manifest
// file, the on-disk format read by cmd/pubgrub. It is the file-system flavored
// sibling of InMemorySource: same Source contract, backed by a parsed document
// instead of data built up in Go.
//
// Manifest shape:
//
//	[[package]]
//	name = "web"
//	version = "1.0.0"
//
//	  [[package.dependency]]
//	  name = "http"
//	  range = ">=2.0.0, <3.0.0"
//
// Every package/version pair in the manifest is loaded eagerly at parse time;
// there is no lazy re-read of the file during solving.
type ManifestSource struct {
	packages map[Name]map[Version][]Term
}

// manifestDocument mirrors the on-disk TOML shape for decoding.
type manifestDocument struct {
	Package []manifestPackage `toml:"package"`
}

type manifestPackage struct {
	Name       string               `toml:"name"`
	Version    string               `toml:"version"`
	Dependency []manifestDependency `toml:"dependency"`
}

type manifestDependency struct {
	Name  string `toml:"name"`
	Range string `toml:"range"`
}

// LoadManifestSource reads and parses a TOML manifest file from path.
func LoadManifestSource(path string) (*ManifestSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifestSource(data)
}

// ParseManifestSource parses TOML manifest bytes into a ManifestSource.
func ParseManifestSource(data []byte) (*ManifestSource, error) {
	var doc manifestDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	src := &ManifestSource{packages: make(map[Name]map[Version][]Term)}

	for _, pkg := range doc.Package {
		if pkg.Name == "" {
			return nil, fmt.Errorf("manifest package entry missing name")
		}
		version, err := parseManifestVersion(pkg.Version)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.Name, err)
		}

		var deps []Term
		for _, dep := range pkg.Dependency {
			if dep.Name == "" {
				return nil, fmt.Errorf("package %s: dependency entry missing name", pkg.Name)
			}
			set, err := ParseVersionRange(dep.Range)
			if err != nil {
				return nil, fmt.Errorf("package %s: dependency %s: %w", pkg.Name, dep.Name, err)
			}
			deps = append(deps, NewTerm(MakeName(dep.Name), NewVersionSetCondition(set)))
		}

		name := MakeName(pkg.Name)
		if src.packages[name] == nil {
			src.packages[name] = make(map[Version][]Term)
		}
		src.packages[name][version] = deps
	}

	return src, nil
}

func parseManifestVersion(raw string) (Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing version")
	}
	if sv, err := ParseSemanticVersion(raw); err == nil {
		return sv, nil
	}
	return SimpleVersion(raw), nil
}

// GetVersions returns all available versions of a package in sorted order.
func (s *ManifestSource) GetVersions(name Name) ([]Version, error) {
	versions, ok := s.packages[name]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}

	result := make([]Version, 0, len(versions))
	for v := range versions {
		result = append(result, v)
	}
	slices.SortFunc(result, func(a, b Version) int {
		return a.Sort(b)
	})
	return result, nil
}

// GetDependencies returns the dependency terms declared in the manifest for a
// specific package version.
func (s *ManifestSource) GetDependencies(name Name, version Version) ([]Term, error) {
	versions, ok := s.packages[name]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}
	deps, ok := versions[version]
	if !ok {
		return nil, &PackageVersionNotFoundError{Package: name, Version: version}
	}
	return deps, nil
}

var (
	_ Source = &ManifestSource{}
)
