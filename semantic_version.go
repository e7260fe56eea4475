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

	"github.com/Masterminds/semver/v3"
)

// SemanticVersion represents a semantic version (major.minor.patch[-prerelease][+build]).
// Parsing and ordering are delegated to Masterminds/semver rather than hand-rolled,
// so precedence (including prerelease and numeric-vs-alphanumeric identifier rules)
// matches the semver specification exactly.
type SemanticVersion struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string

	underlying *semver.Version
}

// ParseSemanticVersion parses a semantic version string.
// Supports formats like: "1.2.3", "1.2.3-alpha", "1.2.3-alpha.1", "1.2.3+build", "1.2.3-alpha+build"
func ParseSemanticVersion(s string) (*SemanticVersion, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version format: %s: %w", s, err)
	}

	return &SemanticVersion{
		Major:      int(v.Major()),
		Minor:      int(v.Minor()),
		Patch:      int(v.Patch()),
		Prerelease: v.Prerelease(),
		Build:      v.Metadata(),
		underlying: v,
	}, nil
}

// String returns the string representation of the semantic version.
func (sv *SemanticVersion) String() string {
	if sv.underlying != nil {
		return sv.underlying.String()
	}

	s := fmt.Sprintf("%d.%d.%d", sv.Major, sv.Minor, sv.Patch)
	if sv.Prerelease != "" {
		s += "-" + sv.Prerelease
	}
	if sv.Build != "" {
		s += "+" + sv.Build
	}
	return s
}

// Sort implements Version.Sort by delegating to Masterminds/semver's precedence
// rules: major.minor.patch compared numerically, prerelease versions ordered
// lower than the corresponding release, build metadata ignored.
func (sv *SemanticVersion) Sort(other Version) int {
	otherSV, ok := other.(*SemanticVersion)
	if !ok {
		return strings.Compare(sv.String(), other.String())
	}

	if sv.underlying != nil && otherSV.underlying != nil {
		return sv.underlying.Compare(otherSV.underlying)
	}

	// Constructed without going through ParseSemanticVersion (e.g. via
	// NewSemanticVersion); fall back to reparsing our own rendering.
	self, err1 := ParseSemanticVersion(sv.String())
	other2, err2 := ParseSemanticVersion(otherSV.String())
	if err1 != nil || err2 != nil {
		return strings.Compare(sv.String(), otherSV.String())
	}
	return self.underlying.Compare(other2.underlying)
}

// NewSemanticVersion creates a new SemanticVersion with the given major, minor, and patch versions.
func NewSemanticVersion(major, minor, patch int) *SemanticVersion {
	sv, err := ParseSemanticVersion(fmt.Sprintf("%d.%d.%d", major, minor, patch))
	if err != nil {
		// major/minor/patch are plain non-negative ints; this composition
		// always yields a parseable version.
		return &SemanticVersion{Major: major, Minor: minor, Patch: patch}
	}
	return sv
}

// NewSemanticVersionWithPrerelease creates a new SemanticVersion with prerelease info.
func NewSemanticVersionWithPrerelease(major, minor, patch int, prerelease string) *SemanticVersion {
	s := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if prerelease != "" {
		s += "-" + prerelease
	}
	sv, err := ParseSemanticVersion(s)
	if err != nil {
		return &SemanticVersion{Major: major, Minor: minor, Patch: patch, Prerelease: prerelease}
	}
	return sv
}

// Verify interface compliance
var (
	_ Version = (*SemanticVersion)(nil)
)
