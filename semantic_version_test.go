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

package pubgrub_test

import (
	"testing"

	"github.com/contriboss/pubgrub-go"
)

// rangeContainsCase is the shared table shape for "does this range contain
// this version" assertions across several of the tests below.
type rangeContainsCase struct {
	name     string
	rangeStr string
	version  string
	want     bool
}

func assertRangeContains(t *testing.T, cases []rangeContainsCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := pubgrub.ParseVersionRange(tc.rangeStr)
			if err != nil {
				t.Fatalf("ParseVersionRange(%q): %v", tc.rangeStr, err)
			}
			version, err := pubgrub.ParseSemanticVersion(tc.version)
			if err != nil {
				t.Fatalf("ParseSemanticVersion(%q): %v", tc.version, err)
			}
			if got := set.Contains(version); got != tc.want {
				t.Errorf("range %q contains %q = %v, want %v", tc.rangeStr, tc.version, got, tc.want)
			}
		})
	}
}

func TestSemanticVersionParsing(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{"1.2.3", false},
		{"1.2.3-alpha", false},
		{"1.2.3-alpha.1", false},
		{"1.2.3+build.123", false},
		{"1.2.3-alpha+build", false},
		{"2.0.0", false},
		{"0.1.0", false},
		{"invalid", true},
		{"1.2.3.4", true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := pubgrub.ParseSemanticVersion(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseSemanticVersion(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestSemanticVersionComparison(t *testing.T) {
	cases := []struct {
		name     string
		v1, v2   string
		expected int
	}{
		{"equal", "1.0.0", "1.0.0", 0},
		{"major less", "1.0.0", "2.0.0", -1},
		{"major greater", "2.0.0", "1.0.0", 1},
		{"patch less", "1.2.3", "1.2.4", -1},
		{"patch greater", "1.2.4", "1.2.3", 1},
		{"minor less", "1.2.0", "1.3.0", -1},
		{"minor greater", "1.3.0", "1.2.0", 1},
		{"release beats prerelease", "1.0.0", "1.0.0-alpha", 1},
		{"prerelease trails release", "1.0.0-alpha", "1.0.0", -1},
		{"alpha before beta", "1.0.0-alpha", "1.0.0-beta", -1},
		{"beta after alpha", "1.0.0-beta", "1.0.0-alpha", 1},
		{"numeric prerelease identifiers", "1.0.0-alpha.1", "1.0.0-alpha.2", -1},
		{"bare numeric prerelease", "1.0.0-1", "1.0.0-2", -1},
		{"shorter prerelease sorts first", "1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"build metadata ignored", "1.0.0+build1", "1.0.0+build2", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v1, err := pubgrub.ParseSemanticVersion(tc.v1)
			if err != nil {
				t.Fatalf("parse v1 %q: %v", tc.v1, err)
			}
			v2, err := pubgrub.ParseSemanticVersion(tc.v2)
			if err != nil {
				t.Fatalf("parse v2 %q: %v", tc.v2, err)
			}

			result := v1.Sort(v2)
			sign := 0
			switch {
			case result < 0:
				sign = -1
			case result > 0:
				sign = 1
			}
			if sign != tc.expected {
				t.Errorf("Sort(%q, %q) = %d, want sign %d", tc.v1, tc.v2, result, tc.expected)
			}
		})
	}
}

func TestRangeOperatorContains(t *testing.T) {
	assertRangeContains(t, []rangeContainsCase{
		{">= at bound", ">=1.0.0", "1.0.0", true},
		{">= above bound", ">=1.0.0", "1.5.0", true},
		{">= below bound", ">=1.0.0", "0.9.0", false},
		{"> at bound excluded", ">1.0.0", "1.0.0", false},
		{"> above bound", ">1.0.0", "1.0.1", true},
		{"> below bound", ">1.0.0", "0.9.0", false},
		{"<= at bound", "<=2.0.0", "2.0.0", true},
		{"<= below bound", "<=2.0.0", "1.5.0", true},
		{"<= above bound", "<=2.0.0", "2.1.0", false},
		{"< at bound excluded", "<2.0.0", "2.0.0", false},
		{"< below bound", "<2.0.0", "1.9.0", true},
		{"< above bound", "<2.0.0", "2.1.0", false},
		{"== match", "==1.5.0", "1.5.0", true},
		{"== mismatch", "==1.5.0", "1.5.1", false},
		{"!= match excluded", "!=1.5.0", "1.5.0", false},
		{"!= mismatch included", "!=1.5.0", "1.5.1", true},
	})
}

func TestConjunctionRangeContains(t *testing.T) {
	assertRangeContains(t, []rangeContainsCase{
		{"inside band", ">=1.0.0, <2.0.0", "1.5.0", true},
		{"below band", ">=1.0.0, <2.0.0", "0.9.0", false},
		{"at exclusive upper", ">=1.0.0, <2.0.0", "2.0.0", false},
	})

	t.Run("empty range set contains nothing", func(t *testing.T) {
		version, _ := pubgrub.ParseSemanticVersion("1.0.0")
		if pubgrub.EmptyVersionSet().Contains(version) {
			t.Error("empty set should not contain 1.0.0")
		}
	})
}

func TestUnionRangeContains(t *testing.T) {
	assertRangeContains(t, []rangeContainsCase{
		{"inside first span", ">=1.0.0, <2.0.0 || >=3.0.0", "1.5.0", true},
		{"inside second span", ">=1.0.0, <2.0.0 || >=3.0.0", "3.5.0", true},
		{"in the gap", ">=1.0.0, <2.0.0 || >=3.0.0", "2.5.0", false},
		{"wildcard matches anything", "*", "1.0.0", true},
	})
}

func TestVersionSetAlgebra(t *testing.T) {
	t.Run("Union", func(t *testing.T) {
		lower, _ := pubgrub.ParseVersionRange(">=1.0.0, <2.0.0")
		upper, _ := pubgrub.ParseVersionRange(">=1.5.0, <3.0.0")
		union := lower.Union(upper)

		inLower, _ := pubgrub.ParseSemanticVersion("1.2.0")
		inUpper, _ := pubgrub.ParseSemanticVersion("2.5.0")
		if !union.Contains(inLower) {
			t.Error("union should contain 1.2.0")
		}
		if !union.Contains(inUpper) {
			t.Error("union should contain 2.5.0")
		}
	})

	t.Run("Intersection", func(t *testing.T) {
		lower, _ := pubgrub.ParseVersionRange(">=1.0.0, <3.0.0")
		upper, _ := pubgrub.ParseVersionRange(">=2.0.0, <4.0.0")
		intersection := lower.Intersection(upper)

		below, _ := pubgrub.ParseSemanticVersion("1.5.0")
		inside, _ := pubgrub.ParseSemanticVersion("2.5.0")
		above, _ := pubgrub.ParseSemanticVersion("3.5.0")
		if intersection.Contains(below) {
			t.Error("intersection should not contain 1.5.0")
		}
		if !intersection.Contains(inside) {
			t.Error("intersection should contain 2.5.0")
		}
		if intersection.Contains(above) {
			t.Error("intersection should not contain 3.5.0")
		}
	})

	t.Run("Complement", func(t *testing.T) {
		band, _ := pubgrub.ParseVersionRange(">=1.0.0, <2.0.0")
		outside := band.Complement()

		below, _ := pubgrub.ParseSemanticVersion("0.5.0")
		inside, _ := pubgrub.ParseSemanticVersion("1.5.0")
		above, _ := pubgrub.ParseSemanticVersion("2.5.0")
		if !outside.Contains(below) {
			t.Error("complement should contain 0.5.0")
		}
		if outside.Contains(inside) {
			t.Error("complement should not contain 1.5.0")
		}
		if !outside.Contains(above) {
			t.Error("complement should contain 2.5.0")
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		if !pubgrub.EmptyVersionSet().IsEmpty() {
			t.Error("EmptyVersionSet should be empty")
		}
		nonEmpty, _ := pubgrub.ParseVersionRange(">=1.0.0")
		if nonEmpty.IsEmpty() {
			t.Error("non-empty version set should not be empty")
		}
	})
}

func TestParseVersionRangeShapes(t *testing.T) {
	assertRangeContains(t, []rangeContainsCase{
		{"single bound match", ">=1.0.0", "1.0.0", true},
		{"single bound miss", ">=1.0.0", "0.9.9", false},
		{"band match", ">=1.0.0, <2.0.0", "1.5.0", true},
		{"band exclusive upper", ">=1.0.0, <2.0.0", "2.0.0", false},
		{"union first span", ">=1.0.0, <2.0.0 || >=3.0.0", "1.5.0", true},
		{"union second span", ">=1.0.0, <2.0.0 || >=3.0.0", "3.5.0", true},
		{"union gap", ">=1.0.0, <2.0.0 || >=3.0.0", "2.5.0", false},
		{"wildcard low", "*", "1.0.0", true},
		{"wildcard high", "*", "999.0.0", true},
		{"exact match", "==1.5.0", "1.5.0", true},
		{"exact mismatch", "==1.5.0", "1.5.1", false},
		{"mixed inclusivity inside", ">1.0.0, <=2.0.0", "1.5.0", true},
		{"mixed inclusivity lower excluded", ">1.0.0, <=2.0.0", "1.0.0", false},
		{"mixed inclusivity upper included", ">1.0.0, <=2.0.0", "2.0.0", true},
	})
}

func TestSemanticVersionEdgeCases(t *testing.T) {
	t.Run("prerelease sorts below its release", func(t *testing.T) {
		band, _ := pubgrub.ParseVersionRange(">=1.0.0, <2.0.0")
		prerelease, _ := pubgrub.ParseSemanticVersion("1.0.0-alpha")
		release, _ := pubgrub.ParseSemanticVersion("1.5.0")

		if band.Contains(prerelease) {
			t.Error("1.0.0-alpha is < 1.0.0 and should not satisfy >=1.0.0")
		}
		if !band.Contains(release) {
			t.Error("1.5.0 should satisfy >=1.0.0, <2.0.0")
		}
	})

	t.Run("zero version round-trips", func(t *testing.T) {
		v, err := pubgrub.ParseSemanticVersion("0.0.0")
		if err != nil {
			t.Fatalf("parse 0.0.0: %v", err)
		}
		if v.String() != "0.0.0" {
			t.Errorf("expected 0.0.0, got %s", v.String())
		}
	})

	t.Run("large version components round-trip", func(t *testing.T) {
		v, err := pubgrub.ParseSemanticVersion("999.999.999")
		if err != nil {
			t.Fatalf("parse large version: %v", err)
		}
		if v.String() != "999.999.999" {
			t.Errorf("expected 999.999.999, got %s", v.String())
		}
	})
}
