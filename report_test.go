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
	"strings"
	"testing"
)

func eqTerm(name, version string) Term {
	return NewTerm(MakeName(name), EqualsCondition{Version: SimpleVersion(version)})
}

// abConflict builds a two-cause conflict: A depends on B at one version,
// C depends on B at another.
func abConflict(t *testing.T) *Incompatibility {
	t.Helper()
	causeA := NewIncompatibilityFromDependency(MakeName("A"), SimpleVersion("1.0.0"), eqTerm("B", "2.0.0"))
	causeC := NewIncompatibilityFromDependency(MakeName("C"), SimpleVersion("1.0.0"), eqTerm("B", "1.0.0"))
	return NewIncompatibilityConflict([]Term{}, causeA, causeC)
}

func TestIncompatibilityConstructors(t *testing.T) {
	t.Run("NoVersions", func(t *testing.T) {
		incomp := NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0"))
		if incomp.Kind != KindNoVersions {
			t.Error("expected KindNoVersions")
		}
		if len(incomp.Terms) != 1 {
			t.Errorf("expected 1 term, got %d", len(incomp.Terms))
		}
		if str := incomp.String(); !strings.Contains(str, "foo") {
			t.Errorf("expected string to contain 'foo', got: %s", str)
		}
	})

	t.Run("FromDependency", func(t *testing.T) {
		incomp := NewIncompatibilityFromDependency(MakeName("foo"), SimpleVersion("1.0.0"), eqTerm("bar", "2.0.0"))
		if incomp.Kind != KindFromDependency {
			t.Error("expected KindFromDependency")
		}
		if len(incomp.Terms) != 2 {
			t.Errorf("expected 2 terms, got %d", len(incomp.Terms))
		}
		if incomp.Package != MakeName("foo") {
			t.Errorf("expected package 'foo', got %s", incomp.Package.Value())
		}
		if str := incomp.String(); !strings.Contains(str, "foo") || !strings.Contains(str, "bar") {
			t.Errorf("expected string to contain both packages, got: %s", str)
		}
	})

	t.Run("Conflict", func(t *testing.T) {
		cause1 := NewIncompatibilityNoVersions(eqTerm("A", "1.0.0"))
		cause2 := NewIncompatibilityNoVersions(eqTerm("B", "2.0.0"))
		conflict := NewIncompatibilityConflict([]Term{}, cause1, cause2)
		if conflict.Kind != KindConflict {
			t.Error("expected KindConflict")
		}
		if conflict.Cause1 != cause1 || conflict.Cause2 != cause2 {
			t.Error("causes don't match")
		}
	})
}

func TestDefaultReporterNoVersions(t *testing.T) {
	result := (&DefaultReporter{}).Report(NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0")))
	t.Logf("output: %s", result)

	if !strings.Contains(result, "foo") {
		t.Errorf("expected output to mention 'foo', got: %s", result)
	}
	if !strings.Contains(result, "No versions") {
		t.Errorf("expected output to mention 'No versions', got: %s", result)
	}
}

func TestDefaultReporterFromDependency(t *testing.T) {
	incomp := NewIncompatibilityFromDependency(MakeName("foo"), SimpleVersion("1.0.0"), eqTerm("bar", "2.0.0"))
	result := (&DefaultReporter{}).Report(incomp)
	t.Logf("output: %s", result)

	if !strings.Contains(result, "foo") || !strings.Contains(result, "bar") {
		t.Errorf("expected output to mention both packages, got: %s", result)
	}
	if !strings.Contains(result, "depends") {
		t.Errorf("expected output to mention 'depends', got: %s", result)
	}
}

func TestDefaultReporterConflict(t *testing.T) {
	result := (&DefaultReporter{}).Report(abConflict(t))
	t.Logf("output:\n%s", result)

	if !strings.Contains(result, "Because") {
		t.Errorf("expected output to contain 'Because', got: %s", result)
	}
}

func TestCollapsedReporterNoVersions(t *testing.T) {
	result := (&CollapsedReporter{}).Report(NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0")))
	t.Logf("output: %s", result)

	if !strings.Contains(result, "foo") {
		t.Errorf("expected output to mention 'foo', got: %s", result)
	}
}

func TestCollapsedReporterConflict(t *testing.T) {
	result := (&CollapsedReporter{}).Report(abConflict(t))
	t.Logf("output:\n%s", result)

	if result == "" {
		t.Error("expected non-empty output")
	}
}

func TestNoSolutionErrorBasic(t *testing.T) {
	err := NewNoSolutionError(NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0")))
	if err.Error() == "" {
		t.Error("error message should not be empty")
	}
	if !strings.Contains(err.Error(), "foo") {
		t.Errorf("expected error to mention foo, got: %s", err.Error())
	}
}

func TestNoSolutionErrorWithReporter(t *testing.T) {
	err := NewNoSolutionError(NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0")))
	custom := err.WithReporter(&CollapsedReporter{})

	if custom.Reporter == nil {
		t.Error("custom reporter should be set")
	}
	if _, ok := custom.Reporter.(*CollapsedReporter); !ok {
		t.Error("reporter should be CollapsedReporter")
	}
}

func TestNoSolutionErrorNilIncompatibility(t *testing.T) {
	err := &NoSolutionError{Incompatibility: nil}
	if err.Error() != "no solution found" {
		t.Errorf("expected 'no solution found', got: %s", err.Error())
	}
}

func TestVersionErrorMessage(t *testing.T) {
	err := &VersionError{Package: MakeName("foo"), Message: "test error"}
	if !strings.Contains(err.Error(), "foo") {
		t.Errorf("expected error to contain package name, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "test error") {
		t.Errorf("expected error to contain message, got: %s", err.Error())
	}
}

func TestDependencyErrorUnwraps(t *testing.T) {
	inner := &VersionError{Package: MakeName("bar"), Message: "inner error"}
	err := &DependencyError{Package: MakeName("foo"), Version: SimpleVersion("1.0.0"), Err: inner}

	if !strings.Contains(err.Error(), "foo") {
		t.Errorf("expected error to contain package name, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "1.0.0") {
		t.Errorf("expected error to contain version, got: %s", err.Error())
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return inner error")
	}
}

func TestSolverIncompatibilityTracking(t *testing.T) {
	source := &InMemorySource{}
	source.AddPackage(MakeName("foo"), SimpleVersion("1.0.0"), []Term{eqTerm("bar", "2.0.0")})
	source.AddPackage(MakeName("bar"), SimpleVersion("1.0.0"), nil)
	// bar 2.0.0 is never published, forcing a conflict.

	root := NewRootSource()
	root.AddPackage(MakeName("foo"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source).EnableIncompatibilityTracking()
	_, err := solver.Solve(root.Term())
	if err == nil {
		t.Fatal("expected solving to fail")
	}

	noSolErr, ok := err.(*NoSolutionError)
	if !ok {
		t.Fatalf("expected NoSolutionError when tracking is enabled, got %T: %v", err, err)
	}
	errMsg := noSolErr.Error()
	t.Logf("error message:\n%s", errMsg)
	if !strings.Contains(errMsg, "bar") {
		t.Errorf("error should mention bar, got: %s", errMsg)
	}

	if len(solver.GetIncompatibilities()) == 0 {
		t.Error("expected incompatibilities to be tracked")
	}
	solver.ClearIncompatibilities()
	if len(solver.GetIncompatibilities()) != 0 {
		t.Error("expected incompatibilities to be cleared")
	}
}

func TestComplexConflictScenarioMentionsConflictingPackage(t *testing.T) {
	source := &InMemorySource{}
	source.AddPackage(MakeName("A"), SimpleVersion("1.0.0"), []Term{eqTerm("B", "1.0.0")})
	source.AddPackage(MakeName("B"), SimpleVersion("1.0.0"), nil)
	source.AddPackage(MakeName("B"), SimpleVersion("2.0.0"), nil)
	source.AddPackage(MakeName("C"), SimpleVersion("1.0.0"), []Term{eqTerm("B", "2.0.0")})

	root := NewRootSource()
	root.AddPackage(MakeName("A"), EqualsCondition{Version: SimpleVersion("1.0.0")})
	root.AddPackage(MakeName("C"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source).EnableIncompatibilityTracking()
	_, err := solver.Solve(root.Term())
	if err == nil {
		t.Fatal("expected solving to fail due to conflict")
	}

	errMsg := err.Error()
	t.Logf("error message:\n%s", errMsg)
	if !strings.Contains(errMsg, "no solution found for") && !strings.Contains(errMsg, "B") {
		t.Errorf("expected error to mention B (the conflicting package), got: %s", errMsg)
	}
}

func TestReporterInterfaces(t *testing.T) {
	var _ Reporter = (*DefaultReporter)(nil)
	var _ Reporter = (*CollapsedReporter)(nil)
}

func TestSolverWithoutTrackingStillSolves(t *testing.T) {
	source := &InMemorySource{}
	source.AddPackage(MakeName("foo"), SimpleVersion("1.0.0"), nil)

	root := NewRootSource()
	root.AddPackage(MakeName("foo"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source)
	solution, err := solver.Solve(root.Term())
	if err != nil {
		t.Fatalf("expected successful solve, got: %v", err)
	}
	if len(solution) == 0 {
		t.Error("expected non-empty solution")
	}
	if len(solver.GetIncompatibilities()) != 0 {
		t.Error("expected no incompatibilities without tracking")
	}
}

func TestErrorMethods(t *testing.T) {
	t.Parallel()

	t.Run("ErrNoSolutionFound.Error()", func(t *testing.T) {
		err := ErrNoSolutionFound{Term: eqTerm("foo", "1.0.0")}
		if msg := err.Error(); !strings.Contains(msg, "no solution found") {
			t.Errorf("expected 'no solution found' in error, got %q", msg)
		}
	})

	t.Run("PackageNotFoundError.Error()", func(t *testing.T) {
		err := PackageNotFoundError{Package: MakeName("foo")}
		if msg := err.Error(); !strings.Contains(msg, "not found") {
			t.Errorf("expected 'not found' in error, got %q", msg)
		}
	})

	t.Run("PackageVersionNotFoundError.Error()", func(t *testing.T) {
		err := PackageVersionNotFoundError{Package: MakeName("foo"), Version: SimpleVersion("1.0.0")}
		if msg := err.Error(); !strings.Contains(msg, "not found") {
			t.Errorf("expected 'not found' in error, got %q", msg)
		}
	})

	t.Run("NoSolutionError.Unwrap()", func(t *testing.T) {
		nsErr := NewNoSolutionError(NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0")))
		if unwrapped := nsErr.Unwrap(); unwrapped != nil {
			t.Errorf("expected nil from Unwrap, got %v", unwrapped)
		}
	})
}

func TestNewSemanticVersionWithPrerelease(t *testing.T) {
	t.Parallel()

	cases := []struct {
		major, minor, patch int
		prerelease          string
	}{
		{1, 2, 3, "alpha"},
		{1, 2, 3, "alpha.1"},
		{1, 2, 3, "beta.2"},
		{1, 2, 3, ""},
	}

	for _, tc := range cases {
		v := NewSemanticVersionWithPrerelease(tc.major, tc.minor, tc.patch, tc.prerelease)
		if v == nil {
			t.Errorf("NewSemanticVersionWithPrerelease(%d, %d, %d, %q) returned nil", tc.major, tc.minor, tc.patch, tc.prerelease)
			continue
		}
		if v.Major != tc.major || v.Minor != tc.minor || v.Patch != tc.patch {
			t.Errorf("expected %d.%d.%d, got %d.%d.%d", tc.major, tc.minor, tc.patch, v.Major, v.Minor, v.Patch)
		}
		if v.Prerelease != tc.prerelease {
			t.Errorf("expected prerelease %q, got %q", tc.prerelease, v.Prerelease)
		}
	}
}

func TestDisableIncompatibilityTracking(t *testing.T) {
	t.Parallel()

	source := &InMemorySource{}
	source.AddPackage(MakeName("foo"), SimpleVersion("1.0.0"), nil)

	root := NewRootSource()
	root.AddPackage(MakeName("foo"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source)
	solver.EnableIncompatibilityTracking()
	solver.DisableIncompatibilityTracking()

	solution, err := solver.Solve(root.Term())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solution) == 0 {
		t.Fatal("expected non-empty solution")
	}
}

func TestReportersOnNilIncompatibility(t *testing.T) {
	t.Parallel()

	for name, reporter := range map[string]Reporter{
		"DefaultReporter":   &DefaultReporter{},
		"CollapsedReporter": &CollapsedReporter{},
	} {
		t.Run(name, func(t *testing.T) {
			if msg := reporter.Report(nil); msg != "no solution found" {
				t.Errorf("expected 'no solution found', got %q", msg)
			}
		})
	}
}

func TestConflictWithSingleTermIsForbidden(t *testing.T) {
	t.Parallel()

	cause1 := NewIncompatibilityNoVersions(eqTerm("foo", "1.0.0"))
	cause2 := NewIncompatibilityNoVersions(eqTerm("bar", "2.0.0"))
	conflict := NewIncompatibilityConflict([]Term{eqTerm("foo", "1.0.0")}, cause1, cause2)

	for name, reporter := range map[string]Reporter{
		"DefaultReporter":   &DefaultReporter{},
		"CollapsedReporter": &CollapsedReporter{},
	} {
		t.Run(name, func(t *testing.T) {
			if msg := reporter.Report(conflict); !strings.Contains(msg, "is forbidden") {
				t.Errorf("expected 'is forbidden' in message, got %q", msg)
			}
		})
	}
}
