package pubgrub

import "testing"

// TestBackjumpRetriesNextCandidate exercises spec scenario 3 ("backjump"):
// a conflict on a dependency of the preferred candidate must backtrack to the
// decision level of the package that caused it and retry with the next
// candidate, rather than failing outright or backtracking to the root.
func TestBackjumpRetriesNextCandidate(t *testing.T) {
	source := &InMemorySource{}

	a2 := SimpleVersion("2")
	a1 := SimpleVersion("1")
	source.AddPackage(MakeName("a"), a2, []Term{
		NewTerm(MakeName("c"), EqualsCondition{Version: SimpleVersion("2")}),
	})
	source.AddPackage(MakeName("a"), a1, nil)
	source.AddPackage(MakeName("c"), SimpleVersion("1"), nil)
	// c version "2" is deliberately absent: selecting a=2 is unsatisfiable.

	root := NewRootSource()
	root.AddPackage(MakeName("a"), FullVersionSetCondition())

	solver := NewSolver(root, source)
	solution, err := solver.Solve(root.Term())
	if err != nil {
		t.Fatalf("expected a solution after backjumping off a=2, got error: %v", err)
	}

	ver, ok := solution.GetVersion(MakeName("a"))
	if !ok {
		t.Fatal("expected a in solution")
	}
	if ver.String() != "1" {
		t.Fatalf("expected solver to backjump to a=1, got a=%s", ver.String())
	}
}

// TestConflictAcrossPackages exercises spec scenario 6: two independent
// top-level requirements each pull in an incompatible version of a shared
// dependency. No solution exists; Solve must return a *NoSolutionError with
// a non-empty explanation.
func TestConflictAcrossPackages(t *testing.T) {
	source := &InMemorySource{}
	source.AddPackage(MakeName("a"), SimpleVersion("1"), []Term{
		NewTerm(MakeName("shared"), EqualsCondition{Version: SimpleVersion("1")}),
	})
	source.AddPackage(MakeName("b"), SimpleVersion("1"), []Term{
		NewTerm(MakeName("shared"), EqualsCondition{Version: SimpleVersion("2")}),
	})
	source.AddPackage(MakeName("shared"), SimpleVersion("1"), nil)
	source.AddPackage(MakeName("shared"), SimpleVersion("2"), nil)

	root := NewRootSource()
	root.AddPackage(MakeName("a"), FullVersionSetCondition())
	root.AddPackage(MakeName("b"), FullVersionSetCondition())

	solver := NewSolver(root, source).EnableIncompatibilityTracking()
	_, err := solver.Solve(root.Term())
	if err == nil {
		t.Fatal("expected no solution for conflicting shared dependency")
	}

	nsErr, ok := err.(*NoSolutionError)
	if !ok {
		t.Fatalf("expected *NoSolutionError, got %T", err)
	}
	msg := nsErr.Error()
	if msg == "" {
		t.Fatal("expected a non-empty failure explanation")
	}
}

// FullVersionSetCondition returns a Condition matching every version, useful
// for root requirements that only need "any version of this package".
func FullVersionSetCondition() Condition {
	return NewVersionSetCondition(FullVersionSet())
}

// TestPartialSatisfierDifferenceAppendsForbiddenRemainder is a focused unit
// test on the conflict-resolution fix itself: when a satisfier's own term is
// broader than what the conflict required of its package, the learned
// incompatibility must retain a negative term over the versions the satisfier
// allows beyond that requirement, not silently drop them.
func TestPartialSatisfierDifferenceAppendsForbiddenRemainder(t *testing.T) {
	pkg := MakeName("p")

	// The conflict only required p == 2; the satisfier actually asserted the
	// much broader "p != 5", which allows far more than the narrow
	// requirement does.
	required := NewTerm(pkg, EqualsCondition{Version: SimpleVersion("2")})
	satisfierTerm := NewNegativeTerm(pkg, EqualsCondition{Version: SimpleVersion("5")})

	diff, ok := partialSatisfierDifference(satisfierTerm, required)
	if !ok {
		t.Fatal("expected a non-empty partial-satisfier difference")
	}
	if diff.Name != pkg {
		t.Fatalf("expected diff term for package %s, got %s", pkg.Value(), diff.Name.Value())
	}
	if diff.Positive {
		t.Fatal("expected the folded-back difference to be a negative (forbidding) term")
	}
}

// TestPreviousDecisionLevelDefaultsToOneWithNoOtherSatisfier covers the
// degenerate case the shared fixture in partial_solution_test.go never
// reaches: a single-term incompatibility where no assignment other than the
// satisfier itself participates. previousDecisionLevel must still report 1,
// not 0, so a conflict discovered at decision level 1 backjumps no further
// than the state before any decision was made.
func TestPreviousDecisionLevelDefaultsToOneWithNoOtherSatisfier(t *testing.T) {
	root := MakeName("root")
	ps := newPartialSolution(root)
	ps.seedRoot(root, SimpleVersion("1.0.0"))

	a := MakeName("a")
	aVersion := SimpleVersion("1.0.0")
	assignA := ps.addDecision(a, aVersion)

	inc := &Incompatibility{
		Terms: []Term{
			NewTerm(a, EqualsCondition{Version: aVersion}),
		},
		Kind: KindConflict,
	}

	satisfier := ps.satisfier(inc)
	if satisfier != assignA {
		t.Fatalf("expected satisfier to be the only assignment for %s", a.Value())
	}

	prev := ps.previousDecisionLevel(inc, satisfier)
	if prev != 1 {
		t.Fatalf("expected default previous decision level 1, got %d", prev)
	}
}
