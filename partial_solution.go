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
	"fmt"
	"strings"
)

// partialSolution is the evolving assignment trail of a CDCL run: every
// decision (a chosen package version) and derivation (a constraint implied
// by unit propagation) the solver has made so far, in the order it made
// them. Assignments are kept both in that chronological order and grouped
// per package, so the solver can cheaply ask "what does the trail currently
// allow for package X" without rescanning the whole trail.
type partialSolution struct {
	assignments []*assignment
	perPackage  map[Name][]*assignment
	decisionLvl int
	nextIndex   int
	root        Name
}

func newPartialSolution(root Name) *partialSolution {
	return &partialSolution{
		assignments: make([]*assignment, 0),
		perPackage:  make(map[Name][]*assignment),
		root:        root,
	}
}

func (ps *partialSolution) newDecisionAssignment(name Name, version Version, level int) *assignment {
	return &assignment{
		name:          name,
		term:          NewTerm(name, EqualsCondition{Version: version}),
		kind:          assignmentDecision,
		allowed:       (&VersionIntervalSet{}).Singleton(version),
		version:       version,
		decisionLevel: level,
		index:         ps.nextIndex,
	}
}

// append records an assignment at the end of the trail, indexing it by
// package for later lookups.
func (ps *partialSolution) append(assign *assignment) {
	ps.assignments = append(ps.assignments, assign)
	ps.perPackage[assign.name] = append(ps.perPackage[assign.name], assign)
	ps.nextIndex++
}

// latest returns the most recent assignment made for name, or nil if the
// trail has never touched that package.
func (ps *partialSolution) latest(name Name) *assignment {
	stack := ps.perPackage[name]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// allowedSet folds every assignment made for name into a single VersionSet:
// positive assignments narrow it by intersection, negative ones by
// subtracting what they forbid. An untouched package is unconstrained.
func (ps *partialSolution) allowedSet(name Name) VersionSet {
	stack := ps.perPackage[name]
	current := FullVersionSet()
	for _, assign := range stack {
		switch {
		case assign.term.Positive && assign.allowed != nil:
			current = current.Intersection(assign.allowed)
		case !assign.term.Positive && assign.forbidden != nil:
			current = current.Intersection(assign.forbidden.Complement())
		}
	}
	return current
}

func (ps *partialSolution) hasAssignments(name Name) bool {
	return len(ps.perPackage[name]) > 0
}

// addDecision records a version selection for name, bumping the decision
// level — every decision opens a new level that backtracking can later undo.
func (ps *partialSolution) addDecision(name Name, version Version) *assignment {
	ps.decisionLvl++
	assign := ps.newDecisionAssignment(name, version, ps.decisionLvl)
	ps.append(assign)
	return assign
}

// seedRoot records the synthetic root package decision at level 0, below
// any real decision the solver will ever backtrack to.
func (ps *partialSolution) seedRoot(name Name, version Version) *assignment {
	assign := ps.newDecisionAssignment(name, version, 0)
	ps.append(assign)
	return assign
}

var errNoAllowedVersions = errors.New("no versions satisfy constraints")

// addDerivation narrows the allowed set for term's package by one more unit
// clause learned during propagation. It returns the resulting assignment,
// whether the allowed set actually shrank, and an error when term cannot be
// converted to a version set at all, or errNoAllowedVersions when term would
// leave no version allowed (which callers treat as a conflict).
//
// A negative term that does shrink the allowed set is additionally recorded
// as a second, positive assignment carrying the tightened set directly — the
// rest of the solver only ever needs to read allowedSet/latest, so folding
// the narrowing in here keeps those call sites simple.
func (ps *partialSolution) addDerivation(term Term, cause *Incompatibility) (*assignment, bool, error) {
	before := ps.allowedSet(term.Name)
	after, err := applyTermToAllowed(before, term)
	if err != nil {
		return nil, false, err
	}
	if after.IsEmpty() {
		return nil, false, errNoAllowedVersions
	}

	base := &assignment{
		name:          term.Name,
		term:          term,
		kind:          assignmentDerivation,
		cause:         cause,
		decisionLevel: ps.decisionLvl,
		index:         ps.nextIndex,
	}

	if term.Positive {
		base.allowed = after
		ps.append(base)
		return base, !setsEqual(before, after), nil
	}

	forbidden, ok := termForbiddenSet(term)
	if !ok {
		return nil, false, errors.New("unable to compute forbidden set for term")
	}
	base.forbidden = forbidden
	ps.append(base)

	if setsEqual(before, after) {
		return base, false, nil
	}

	tightened := &assignment{
		name:          term.Name,
		term:          termFromAllowedSet(term.Name, after),
		kind:          assignmentDerivation,
		allowed:       after,
		cause:         cause,
		decisionLevel: ps.decisionLvl,
		index:         ps.nextIndex,
	}
	ps.append(tightened)
	return tightened, true, nil
}

// backtrack discards every assignment made above level, restoring both the
// chronological trail and the per-package index to how they looked at that
// point in the search.
func (ps *partialSolution) backtrack(level int) {
	if level < 0 {
		level = 0
	}

	for len(ps.assignments) > 0 {
		last := ps.assignments[len(ps.assignments)-1]
		if last.decisionLevel <= level {
			break
		}
		ps.assignments = ps.assignments[:len(ps.assignments)-1]
		ps.popPerPackage(last.name)
	}

	ps.decisionLvl = level
}

func (ps *partialSolution) popPerPackage(name Name) {
	stack := ps.perPackage[name]
	if len(stack) == 0 {
		return
	}
	if len(stack) == 1 {
		delete(ps.perPackage, name)
		return
	}
	ps.perPackage[name] = stack[:len(stack)-1]
}

// isComplete reports whether every non-root package touched by the trail
// has a decision, i.e. solving is done.
func (ps *partialSolution) isComplete() bool {
	for name := range ps.perPackage {
		if name != ps.root && !ps.hasDecision(name) {
			return false
		}
	}
	return true
}

// pendingNames lists, in first-seen trail order, every non-root package
// that has been constrained but not yet decided.
func (ps *partialSolution) pendingNames() []Name {
	seen := make(map[Name]bool, len(ps.perPackage))
	pending := make([]Name, 0)

	for _, assign := range ps.assignments {
		name := assign.name
		if name == ps.root || seen[name] {
			continue
		}
		seen[name] = true
		if !ps.hasDecision(name) {
			pending = append(pending, name)
		}
	}

	return pending
}

// nextDecisionCandidate is pendingNames' head, or (EmptyName, false) when
// nothing is pending; it is the default decision order when no PackageSelector
// is configured.
func (ps *partialSolution) nextDecisionCandidate() (Name, bool) {
	pending := ps.pendingNames()
	if len(pending) == 0 {
		return EmptyName(), false
	}
	return pending[0], true
}

func (ps *partialSolution) hasDecision(name Name) bool {
	for _, assign := range ps.perPackage[name] {
		if assign.kind == assignmentDecision {
			return true
		}
	}
	return false
}

// satisfier returns the most recently made assignment (by trail index) that
// satisfies any term of inc — the assignment conflict resolution pivots on.
func (ps *partialSolution) satisfier(inc *Incompatibility) *assignment {
	var selected *assignment
	maxIndex := -1

	for _, term := range inc.Terms {
		stack := ps.perPackage[term.Name]
		for i := len(stack) - 1; i >= 0; i-- {
			assign := stack[i]
			if termSatisfiedBy(term, assign) {
				if assign.index > maxIndex {
					selected = assign
					maxIndex = assign.index
				}
				break
			}
		}
	}

	return selected
}

// previousDecisionLevel finds the highest decision level, among assignments
// other than satisfier that also satisfy inc, to backjump to during conflict
// resolution.
//
// Defaults to 1 rather than 0 when no other satisfying assignment exists,
// matching the published PubGrub conflict-resolution procedure. When that
// default is not below a decision satisfier's own level, resolveConflict
// backjumps one level below the satisfier instead, so a conflict discovered
// at decision level 1 backjumps to level 0, never below it.
func (ps *partialSolution) previousDecisionLevel(inc *Incompatibility, satisfier *assignment) int {
	const noOtherSatisfier = 1
	level := noOtherSatisfier
	found := false

	for _, term := range inc.Terms {
		stack := ps.perPackage[term.Name]
		for i := len(stack) - 1; i >= 0; i-- {
			assign := stack[i]
			if assign == satisfier {
				continue
			}
			if termSatisfiedBy(term, assign) {
				if !found || assign.decisionLevel > level {
					level = assign.decisionLevel
				}
				found = true
			}
		}
	}

	return level
}

// buildSolution collapses the trail's decisions into the final package/version
// pairing, one entry per package, in the order each was first decided.
func (ps *partialSolution) buildSolution() Solution {
	result := make([]NameVersion, 0)
	seen := make(map[Name]bool)

	for _, assign := range ps.assignments {
		if assign.kind != assignmentDecision || seen[assign.name] {
			continue
		}
		seen[assign.name] = true
		result = append(result, NameVersion{Name: assign.name, Version: assign.version})
	}

	return result
}

// snapshot renders the trail for debug logging during conflict analysis.
func (ps *partialSolution) snapshot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "decision_level=%d next_index=%d assignments=%d\n", ps.decisionLvl, ps.nextIndex, len(ps.assignments))
	for _, assign := range ps.assignments {
		fmt.Fprintf(&b, "  %s\n", assign.describe())
	}
	return b.String()
}

// termSatisfiedBy reports whether assign makes term true: a positive term
// needs assign's allowed set to be covered by what the term requires; a
// negative term needs assign to rule out everything the term forbids.
func termSatisfiedBy(term Term, assign *assignment) bool {
	if assign == nil {
		return false
	}

	if term.Positive {
		required, ok := termAllowedSet(term)
		if !ok || assign.allowed == nil {
			return false
		}
		return assign.allowed.IsSubset(required)
	}

	forbidden, ok := termForbiddenSet(term)
	if !ok {
		return false
	}

	if assign.term.Positive {
		if assign.allowed == nil {
			return false
		}
		return assign.allowed.IsDisjoint(forbidden)
	}

	if assign.forbidden == nil {
		return false
	}
	return forbidden.IsSubset(assign.forbidden)
}
