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

import "fmt"

// assignmentKind distinguishes a decision (an explicit version selection)
// from a derivation (a constraint unit propagation deduced).
type assignmentKind int

const (
	assignmentDecision assignmentKind = iota
	assignmentDerivation
)

func (k assignmentKind) String() string {
	if k == assignmentDecision {
		return "decision"
	}
	return "derivation"
}

// assignment is one entry on the partial solution's trail: a term bound to
// a package at a given decision level, with enough extra bookkeeping
// (allowed/forbidden sets, cause, trail index) that the solver never needs
// to recompute it from the term alone.
type assignment struct {
	name          Name
	term          Term
	kind          assignmentKind
	allowed       VersionSet
	forbidden     VersionSet
	version       Version
	cause         *Incompatibility
	decisionLevel int
	index         int
}

func (a *assignment) isDecision() bool {
	return a.kind == assignmentDecision
}

// describe renders the assignment for debug logging and solver snapshots.
func (a *assignment) describe() string {
	if a == nil {
		return "<nil assignment>"
	}
	return fmt.Sprintf("[%d@%d] %s %s", a.index, a.decisionLevel, a.kind, a.term)
}
