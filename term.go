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

// Term is one literal in an incompatibility's clause: a package name, a
// Condition narrowing which versions of it count, and a polarity. A
// positive term ("lodash >=1.0.0") asserts the package must satisfy the
// condition; a negative term ("not lodash ==1.5.0") asserts it must not.
type Term struct {
	Name      Name
	Condition Condition
	Positive  bool
}

// NewTerm builds a positive term requiring name to satisfy condition.
func NewTerm(name Name, condition Condition) Term {
	return Term{Name: name, Condition: condition, Positive: true}
}

// NewNegativeTerm builds a negative term excluding versions of name that
// satisfy condition.
func NewNegativeTerm(name Name, condition Condition) Term {
	return Term{Name: name, Condition: condition, Positive: false}
}

// Negate flips the term's polarity, leaving name and condition unchanged.
func (t Term) Negate() Term {
	return Term{Name: t.Name, Condition: t.Condition, Positive: !t.Positive}
}

// IsPositive reports the term's polarity.
func (t Term) IsPositive() bool {
	return t.Positive
}

// SatisfiedBy reports whether ver meets the term. A nil ver means the
// package was never selected, which satisfies only negative terms.
func (t Term) SatisfiedBy(ver Version) bool {
	if ver == nil {
		return !t.Positive
	}
	if t.Condition == nil {
		return t.Positive
	}

	matches := t.Condition.Satisfies(ver)
	return matches == t.Positive
}

func (t Term) String() string {
	cond := "*"
	if t.Condition != nil {
		cond = t.Condition.String()
	}

	name := t.Name.Value()
	if cond != "*" {
		name = fmt.Sprintf("%s %s", name, cond)
	}
	if t.Positive {
		return name
	}
	return "not " + name
}
