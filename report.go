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
)

// Reporter formats the derivation tree behind a failed solve into a
// human-readable explanation.
type Reporter interface {
	Report(incomp *Incompatibility) string
}

// dependencyLine renders the "Pkg@ver depends on dep" line shared by both
// built-in reporters, unnegating the dependency term for display.
func dependencyLine(incomp *Incompatibility) (string, bool) {
	if len(incomp.Terms) != 2 {
		return "", false
	}
	dep := incomp.Terms[1]
	if !dep.Positive {
		dep = dep.Negate()
	}
	return fmt.Sprintf("%s %s depends on %s", incomp.Package.Value(), incomp.Version, dep), true
}

// conflictConclusion renders the trailing "therefore..." line of a learned
// conflict, without sentence punctuation; callers add that to match their
// own formatting convention.
func conflictConclusion(terms []Term) string {
	switch len(terms) {
	case 0:
		return "version solving has failed"
	case 1:
		return fmt.Sprintf("%s is forbidden", terms[0])
	default:
		parts := make([]string, len(terms))
		for i, term := range terms {
			parts[i] = term.String()
		}
		return fmt.Sprintf("these constraints conflict: %s", strings.Join(parts, " and "))
	}
}

// DefaultReporter renders the full derivation tree with indentation showing
// how each learned incompatibility followed from its two causes.
type DefaultReporter struct{}

func (r *DefaultReporter) Report(incomp *Incompatibility) string {
	if incomp == nil {
		return "no solution found"
	}
	var lines []string
	r.walk(incomp, &lines, 0, make(map[*Incompatibility]bool))
	return strings.Join(lines, "\n")
}

func (r *DefaultReporter) walk(incomp *Incompatibility, lines *[]string, depth int, visited map[*Incompatibility]bool) {
	if visited[incomp] {
		return
	}
	visited[incomp] = true
	indent := strings.Repeat("  ", depth)

	switch incomp.Kind {
	case KindNoVersions:
		if len(incomp.Terms) > 0 {
			*lines = append(*lines, fmt.Sprintf("%sNo versions of %s satisfy the constraint", indent, incomp.Terms[0]))
		}
	case KindFromDependency:
		if line, ok := dependencyLine(incomp); ok {
			*lines = append(*lines, indent+"Because "+line)
		}
	case KindConflict:
		if incomp.Cause1 == nil || incomp.Cause2 == nil {
			return
		}
		*lines = append(*lines, indent+"Because:")
		r.walk(incomp.Cause1, lines, depth+1, visited)
		*lines = append(*lines, indent+"and:")
		r.walk(incomp.Cause2, lines, depth+1, visited)

		conclusion := conflictConclusion(incomp.Terms)
		if len(incomp.Terms) <= 1 {
			conclusion += "."
		}
		*lines = append(*lines, indent+conclusion)
	default:
		*lines = append(*lines, indent+incomp.String())
	}
}

// CollapsedReporter renders the same derivation as a flat chain of lines
// joined by "\nAnd because ", dropping the indentation DefaultReporter uses.
type CollapsedReporter struct{}

func (r *CollapsedReporter) Report(incomp *Incompatibility) string {
	if incomp == nil {
		return "no solution found"
	}

	var lines []string
	r.collect(incomp, &lines, make(map[*Incompatibility]bool))
	if len(lines) == 0 {
		return "version solving failed"
	}

	result := lines[0]
	for _, line := range lines[1:] {
		result += "\nAnd because " + line
	}
	return result
}

func (r *CollapsedReporter) collect(incomp *Incompatibility, lines *[]string, visited map[*Incompatibility]bool) {
	if visited[incomp] {
		return
	}
	visited[incomp] = true

	switch incomp.Kind {
	case KindNoVersions:
		if len(incomp.Terms) > 0 {
			*lines = append(*lines, fmt.Sprintf("no versions of %s satisfy the constraint", incomp.Terms[0]))
		}
	case KindFromDependency:
		if line, ok := dependencyLine(incomp); ok {
			*lines = append(*lines, line)
		}
	case KindConflict:
		if incomp.Cause1 == nil || incomp.Cause2 == nil {
			return
		}
		r.collect(incomp.Cause1, lines, visited)
		r.collect(incomp.Cause2, lines, visited)
		if len(incomp.Terms) > 0 {
			*lines = append(*lines, conflictConclusion(incomp.Terms))
		}
	default:
		*lines = append(*lines, incomp.String())
	}
}
