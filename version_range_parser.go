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

// ParseVersionRange parses a version range string and returns a VersionSet.
//
// Supported syntax:
//   - Comparison operators: >=, >, <=, <, ==, !=, =
//   - Comma-separated conjunctions (AND): ">=1.0.0, <2.0.0"
//   - Double-pipe disjunctions (OR): ">=1.0.0 || >=2.0.0"
//   - Wildcard "*" for any version
//
// Examples:
//
//	ParseVersionRange(">=1.0.0, <2.0.0")     // [1.0.0, 2.0.0)
//	ParseVersionRange(">=1.0.0 || >=3.0.0")  // >=1.0.0 OR >=3.0.0
//	ParseVersionRange("*")                   // Any version
//	ParseVersionRange("==1.5.0")             // Exactly 1.5.0
//	ParseVersionRange("!=1.5.0")             // Not 1.5.0
//
// The parser tries to interpret versions as SemanticVersion first,
// falling back to SimpleVersion if parsing fails. This allows mixing
// version types within a constraint string.
func ParseVersionRange(s string) (VersionSet, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return FullVersionSet(), nil
	}

	disjuncts := strings.Split(s, "||")
	result := EmptyVersionSet()

	for _, disjunct := range disjuncts {
		clause, err := parseConjunction(disjunct, s)
		if err != nil {
			return nil, err
		}
		result = result.Union(clause)
	}

	return result, nil
}

// parseConjunction parses one OR-branch: a comma-separated run of comparisons
// that must all hold simultaneously. raw is the branch text; full is the
// original input, kept only to give error messages their original context.
func parseConjunction(raw, full string) (VersionSet, error) {
	branch := strings.TrimSpace(raw)
	if branch == "" {
		return nil, fmt.Errorf("invalid empty range in %q", full)
	}

	clause := FullVersionSet()
	for _, term := range strings.Split(branch, ",") {
		token := strings.TrimSpace(term)
		if token == "" {
			return nil, fmt.Errorf("invalid empty constraint in %q", branch)
		}

		set, err := parseRangeExpression(token)
		if err != nil {
			return nil, err
		}

		clause = clause.Intersection(set)
		if clause.IsEmpty() {
			break
		}
	}

	return clause, nil
}

// rangeOperators lists the recognized comparison prefixes, longest first so
// that e.g. ">=" is tried before ">" matches its leading byte.
var rangeOperators = []string{">=", "<=", "==", "!=", ">", "<", "="}

// splitOperator peels a known comparison prefix off expr, returning the
// operator and the remaining (trimmed) version text. ok is false when expr
// carries no recognized operator, meaning it should be read as a bare
// version standing in for "==".
func splitOperator(expr string) (op, rest string, ok bool) {
	for _, candidate := range rangeOperators {
		if strings.HasPrefix(expr, candidate) {
			return candidate, strings.TrimSpace(expr[len(candidate):]), true
		}
	}
	return "", expr, false
}

// parseRangeExpression parses a single range expression like ">=1.0.0" or "!=2.0.0".
func parseRangeExpression(expr string) (VersionSet, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty range expression")
	}

	op, rest, hasOp := splitOperator(expr)
	if !hasOp {
		op, rest = "=", expr
	}

	version, err := parseConstraintVersion(rest)
	if err != nil {
		return nil, err
	}

	switch op {
	case ">=":
		return rangeSetFromEdges(loEdge(version, true), unboundedAbove()), nil
	case ">":
		return rangeSetFromEdges(loEdge(version, false), unboundedAbove()), nil
	case "<=":
		return rangeSetFromEdges(unboundedBelow(), hiEdge(version, true)), nil
	case "<":
		return rangeSetFromEdges(unboundedBelow(), hiEdge(version, false)), nil
	case "!=":
		return rangeSetFromEdges(loEdge(version, true), hiEdge(version, true)).Complement(), nil
	case "==", "=":
		return rangeSetFromEdges(loEdge(version, true), hiEdge(version, true)), nil
	default:
		return nil, fmt.Errorf("unsupported range operator %q in %q", op, expr)
	}
}

// parseConstraintVersion parses a version token, trying SemanticVersion
// first and falling back to the looser SimpleVersion so unparseable
// semver-like strings still compare lexically rather than failing outright.
func parseConstraintVersion(raw string) (Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing version in range expression")
	}
	if sv, err := ParseSemanticVersion(raw); err == nil {
		return sv, nil
	}
	return SimpleVersion(raw), nil
}
