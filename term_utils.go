package pubgrub

import "fmt"

// conditionVersionSet extracts the VersionSet a Condition stands for,
// independent of whether the term wrapping it is positive or negative; a
// nil/unset condition always means "any version". ok is false only for a
// Condition type this package doesn't know how to convert, which signals a
// caller error rather than an unsatisfiable term.
func conditionVersionSet(cond Condition) (VersionSet, bool) {
	switch c := cond.(type) {
	case nil:
		return FullVersionSet(), true
	case EqualsCondition:
		return (&VersionIntervalSet{}).Singleton(c.Version), true
	case *EqualsCondition:
		if c == nil {
			return FullVersionSet(), true
		}
		return (&VersionIntervalSet{}).Singleton(c.Version), true
	case *VersionSetCondition:
		if c == nil || c.Set == nil {
			return FullVersionSet(), true
		}
		return c.Set, true
	case VersionSetConverter:
		if set := c.ToVersionSet(); set != nil {
			return set, true
		}
		return FullVersionSet(), true
	default:
		return nil, false
	}
}

// termAllowedSet returns the versions a positive term permits; false for a
// negative term or an unrecognized Condition.
func termAllowedSet(term Term) (VersionSet, bool) {
	if !term.Positive {
		return nil, false
	}
	return conditionVersionSet(term.Condition)
}

// termForbiddenSet returns the versions a negative term rules out; false for
// a positive term or an unrecognized Condition.
func termForbiddenSet(term Term) (VersionSet, bool) {
	if term.Positive {
		return nil, false
	}
	return conditionVersionSet(term.Condition)
}

// applyTermToAllowed narrows current (the versions still allowed for a
// package) by one more term, positive terms via intersection, negative terms
// by intersecting with the complement of what they forbid.
func applyTermToAllowed(current VersionSet, term Term) (VersionSet, error) {
	if current == nil {
		current = FullVersionSet()
	}

	if term.Positive {
		allowed, ok := termAllowedSet(term)
		if !ok {
			return nil, fmt.Errorf("term %s does not support positive conversion", term)
		}
		return current.Intersection(allowed), nil
	}

	forbidden, ok := termForbiddenSet(term)
	if !ok {
		return nil, fmt.Errorf("term %s does not support negative conversion", term)
	}
	return current.Intersection(forbidden.Complement()), nil
}

// termFromAllowedSet renders an allowed-versions set back into a positive
// term, collapsing to an EqualsCondition when the set pins exactly one
// version so the term prints and compares the way a decision would.
func termFromAllowedSet(name Name, set VersionSet) Term {
	if set == nil {
		set = FullVersionSet()
	}

	if version, ok := exactVersion(set); ok {
		return NewTerm(name, EqualsCondition{Version: version})
	}

	return NewTerm(name, NewVersionSetCondition(set))
}

// termFromForbiddenSet renders a forbidden-versions set into a negative term.
func termFromForbiddenSet(name Name, set VersionSet) Term {
	if set == nil {
		set = FullVersionSet()
	}
	return Term{Name: name, Condition: NewVersionSetCondition(set), Positive: false}
}

func setsEqual(a, b VersionSet) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsSubset(b) && b.IsSubset(a)
}
