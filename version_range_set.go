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
	"iter"
	"slices"
	"strings"
)

// VersionIntervalSet is the default VersionSet: a union of version ranges
// represented as a sorted, disjoint slice of spans. Every set operation
// (Union, Intersection, Complement, ...) is implemented as a merge or
// sweep over this slice, so it stays normalized after every call rather
// than needing an explicit canonicalization step by the caller.
//
//	set1, _ := ParseVersionRange(">=1.0.0, <2.0.0")
//	set2, _ := ParseVersionRange(">=1.5.0, <3.0.0")
//	union := set1.Union(set2) // >=1.0.0, <3.0.0
type VersionIntervalSet struct {
	spans []rangeSpan
}

func buildRangeSet(spans []rangeSpan) *VersionIntervalSet {
	return &VersionIntervalSet{spans: canonicalizeSpans(spans)}
}

// rangeSetFromEdges builds a single-span VersionSet from a lower and upper
// edge, or the empty set if the edges don't describe any version.
func rangeSetFromEdges(lo, hi rangeEdge) VersionSet {
	if span, ok := newSpan(lo, hi); ok {
		return buildRangeSet([]rangeSpan{span})
	}
	return &VersionIntervalSet{}
}

func (s *VersionIntervalSet) cloneSpans() []rangeSpan {
	if len(s.spans) == 0 {
		return nil
	}
	cloned := make([]rangeSpan, len(s.spans))
	copy(cloned, s.spans)
	return cloned
}

// Empty returns a VersionSet containing no versions.
func (s *VersionIntervalSet) Empty() VersionSet {
	return &VersionIntervalSet{}
}

// Full returns a VersionSet containing every version.
func (s *VersionIntervalSet) Full() VersionSet {
	return &VersionIntervalSet{
		spans: []rangeSpan{{lo: unboundedBelow(), hi: unboundedAbove()}},
	}
}

// Singleton returns a VersionSet containing exactly one version.
func (s *VersionIntervalSet) Singleton(version Version) VersionSet {
	if version == nil {
		return &VersionIntervalSet{}
	}
	span, ok := newSpan(loEdge(version, true), hiEdge(version, true))
	if !ok {
		return &VersionIntervalSet{}
	}
	return &VersionIntervalSet{spans: []rangeSpan{span}}
}

// Union returns the versions present in either set.
func (s *VersionIntervalSet) Union(other VersionSet) VersionSet {
	o := asRangeSet(other)
	merged := append(s.cloneSpans(), o.spans...)
	return buildRangeSet(merged)
}

// Intersection returns the versions present in both sets, found by sweeping
// the two sorted span slices in lockstep and advancing whichever side ends
// first.
func (s *VersionIntervalSet) Intersection(other VersionSet) VersionSet {
	o := asRangeSet(other)
	if len(s.spans) == 0 || len(o.spans) == 0 {
		return &VersionIntervalSet{}
	}

	result := make([]rangeSpan, 0, len(s.spans))
	i, j := 0, 0
	for i < len(s.spans) && j < len(o.spans) {
		if span, ok := intersectSpans(s.spans[i], o.spans[j]); ok {
			result = append(result, span)
		}

		if cmpAsUpper(s.spans[i].hi, o.spans[j].hi) < 0 {
			i++
		} else {
			j++
		}
	}

	return buildRangeSet(result)
}

// Complement returns the versions absent from this set: the gaps between
// consecutive spans, plus whatever lies before the first and after the last.
func (s *VersionIntervalSet) Complement() VersionSet {
	if len(s.spans) == 0 {
		return s.Full()
	}

	gaps := make([]rangeSpan, 0, len(s.spans)+1)
	gapStart := unboundedBelow()

	for _, sp := range s.spans {
		if gap, ok := newSpan(gapStart, sp.gapHiBefore()); ok {
			gaps = append(gaps, gap)
		}
		gapStart = sp.gapLoAfter()
	}

	if tail, ok := newSpan(gapStart, unboundedAbove()); ok {
		gaps = append(gaps, tail)
	}

	return buildRangeSet(gaps)
}

// Contains reports whether version falls inside any span of the set.
func (s *VersionIntervalSet) Contains(version Version) bool {
	for _, sp := range s.spans {
		if sp.hasVersion(version) {
			return true
		}
	}
	return false
}

func (s *VersionIntervalSet) IsEmpty() bool {
	return len(s.spans) == 0
}

// IsSubset reports whether every version in s also lies in other, by
// walking both span slices together: each of s's spans must be entirely
// covered by the other's spans before advancing past it.
func (s *VersionIntervalSet) IsSubset(other VersionSet) bool {
	if len(s.spans) == 0 {
		return true
	}

	o := asRangeSet(other)
	if len(o.spans) == 0 {
		return false
	}

	i, j := 0, 0
	for i < len(s.spans) {
		if j >= len(o.spans) {
			return false
		}

		if o.spans[j].encloses(s.spans[i]) {
			i++
			continue
		}

		if hiBeforeLo(o.spans[j].hi, s.spans[i].lo) {
			j++
			continue
		}

		return false
	}

	return true
}

// IsDisjoint reports whether s and other share no version.
func (s *VersionIntervalSet) IsDisjoint(other VersionSet) bool {
	if len(s.spans) == 0 {
		return true
	}

	o := asRangeSet(other)
	if len(o.spans) == 0 {
		return true
	}

	i, j := 0, 0
	for i < len(s.spans) && j < len(o.spans) {
		if s.spans[i].overlaps(o.spans[j]) {
			return false
		}

		if cmpAsUpper(s.spans[i].hi, o.spans[j].hi) < 0 {
			i++
		} else {
			j++
		}
	}

	return true
}

// Intervals iterates the set's normalized spans, oldest (lowest) first.
//
//	for span := range versionSet.Intervals() {
//	    fmt.Println(span)
//	}
func (s *VersionIntervalSet) Intervals() iter.Seq[rangeSpan] {
	return slices.Values(s.spans)
}

// String renders the set using the same comparison operators ParseVersionRange
// accepts, so round-tripping through String and ParseVersionRange is lossless
// for the set of versions (though not necessarily the exact operator chosen).
func (s *VersionIntervalSet) String() string {
	switch len(s.spans) {
	case 0:
		return "∅"
	case 1:
		return spanString(s.spans[0])
	}

	parts := make([]string, len(s.spans))
	for i, sp := range s.spans {
		parts[i] = spanString(sp)
	}
	return strings.Join(parts, " || ")
}

func spanString(sp rangeSpan) string {
	if sp.lo.isBelowAll() && sp.hi.isAboveAll() {
		return "*"
	}

	if sp.lo.isPinned() && sp.hi.isPinned() &&
		sp.lo.at.Sort(sp.hi.at) == 0 && sp.lo.inclusive && sp.hi.inclusive {
		return fmt.Sprintf("==%s", sp.lo.at)
	}

	var parts []string
	if sp.lo.isPinned() {
		op := ">"
		if sp.lo.inclusive {
			op = ">="
		}
		parts = append(parts, fmt.Sprintf("%s%s", op, sp.lo.at))
	}
	if sp.hi.isPinned() {
		op := "<"
		if sp.hi.inclusive {
			op = "<="
		}
		parts = append(parts, fmt.Sprintf("%s%s", op, sp.hi.at))
	}

	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}

// asRangeSet coerces a VersionSet into the concrete type this file's
// operations are written against. Any VersionSet implementation that
// correctly reports IsEmpty can stand in for an empty set; anything else
// crossing this boundary is a programming error in an embedder-supplied
// VersionSet, not a recoverable condition.
func asRangeSet(set VersionSet) *VersionIntervalSet {
	if set == nil {
		return &VersionIntervalSet{}
	}
	if rs, ok := set.(*VersionIntervalSet); ok {
		return rs
	}
	if set.IsEmpty() {
		return &VersionIntervalSet{}
	}
	panic("pubgrub: VersionSet implementation other than *VersionIntervalSet passed to an interval-set operation")
}

// exactVersion returns the single version a set pins down, if it is exactly
// one closed point and nothing else.
func exactVersion(set VersionSet) (Version, bool) {
	rs, ok := set.(*VersionIntervalSet)
	if !ok || len(rs.spans) != 1 {
		return nil, false
	}

	sp := rs.spans[0]
	if !sp.lo.isPinned() || !sp.hi.isPinned() {
		return nil, false
	}
	if sp.lo.at.Sort(sp.hi.at) != 0 {
		return nil, false
	}
	if !sp.lo.inclusive || !sp.hi.inclusive {
		return nil, false
	}

	return sp.lo.at, true
}

var _ VersionSet = (*VersionIntervalSet)(nil)
