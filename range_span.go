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

import "slices"

// rangeSpan is a single contiguous run of versions bounded by two rangeEdges.
// A VersionIntervalSet is a sorted, disjoint sequence of these; every set
// operation on it reduces to pairwise operations on spans.
//
//	[1.0.0, 2.0.0) -- >=1.0.0, <2.0.0
//	(1.0.0, 2.0.0] -- >1.0.0, <=2.0.0
//	[1.0.0, +inf)   -- >=1.0.0
type rangeSpan struct {
	lo rangeEdge
	hi rangeEdge
}

// newSpan builds a span from its two edges. ok is false when the edges
// describe an empty range (e.g. lo > hi, or lo == hi with either edge
// exclusive), in which case the caller should drop the span entirely
// rather than keep a degenerate one around.
func newSpan(lo, hi rangeEdge) (rangeSpan, bool) {
	span := rangeSpan{lo: lo, hi: hi}
	if span.isEmpty() {
		return rangeSpan{}, false
	}
	return span, true
}

func (s rangeSpan) isEmpty() bool {
	switch {
	case s.lo.isAboveAll(), s.hi.isBelowAll():
		return true
	case s.lo.isBelowAll(), s.hi.isAboveAll():
		return false
	}

	switch cmp := s.lo.at.Sort(s.hi.at); {
	case cmp < 0:
		return false
	case cmp > 0:
		return true
	default:
		return !s.lo.inclusive || !s.hi.inclusive
	}
}

func (s rangeSpan) hasVersion(v Version) bool {
	if v == nil {
		return false
	}

	if !s.lo.isBelowAll() {
		switch cmp := v.Sort(s.lo.at); {
		case cmp < 0:
			return false
		case cmp == 0 && !s.lo.inclusive:
			return false
		}
	}

	if !s.hi.isAboveAll() {
		switch cmp := v.Sort(s.hi.at); {
		case cmp > 0:
			return false
		case cmp == 0 && !s.hi.inclusive:
			return false
		}
	}

	return true
}

// hiBeforeLo reports whether hi ends strictly before lo begins, i.e. a span
// ending at hi and one starting at lo share no version. Spans that meet at a
// version only one of them includes count as separate here; see adjoins.
func hiBeforeLo(hi, lo rangeEdge) bool {
	switch {
	case hi.isBelowAll():
		return !lo.isBelowAll()
	case lo.isAboveAll():
		return !hi.isAboveAll()
	case hi.isAboveAll(), lo.isBelowAll():
		return false
	}

	switch cmp := hi.at.Sort(lo.at); {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return !hi.inclusive || !lo.inclusive
	}
}

func (s rangeSpan) overlaps(other rangeSpan) bool {
	return !hiBeforeLo(s.hi, other.lo) && !hiBeforeLo(other.hi, s.lo)
}

// adjoins reports whether two spans can be merged into one without changing
// the set of versions covered: they overlap, or they meet at a version that
// exactly one of them includes, as [1.0.0, 2.0.0) and [2.0.0, 3.0.0) do. Two
// spans that both exclude a shared boundary version stay separate.
func (s rangeSpan) adjoins(other rangeSpan) bool {
	return s.overlaps(other) || edgesMeet(s.hi, other.lo) || edgesMeet(other.hi, s.lo)
}

// edgesMeet reports whether a span ending at hi and one starting at lo share
// a boundary version that exactly one of the two edges includes.
func edgesMeet(hi, lo rangeEdge) bool {
	return hi.isPinned() && lo.isPinned() && hi.inclusive != lo.inclusive && hi.at.Sort(lo.at) == 0
}

func (s rangeSpan) combine(other rangeSpan) rangeSpan {
	return rangeSpan{
		lo: pickLower(s.lo, other.lo, cmpAsLower),
		hi: pickUpper(s.hi, other.hi, cmpAsUpper),
	}
}

// encloses reports whether other's versions are entirely contained in s.
func (s rangeSpan) encloses(other rangeSpan) bool {
	return cmpAsLower(s.lo, other.lo) <= 0 && cmpAsUpper(s.hi, other.hi) >= 0
}

// gapLoAfter is the lower edge of the complement span that begins right
// after s ends.
func (s rangeSpan) gapLoAfter() rangeEdge {
	return s.hi.invertedInclusivity()
}

// gapHiBefore is the upper edge of the complement span that ends right
// before s begins.
func (s rangeSpan) gapHiBefore() rangeEdge {
	return s.lo.invertedInclusivity()
}

func intersectSpans(a, b rangeSpan) (rangeSpan, bool) {
	return newSpan(
		pickUpper(a.lo, b.lo, cmpAsLower), // the later of the two starts
		pickLower(a.hi, b.hi, cmpAsUpper), // the earlier of the two ends
	)
}

// canonicalizeSpans drops empty spans, sorts the rest by starting edge, and
// merges any that touch or overlap, producing the normalized form every
// VersionIntervalSet is stored in: disjoint spans in ascending order.
func canonicalizeSpans(spans []rangeSpan) []rangeSpan {
	live := spans[:0]
	for _, sp := range spans {
		if !sp.isEmpty() {
			live = append(live, sp)
		}
	}
	if len(live) == 0 {
		return nil
	}

	slices.SortFunc(live, func(a, b rangeSpan) int {
		return cmpAsLower(a.lo, b.lo)
	})

	merged := live[:1]
	for _, sp := range live[1:] {
		last := &merged[len(merged)-1]
		if last.adjoins(sp) {
			*last = last.combine(sp)
			continue
		}
		merged = append(merged, sp)
	}

	out := make([]rangeSpan, len(merged))
	copy(out, merged)
	return out
}
