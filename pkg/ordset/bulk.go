// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ordset

import "slices"

// ContainsAll reports whether every element of other is present.
//
// When other's elements are ordered under this set's comparator — any
// set built with the same ordering qualifies — a single monotonic
// merge sweep answers the query with amortized O(log n) per probe. The
// sweep self-verifies: if it observes other out of order (the two sets
// were built with different comparators), it abandons the fast path
// and falls back to independent binary searches, which are
// correctness-equivalent. No comparator identity comparison and no
// reflection is involved.
//
// A nil or empty other is trivially contained.
func (s *Set[E]) ContainsAll(other *Set[E]) bool {
	if other == nil || len(other.elems) == 0 {
		return true
	}

	i := 0
	for k, e := range other.elems {
		if k > 0 && s.cmp(other.elems[k-1], e) > 0 {
			// other is not sorted under our comparator; the sweep
			// cursor is unreliable from here on.
			return s.containsAllSlow(other.elems[k:])
		}
		for i < len(s.elems) && s.cmp(s.elems[i], e) < 0 {
			i++
		}
		if !s.runContains(i, e) {
			return false
		}
	}
	return true
}

// containsAllSlow probes each element independently.
func (s *Set[E]) containsAllSlow(elems []E) bool {
	for _, e := range elems {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// runContains scans the comparator-equal run starting at pos for a
// value-equal match. pos may be past the end or outside the run, in
// which case the run is empty and the answer is false.
func (s *Set[E]) runContains(pos int, e E) bool {
	for i := pos; i < len(s.elems) && s.cmp(s.elems[i], e) == 0; i++ {
		if s.elems[i] == e {
			return true
		}
	}
	return false
}

// ContainsSlice reports whether every element of elems is present.
// elems need not be sorted; each element is probed independently.
func (s *Set[E]) ContainsSlice(elems []E) bool {
	return s.containsAllSlow(elems)
}

// AddAll inserts every element of other, skipping those already
// present. Returns the number of elements actually inserted.
func (s *Set[E]) AddAll(other *Set[E]) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, e := range other.elems {
		if s.Add(e) {
			added++
		}
	}
	return added
}

// AddSlice inserts every element of elems, skipping duplicates.
// Returns the number of elements actually inserted.
func (s *Set[E]) AddSlice(elems []E) int {
	added := 0
	for _, e := range elems {
		if s.Add(e) {
			added++
		}
	}
	return added
}

// RetainAll removes every element not present in other, sweeping from
// the tail backward so deletions never disturb unvisited positions.
// Membership is decided per value: an element survives only if other
// holds a value-equal member, never merely a comparator-equal one.
// Returns the number of elements removed.
func (s *Set[E]) RetainAll(other *Set[E]) int {
	removed := 0
	for i := len(s.elems) - 1; i >= 0; i-- {
		if other == nil || !other.Contains(s.elems[i]) {
			s.elems = slices.Delete(s.elems, i, i+1)
			removed++
		}
	}
	return removed
}

// RemoveAll removes every element present in other.
// Returns the number of elements removed.
func (s *Set[E]) RemoveAll(other *Set[E]) int {
	if other == nil {
		return 0
	}
	removed := 0
	for i := len(s.elems) - 1; i >= 0; i-- {
		if other.Contains(s.elems[i]) {
			s.elems = slices.Delete(s.elems, i, i+1)
			removed++
		}
	}
	return removed
}
