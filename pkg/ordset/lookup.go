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

// Lookup is two-phase because the comparator may equate values that
// are not value-equal: a binary search can only land somewhere inside
// the comparator-equal run, so the run is then probed linearly for the
// member that is == to the query. slices.BinarySearchFunc returns the
// leftmost position of the run, which makes the probe a forward scan.

// IndexOf returns the position of the first element value-equal to e,
// or (-1, false) if no member of the comparator-equal run is == e.
func (s *Set[E]) IndexOf(e E) (int, bool) {
	pos, found := slices.BinarySearchFunc(s.elems, e, s.cmp)
	if !found {
		return -1, false
	}
	for i := pos; i < len(s.elems) && s.cmp(s.elems[i], e) == 0; i++ {
		if s.elems[i] == e {
			return i, true
		}
	}
	return -1, false
}

// LastIndexOf returns the position of the last element value-equal to
// e, or (-1, false). It differs from IndexOf only when the set holds
// value-equal duplicates, which Add prevents; it exists for parity
// with IndexOf over externally loaded runs.
func (s *Set[E]) LastIndexOf(e E) (int, bool) {
	pos, found := slices.BinarySearchFunc(s.elems, e, s.cmp)
	if !found {
		return -1, false
	}
	last, ok := -1, false
	for i := pos; i < len(s.elems) && s.cmp(s.elems[i], e) == 0; i++ {
		if s.elems[i] == e {
			last, ok = i, true
		}
	}
	return last, ok
}

// Contains reports whether an element value-equal to e is present.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.IndexOf(e)
	return ok
}
