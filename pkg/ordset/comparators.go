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

// NilFirst lifts a comparator over E to a comparator over *E that
// sorts nil pointers before everything else. Combined with NewOrdered
// semantics it reproduces the conventional "nils first, natural order"
// default for pointer-typed elements:
//
//	s, err := ordset.New(ordset.NilFirst(cmp.Compare[string]))
//	// *string elements; nil sorts first
func NilFirst[E any](cmp func(a, b E) int) func(a, b *E) int {
	return func(a, b *E) int {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return cmp(*a, *b)
	}
}

// Reverse inverts a comparator.
func Reverse[E any](cmp func(a, b E) int) func(a, b E) int {
	return func(a, b E) int {
		return cmp(b, a)
	}
}
