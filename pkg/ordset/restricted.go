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

// Positional mutation is permanently excluded from the API contract:
// a caller-chosen index cannot be validated against the global sort
// invariant, so the only mutating insertion is the order-preserving
// Add. The methods below exist so positional-collection call sites fail
// with a typed error instead of silently corrupting the order; they
// never touch the backing array.

// InsertAt always returns ErrUnsupportedOperation. Index-based
// insertion could place e anywhere and break the sort invariant; use
// Add, which chooses the position itself.
func (s *Set[E]) InsertAt(i int, e E) error {
	return ErrUnsupportedOperation
}

// SetAt always returns ErrUnsupportedOperation. In-place replacement
// at a caller-chosen index could break the sort invariant; Remove the
// old element and Add the new one instead.
func (s *Set[E]) SetAt(i int, e E) error {
	return ErrUnsupportedOperation
}

// SubList always returns ErrUnsupportedOperation. A sub-range view
// that could later be independently mutated cannot be reconciled with
// the parent's sort invariant. Use Values and reslice the copy for a
// detached range.
func (s *Set[E]) SubList(lo, hi int) (*Set[E], error) {
	return nil, ErrUnsupportedOperation
}
