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

import (
	"cmp"
	"context"
	"errors"
	"iter"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Set is a dynamic, array-backed sequence that enforces sorted order
// on every mutation.
//
// Invariants:
//   - For all valid i < j, cmp(At(i), At(j)) <= 0.
//   - No two stored elements are value-equal (==).
//   - The comparator is fixed at construction and never mutated.
//
// Thread Safety: no internal locking; single-owner, or externally
// synchronized.
type Set[E comparable] struct {
	elems []E
	cmp   func(a, b E) int
}

// New creates an empty Set governed by cmp.
//
// Returns ErrNilComparator if cmp is nil; there is no implicit
// ordering for arbitrary element types. For naturally ordered types
// use NewOrdered, which supplies one.
func New[E comparable](cmp func(a, b E) int) (*Set[E], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	return &Set[E]{cmp: cmp}, nil
}

// NewOrdered creates an empty Set over a naturally ordered element
// type, using cmp.Compare as the comparator.
func NewOrdered[E cmp.Ordered]() *Set[E] {
	return &Set[E]{cmp: cmp.Compare[E]}
}

// NewWithCapacity creates an empty Set with room for n elements
// before the backing array grows.
func NewWithCapacity[E comparable](cmp func(a, b E) int, n int) (*Set[E], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	return &Set[E]{cmp: cmp, elems: make([]E, 0, n)}, nil
}

// NewFromSlice bulk-loads a Set from src: one copy, one stable sort
// pass, then removal of value-equal duplicates. src itself is never
// modified. Duplicate handling matches Add: elements that sort equal
// but differ by value equality are all kept; only true (==) duplicates
// collapse, first occurrence winning.
//
// Inputs:
//   - ctx: Context for tracing. Must not be nil.
//   - src: source elements, in any order. Must not be nil (an empty
//     slice is fine).
//   - cmp: three-way comparator. Must not be nil.
//
// Outputs:
//   - *Set[E]: the loaded set.
//   - error: ErrNilComparator, ErrNilCollection, or a context error.
func NewFromSlice[E comparable](ctx context.Context, src []E, cmp func(a, b E) int) (*Set[E], error) {
	if ctx == nil {
		return nil, errors.New("ctx must not be nil")
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if src == nil {
		return nil, ErrNilCollection
	}

	ctx, span := tracer.Start(ctx, "ordset.NewFromSlice",
		trace.WithAttributes(
			attribute.Int("ordset.source_elements", len(src)),
		),
	)
	defer span.End()

	start := time.Now()

	elems := slices.Clone(src)
	slices.SortStableFunc(elems, cmp)
	elems = dedupeRuns(elems, cmp)

	s := &Set[E]{elems: elems, cmp: cmp}

	elapsed := time.Since(start)
	recordBuildMetrics(ctx, elapsed, len(src), len(elems))
	if dropped := len(src) - len(elems); dropped > 0 {
		slog.Debug("bulk load dropped duplicates",
			slog.Int("source_elements", len(src)),
			slog.Int("kept", len(elems)),
			slog.Int("dropped", dropped))
	}
	span.SetAttributes(attribute.Int("ordset.elements", len(elems)))
	span.SetStatus(codes.Ok, "loaded")
	return s, nil
}

// dedupeRuns removes value-equal duplicates from sorted elems,
// keeping the first occurrence. Candidates for a duplicate can only
// live inside the same comparator-equal run, so the scan is linear
// with an inner pass bounded by run length.
func dedupeRuns[E comparable](elems []E, cmp func(a, b E) int) []E {
	out := elems[:0]
	for i := 0; i < len(elems); {
		j := i
		for j < len(elems) && cmp(elems[i], elems[j]) == 0 {
			j++
		}
		runStart := len(out)
		for k := i; k < j; k++ {
			dup := false
			for m := runStart; m < len(out); m++ {
				if out[m] == elems[k] {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, elems[k])
			}
		}
		i = j
	}
	return out
}

// Add inserts e in sorted position.
//
// The insertion point is found by binary search; the comparator-equal
// run at that point is then probed for a value-equal occupant. If one
// exists the insertion is rejected and the set is unchanged. Cost:
// O(log n) search plus O(n) splice.
//
// Returns true if e was inserted, false if it was already present.
func (s *Set[E]) Add(e E) bool {
	pos, found := slices.BinarySearchFunc(s.elems, e, s.cmp)
	if found {
		for i := pos; i < len(s.elems) && s.cmp(s.elems[i], e) == 0; i++ {
			if s.elems[i] == e {
				return false
			}
		}
	}
	s.elems = slices.Insert(s.elems, pos, e)
	return true
}

// Remove deletes e if a value-equal element is present.
// Returns true if an element was removed.
func (s *Set[E]) Remove(e E) bool {
	i, ok := s.IndexOf(e)
	if !ok {
		return false
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return true
}

// RemoveAt deletes and returns the element at position i.
// Panics if i is out of range, following slice-indexing convention.
func (s *Set[E]) RemoveAt(i int) E {
	e := s.elems[i]
	s.elems = slices.Delete(s.elems, i, i+1)
	return e
}

// Clear removes all elements but keeps the allocated backing array.
func (s *Set[E]) Clear() {
	s.elems = s.elems[:0]
}

// Len returns the number of elements.
func (s *Set[E]) Len() int {
	return len(s.elems)
}

// At returns the element at position i in sorted order.
// Panics if i is out of range, following slice-indexing convention.
func (s *Set[E]) At(i int) E {
	return s.elems[i]
}

// First returns the smallest element under the comparator.
// Returns ErrEmptySet if the set is empty.
func (s *Set[E]) First() (E, error) {
	if len(s.elems) == 0 {
		var zero E
		return zero, ErrEmptySet
	}
	return s.elems[0], nil
}

// Last returns the largest element under the comparator.
// Returns ErrEmptySet if the set is empty.
func (s *Set[E]) Last() (E, error) {
	if len(s.elems) == 0 {
		var zero E
		return zero, ErrEmptySet
	}
	return s.elems[len(s.elems)-1], nil
}

// Values returns the elements in sorted order as a fresh slice.
// Mutating the result does not affect the set.
func (s *Set[E]) Values() []E {
	return slices.Clone(s.elems)
}

// All returns a read-only position/element iterator in sorted order.
// The set must not be structurally mutated while iterating.
func (s *Set[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range s.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Comparator returns the comparator the set was constructed with.
func (s *Set[E]) Comparator() func(a, b E) int {
	return s.cmp
}
