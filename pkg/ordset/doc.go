// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ordset provides an order-maintaining, array-backed set.
//
// A Set is simultaneously list-like and set-like: elements are stored
// in a dynamic array kept sorted under a single comparator fixed at
// construction, so positional access is O(1) while membership queries
// are binary searches. Every mutation preserves the order invariant:
// for all valid i < j, cmp(At(i), At(j)) <= 0.
//
// # Comparator equality vs. value equality
//
// The comparator is a total order, but it may legitimately classify
// two unequal values as equal — a comparator keyed on one field of a
// richer struct is the canonical case. The set keeps both notions
// apart deliberately:
//
//   - Ordering and search positioning use the comparator.
//   - Duplicate rejection and membership use Go value equality (==).
//
// Two values that merely sort the same therefore coexist in the set,
// adjacent within one comparator-equal run, and IndexOf finds each at
// its own position. Lookups are two-phase: a binary search lands
// inside the comparator-equal run, then a linear probe over the run
// matches by value equality. A query that sorts into a run but is
// value-equal to none of its members reports not-found.
//
// # Restricted operations
//
// Index-based insertion, index-based replacement, and sub-range views
// are deliberately unsupported: any caller-chosen index could violate
// the sort invariant, and a sub-range that could be independently
// mutated cannot be reconciled with the parent's ordering. The
// corresponding methods exist, never mutate, and always return
// ErrUnsupportedOperation. Only the order-preserving Add mutates the
// structure.
//
// # Thread Safety
//
// A Set performs no internal locking. Sharing one across goroutines
// requires external synchronization.
package ordset
