// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package permsort implements a correlated permutation-sort engine.
//
// Instead of sorting storage directly, the engine sorts an index array:
// an identity permutation [0..n) is stably ordered by a three-way
// comparator applied to the positions it references, and the resulting
// permutation is then committed into storage in a separate step. This
// split is what makes it possible to keep two or more parallel
// structures consistently ordered: one comparison pass produces a
// single permutation, and the same permutation is applied to every
// correlated container.
//
// # Pipeline
//
//	┌──────────────┐   ┌──────────────┐   ┌──────────────────┐
//	│  Identity(n) │──▶│ stable index │──▶│ cycle application │
//	│   [0..n)     │   │    sort      │   │   (in place)      │
//	└──────────────┘   └──────────────┘   └──────────────────┘
//
// The sort is a stable O(n log n) insertion/symmerge hybrid, so
// comparator-equal elements keep their original relative order. That
// guarantee is load-bearing: consumers correlate independently stored
// collections by original index, and an unstable sort would silently
// scramble the correlation.
//
// Application walks the permutation's disjoint cycles iteratively with
// a visited bitmap, rotating each cycle in place. One value is held
// per cycle; no recursion, no O(n) staging buffer. ApplyInto is the
// buffered scatter form for callers that want to keep the source
// intact.
//
// # Basic Usage
//
// Sort one slice and correlate another by the returned permutation:
//
//	perm, err := permsort.SortSlice(ctx, keys, cmp)
//	if err != nil {
//	    return err
//	}
//	if err := permsort.Apply(payloads, perm); err != nil {
//	    return err
//	}
//
// Or sort two parallel slices in one call:
//
//	err := permsort.SortPairs(ctx, keys, payloads, cmp)
//
// # Thread Safety
//
// None of the operations lock. A sort or apply assumes exclusive
// access to the index array and the backing storage for its full
// duration; concurrent mutation by another goroutine is undefined
// behavior and must be prevented by the caller.
package permsort
