// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package permsort

import (
	"fmt"
	"slices"
)

// Permutation is an ordering of [0, n). After a sort, Index(k) is the
// original position whose element belongs at sorted position k.
//
// Invariants:
//   - The index array is always a bijection of [0, n): every value
//     appears exactly once.
//   - The zero value is the empty permutation and is valid.
//
// Thread Safety: Read-only after construction. Safe for concurrent
// application to distinct storage.
type Permutation struct {
	index []int
}

// Identity returns the identity permutation of length n.
//
// Panics if n is negative, matching make() semantics.
func Identity(n int) Permutation {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return Permutation{index: index}
}

// FromIndices builds a Permutation from an explicit index array.
//
// The slice is copied, so the caller keeps ownership of index. Returns
// ErrInvalidPermutation if index is not a bijection of [0, len(index)).
func FromIndices(index []int) (Permutation, error) {
	p := Permutation{index: slices.Clone(index)}
	if err := p.Validate(); err != nil {
		return Permutation{}, err
	}
	return p, nil
}

// Len returns the number of positions the permutation covers.
func (p Permutation) Len() int {
	return len(p.index)
}

// Index returns the original position mapped to sorted position k.
func (p Permutation) Index(k int) int {
	return p.index[k]
}

// Indices returns a copy of the underlying index array.
func (p Permutation) Indices() []int {
	return slices.Clone(p.index)
}

// Validate checks the bijection invariant: each value in [0, n)
// appears exactly once. Returns ErrInvalidPermutation with the first
// offending position otherwise.
func (p Permutation) Validate() error {
	n := len(p.index)
	seen := newBitset(n)
	for k, idx := range p.index {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index[%d] = %d out of range [0, %d)",
				ErrInvalidPermutation, k, idx, n)
		}
		if seen.test(idx) {
			return fmt.Errorf("%w: index[%d] = %d appears more than once",
				ErrInvalidPermutation, k, idx)
		}
		seen.set(idx)
	}
	return nil
}

// bitset is a packed bitmap over [0, n). Used for permutation
// validation and for cycle bookkeeping during application.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) test(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}
