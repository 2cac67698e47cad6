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

import "fmt"

// Sequence is the random-access storage abstraction the applier can
// rearrange: anything exposing O(1) positional get/set. Slices are
// adapted internally; implement Sequence for columnar stores, arena
// buffers, or other indexed containers.
type Sequence[E any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i.
	At(i int) E

	// SetAt replaces the element at position i.
	SetAt(i int, v E)
}

// sliceSequence adapts a slice to the Sequence abstraction.
type sliceSequence[E any] struct {
	s []E
}

func (q sliceSequence[E]) Len() int        { return len(q.s) }
func (q sliceSequence[E]) At(i int) E      { return q.s[i] }
func (q sliceSequence[E]) SetAt(i int, v E) { q.s[i] = v }

// Apply rearranges data in place so that afterward
// data[k] == original data[p.Index(k)] for every k.
//
// The permutation is decomposed into disjoint cycles and each cycle is
// rotated in place: one element is held, the cycle is walked, and the
// held element is deposited when the walk returns. Cost is O(n) time
// and one bitmap of n bits; control state is a handful of locals, so
// arbitrarily long cycles never grow the stack.
//
// The permutation operand is not consumed; the same p can be applied
// to any number of correlated containers.
//
// Outputs:
//   - error: ErrLengthMismatch if len(data) != p.Len(), or
//     ErrInvalidPermutation if p fails validation. On error data is
//     untouched.
//
// Thread Safety: requires exclusive access to data for the full call.
func Apply[E any](data []E, p Permutation) error {
	return ApplySequence[E](sliceSequence[E]{s: data}, p)
}

// ApplySequence is Apply over the Sequence abstraction. The algorithm
// is identical; only the storage-access primitives differ.
func ApplySequence[E any](seq Sequence[E], p Permutation) error {
	if seq == nil {
		return ErrNilSequence
	}
	if seq.Len() != p.Len() {
		return fmt.Errorf("%w: sequence has %d elements, permutation covers %d",
			ErrLengthMismatch, seq.Len(), p.Len())
	}
	if err := p.Validate(); err != nil {
		return err
	}
	applyCycles(seq, p.index)
	return nil
}

// ApplyInto is the buffered form: dst[k] = src[p.Index(k)] in one
// linear scan. src is left intact. dst and src must not overlap.
//
// Semantically equivalent to copying src into dst and calling Apply;
// useful when the caller needs both orders, and as the reference
// implementation the in-place cycle walk is checked against.
func ApplyInto[E any](dst, src []E, p Permutation) error {
	if len(dst) != len(src) || len(src) != p.Len() {
		return fmt.Errorf("%w: dst %d, src %d, permutation %d",
			ErrLengthMismatch, len(dst), len(src), p.Len())
	}
	if err := p.Validate(); err != nil {
		return err
	}
	for k, idx := range p.index {
		dst[k] = src[idx]
	}
	return nil
}

// applyCycles commits index into seq by iterative cycle rotation.
// index must be a validated permutation of [0, seq.Len()).
func applyCycles[E any](seq Sequence[E], index []int) {
	n := len(index)
	visited := newBitset(n)
	for start := 0; start < n; start++ {
		if visited.test(start) || index[start] == start {
			continue
		}
		held := seq.At(start)
		dst := start
		for {
			visited.set(dst)
			src := index[dst]
			if src == start {
				seq.SetAt(dst, held)
				break
			}
			seq.SetAt(dst, seq.At(src))
			dst = src
		}
	}
}
