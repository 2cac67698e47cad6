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

// Stable index sort: insertion-sorted blocks merged bottom-up with
// symmerge, an in-place stable merge. O(n log n) comparisons, O(1)
// auxiliary space, O(log n) control stack. Stability is a property of
// the algorithm itself; ties are never broken by index value, so the
// comparator alone decides the order and equal elements keep their
// original relative positions.

// insertionBlock is the block size insertion-sorted before merging.
const insertionBlock = 20

// SortIndices builds the identity permutation of length n and stably
// sorts it under cmp, a three-way comparator over original positions.
//
// After the call, applying cmp to successive pairs of the returned
// permutation's indices is non-decreasing, and comparator-equal
// positions preserve their original relative order.
//
// Inputs:
//   - n: element count. Must be non-negative.
//   - cmp: comparator over positions in [0, n). Must not be nil unless
//     n <= 1 (a comparator is never consulted for fewer than two
//     elements, but a nil comparator is still rejected for uniformity).
//
// Outputs:
//   - Permutation: a bijection of [0, n) in comparator order.
//   - error: ErrNegativeLength or ErrNilComparator.
func SortIndices(n int, cmp func(i, j int) int) (Permutation, error) {
	if n < 0 {
		return Permutation{}, ErrNegativeLength
	}
	if cmp == nil {
		return Permutation{}, ErrNilComparator
	}
	p := Identity(n)
	stableSortIndex(p.index, cmp)
	return p, nil
}

// stableSortIndex stably sorts idx in place. cmp receives the values
// stored in idx (original positions), not slice offsets.
func stableSortIndex(idx []int, cmp func(i, j int) int) {
	n := len(idx)
	blockSize := insertionBlock
	a, b := 0, blockSize
	for b <= n {
		insertionSortIndex(idx, cmp, a, b)
		a = b
		b += blockSize
	}
	insertionSortIndex(idx, cmp, a, n)

	for blockSize < n {
		a, b = 0, 2*blockSize
		for b <= n {
			symMerge(idx, cmp, a, a+blockSize, b)
			a = b
			b += 2 * blockSize
		}
		if m := a + blockSize; m < n {
			symMerge(idx, cmp, a, m, n)
		}
		blockSize *= 2
	}
}

// insertionSortIndex sorts idx[a:b] by insertion.
func insertionSortIndex(idx []int, cmp func(i, j int) int, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && cmp(idx[j], idx[j-1]) < 0; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}

// symMerge stably merges the two sorted runs idx[a:m] and idx[m:b]
// using the SymMerge algorithm (Kim & Kutzner, "Stable Minimum Storage
// Merging by Symmetric Comparisons").
func symMerge(idx []int, cmp func(i, j int) int, a, m, b int) {
	// A run of one element is inserted directly by binary search;
	// this also bounds the recursion.
	if m-a == 1 {
		i, j := m, b
		for i < j {
			h := int(uint(i+j) >> 1)
			if cmp(idx[h], idx[a]) < 0 {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := a; k < i-1; k++ {
			idx[k], idx[k+1] = idx[k+1], idx[k]
		}
		return
	}
	if b-m == 1 {
		i, j := a, m
		for i < j {
			h := int(uint(i+j) >> 1)
			if cmp(idx[m], idx[h]) >= 0 {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := m; k > i; k-- {
			idx[k], idx[k-1] = idx[k-1], idx[k]
		}
		return
	}

	mid := int(uint(a+b) >> 1)
	n := mid + m
	var start, r int
	if m > mid {
		start = n - b
		r = mid
	} else {
		start = a
		r = m
	}
	p := n - 1

	for start < r {
		c := int(uint(start+r) >> 1)
		if cmp(idx[p-c], idx[c]) >= 0 {
			start = c + 1
		} else {
			r = c
		}
	}

	end := n - start
	if start < m && m < end {
		rotateIndex(idx, start, m, end)
	}
	if a < start && start < mid {
		symMerge(idx, cmp, a, start, mid)
	}
	if mid < end && end < b {
		symMerge(idx, cmp, mid, end, b)
	}
}

// rotateIndex rotates the two consecutive blocks idx[a:m] and idx[m:b]
// by repeated block swapping.
func rotateIndex(idx []int, a, m, b int) {
	i := m - a
	j := b - m
	for i != j {
		if i > j {
			swapRangeIndex(idx, m-i, m, j)
			i -= j
		} else {
			swapRangeIndex(idx, m-i, m+j-i, i)
			j -= i
		}
	}
	swapRangeIndex(idx, m-i, m, i)
}

func swapRangeIndex(idx []int, a, b, n int) {
	for i := 0; i < n; i++ {
		idx[a+i], idx[b+i] = idx[b+i], idx[a+i]
	}
}
