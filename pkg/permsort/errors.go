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

import "errors"

// Sentinel errors for permutation-sort operations.
var (
	// ErrNilComparator indicates a required comparator was nil.
	ErrNilComparator = errors.New("comparator must not be nil")

	// ErrNilSequence indicates a required sequence was nil.
	ErrNilSequence = errors.New("sequence must not be nil")

	// ErrNegativeLength indicates a negative element count.
	ErrNegativeLength = errors.New("length must not be negative")

	// ErrInvalidPermutation indicates the index array is not a
	// bijection of [0, n): it contains a duplicate, an omission, or an
	// out-of-range value.
	ErrInvalidPermutation = errors.New("index array is not a permutation")

	// ErrLengthMismatch indicates correlated containers disagree on
	// length, or a permutation does not match its storage.
	ErrLengthMismatch = errors.New("length mismatch")
)
