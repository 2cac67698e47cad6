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

import "errors"

// Sentinel errors for ordered-set operations.
var (
	// ErrNilComparator indicates a required comparator was nil.
	ErrNilComparator = errors.New("comparator must not be nil")

	// ErrNilCollection indicates a required source collection was nil.
	ErrNilCollection = errors.New("collection must not be nil")

	// ErrEmptySet indicates positional access on an empty set.
	ErrEmptySet = errors.New("set is empty")

	// ErrUnsupportedOperation indicates a structural mutation the set
	// permanently excludes because it could violate the sort
	// invariant. This is a documented capability restriction, not a
	// transient failure.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
