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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// slowSortLogThreshold is the element count above which a completed
// sort is summarized to the structured log.
const slowSortLogThreshold = 100_000

// SortSlice stably sorts data in place under cmp and returns the
// permutation that was applied, so the caller can commit the same
// ordering into any number of correlated containers.
//
// Description:
//
//	Builds the identity index array, stably sorts it by comparing the
//	referenced elements, then rearranges data by cycle application.
//	Equal elements keep their original relative order.
//
// Inputs:
//   - ctx: Context for tracing. Must not be nil.
//   - data: storage to sort. May be empty.
//   - cmp: three-way comparator over elements. Must not be nil.
//
// Outputs:
//   - Permutation: the ordering committed into data.
//   - error: ErrNilComparator, or a context/validation error.
//
// Thread Safety: requires exclusive access to data for the full call.
func SortSlice[E any](ctx context.Context, data []E, cmp func(a, b E) int) (Permutation, error) {
	if ctx == nil {
		return Permutation{}, errors.New("ctx must not be nil")
	}
	if cmp == nil {
		return Permutation{}, ErrNilComparator
	}

	ctx, span := tracer.Start(ctx, "permsort.SortSlice",
		trace.WithAttributes(
			attribute.Int("permsort.elements", len(data)),
		),
	)
	defer span.End()

	start := time.Now()

	p, err := SortIndices(len(data), func(i, j int) int { return cmp(data[i], data[j]) })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "index sort failed")
		recordSortMetrics(ctx, "slice", time.Since(start), len(data), false)
		return Permutation{}, err
	}
	if err := Apply(data, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "permutation apply failed")
		recordSortMetrics(ctx, "slice", time.Since(start), len(data), false)
		return Permutation{}, fmt.Errorf("apply permutation: %w", err)
	}

	elapsed := time.Since(start)
	recordSortMetrics(ctx, "slice", elapsed, len(data), true)
	if len(data) >= slowSortLogThreshold {
		slog.Info("correlated sort complete",
			slog.Int("elements", len(data)),
			slog.Duration("duration", elapsed))
	}
	span.SetStatus(codes.Ok, "sorted")
	return p, nil
}

// SortPairs stably sorts keys in place under cmp and rearranges vals
// with the same permutation, keeping the two parallel slices
// correlated by position.
//
// Inputs:
//   - ctx: Context for tracing. Must not be nil.
//   - keys: the slice that defines the order.
//   - vals: the parallel slice carried along. Must have the same
//     length as keys.
//   - cmp: three-way comparator over keys. Must not be nil.
//
// Outputs:
//   - error: ErrNilComparator, ErrLengthMismatch, or a validation
//     error. On error neither slice has been reordered.
//
// Thread Safety: requires exclusive access to both slices.
func SortPairs[K, V any](ctx context.Context, keys []K, vals []V, cmp func(a, b K) int) error {
	if ctx == nil {
		return errors.New("ctx must not be nil")
	}
	if cmp == nil {
		return ErrNilComparator
	}
	if len(keys) != len(vals) {
		return fmt.Errorf("%w: %d keys, %d values",
			ErrLengthMismatch, len(keys), len(vals))
	}

	ctx, span := tracer.Start(ctx, "permsort.SortPairs",
		trace.WithAttributes(
			attribute.Int("permsort.elements", len(keys)),
		),
	)
	defer span.End()

	start := time.Now()

	p, err := SortIndices(len(keys), func(i, j int) int { return cmp(keys[i], keys[j]) })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "index sort failed")
		recordSortMetrics(ctx, "pairs", time.Since(start), len(keys), false)
		return err
	}
	if err := Apply(keys, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "key apply failed")
		recordSortMetrics(ctx, "pairs", time.Since(start), len(keys), false)
		return fmt.Errorf("apply permutation to keys: %w", err)
	}
	if err := Apply(vals, p); err != nil {
		// Keys are already reordered; this only fires on an internal
		// invariant break, since p was validated against keys above.
		span.RecordError(err)
		span.SetStatus(codes.Error, "value apply failed")
		recordSortMetrics(ctx, "pairs", time.Since(start), len(keys), false)
		return fmt.Errorf("apply permutation to values: %w", err)
	}

	elapsed := time.Since(start)
	recordSortMetrics(ctx, "pairs", elapsed, len(keys), true)
	if len(keys) >= slowSortLogThreshold {
		slog.Info("correlated pair sort complete",
			slog.Int("elements", len(keys)),
			slog.Duration("duration", elapsed))
	}
	span.SetStatus(codes.Ok, "sorted")
	return nil
}
