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
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for sort operations. Both resolve to
// no-ops unless the host process installs an OpenTelemetry SDK.
var (
	tracer = otel.Tracer("aleutian.permsort")
	meter  = otel.Meter("aleutian.permsort")
)

// Metrics for correlated sort operations.
var (
	sortLatency  metric.Float64Histogram
	sortTotal    metric.Int64Counter
	sortElements metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		sortLatency, err = meter.Float64Histogram(
			"permsort_sort_duration_seconds",
			metric.WithDescription("Duration of correlated sort operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sortTotal, err = meter.Int64Counter(
			"permsort_sort_total",
			metric.WithDescription("Total number of correlated sort operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sortElements, err = meter.Int64Histogram(
			"permsort_sort_elements",
			metric.WithDescription("Number of elements per sort"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSortMetrics records metrics for one sort operation.
func recordSortMetrics(ctx context.Context, kind string, duration time.Duration, elements int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	)

	sortLatency.Record(ctx, duration.Seconds(), attrs)
	sortTotal.Add(ctx, 1, attrs)

	if success {
		sortElements.Record(ctx, int64(elements))
	}
}
