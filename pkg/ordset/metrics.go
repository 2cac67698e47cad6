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
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter. No-ops unless the host process
// installs an OpenTelemetry SDK.
var (
	tracer = otel.Tracer("aleutian.ordset")
	meter  = otel.Meter("aleutian.ordset")
)

// Metrics for bulk load operations.
var (
	buildLatency  metric.Float64Histogram
	buildElements metric.Int64Histogram
	buildDropped  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"ordset_build_duration_seconds",
			metric.WithDescription("Duration of bulk set loads"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildElements, err = meter.Int64Histogram(
			"ordset_build_elements",
			metric.WithDescription("Number of elements kept per bulk load"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildDropped, err = meter.Int64Counter(
			"ordset_build_duplicates_dropped_total",
			metric.WithDescription("Value-equal duplicates dropped across bulk loads"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordBuildMetrics records metrics for one bulk load.
func recordBuildMetrics(ctx context.Context, duration time.Duration, sourceCount, keptCount int) {
	if err := initMetrics(); err != nil {
		return
	}

	buildLatency.Record(ctx, duration.Seconds())
	buildElements.Record(ctx, int64(keptCount))
	if dropped := sourceCount - keptCount; dropped > 0 {
		buildDropped.Add(ctx, int64(dropped))
	}
}
