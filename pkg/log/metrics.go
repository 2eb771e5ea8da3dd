// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	m "github.com/ethersphere/clg/pkg/metrics"
)

var (
	_ Hook               = (*MetricsHook)(nil)
	_ m.MetricsCollector = (*MetricsHook)(nil)
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	ErrorCount m.Counter
	WarnCount  m.Counter
	InfoCount  m.Counter
	DebugCount m.Counter
	TraceCount m.Counter
}

// newLogMetrics returns pointer to a new metrics instance ready to use.
func newLogMetrics() metrics {
	const subsystem = "log"

	return metrics{
		ErrorCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number ERROR log messages.",
		}),
		WarnCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "warn_count",
			Help:      "Number WARN log messages.",
		}),
		InfoCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "info_count",
			Help:      "Number INFO log messages.",
		}),
		DebugCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "debug_count",
			Help:      "Number DEBUG log messages.",
		}),
		TraceCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "trace_count",
			Help:      "Number TRACE log messages.",
		}),
	}
}

// MetricsHook counts written records per severity.
// Register it with WithLevelHooks(LevelTrace, hook).
type MetricsHook struct {
	metrics metrics
}

// NewMetricsHook returns a hook with all counters at zero.
func NewMetricsHook() *MetricsHook {
	return &MetricsHook{metrics: newLogMetrics()}
}

// Fire implements Hook interface.
func (h *MetricsHook) Fire(v Level) error {
	switch v {
	case LevelError:
		h.metrics.ErrorCount.Inc()
	case LevelWarn:
		h.metrics.WarnCount.Inc()
	case LevelInfo:
		h.metrics.InfoCount.Inc()
	case LevelDebug:
		h.metrics.DebugCount.Inc()
	default:
		h.metrics.TraceCount.Inc()
	}
	return nil
}

// Metrics implements the metrics.MetricsCollector interface.
func (h *MetricsHook) Metrics() []m.Collector {
	return m.PrometheusCollectorsFromFields(h.metrics)
}
