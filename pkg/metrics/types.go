// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

type MetricsError string

func (e MetricsError) Error() string {
	return string(e)
}

const (
	// Namespace is prefixed before every metric. If it is changed, it must be done
	// before any metrics collector is registered.
	Namespace = "clg"

	FmtText = expfmt.FmtText

	ErrNilRegistry = MetricsError("nil registry")
)

// Prometheus registry interfaces
type (
	MetricsCollector interface {
		Metrics() []prometheus.Collector
	}

	MetricsRegistererGatherer interface {
		Gather() ([]*MetricFamily, error)
		MetricsRegisterer
	}

	MetricsRegisterer interface {
		MustRegister(...Collector)
		Register(Collector) error
		Unregister(Collector) bool
	}
)

// Prometheus types aliases
type (
	Collector = prometheus.Collector
	Metric    = prometheus.Metric
	Desc      = prometheus.Desc

	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts

	MetricDTO    = dto.Metric
	MetricFamily = dto.MetricFamily

	Encoder = expfmt.Encoder
	Format  = expfmt.Format
)
