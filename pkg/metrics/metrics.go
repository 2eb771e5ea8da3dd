// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nometrics
// +build !nometrics

package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

func NewCounter(opts CounterOpts) Counter {
	return prometheus.NewCounter(opts)
}

func NewEncoder(w io.Writer, format Format) Encoder {
	return expfmt.NewEncoder(w, format)
}

func NewRegistry() MetricsRegistererGatherer {
	return prometheus.NewRegistry()
}
