//go:build nometrics
// +build nometrics

// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"io"
)

var _ Counter = (*counterNoop)(nil)

type counterNoop struct{}

func (c counterNoop) Desc() *Desc              { return &Desc{} }
func (c counterNoop) Write(_ *MetricDTO) error { return nil }
func (c counterNoop) Describe(_ chan<- *Desc)  {}
func (c counterNoop) Collect(_ chan<- Metric)  {}
func (c counterNoop) Inc()                     {}
func (c counterNoop) Add(_ float64)            {}

func NewCounter(_ CounterOpts) Counter {
	return &counterNoop{}
}

var _ MetricsRegistererGatherer = (*registryNoop)(nil)

type registryNoop struct{}

func (r registryNoop) Register(_ Collector) error  { return nil }
func (r registryNoop) Unregister(_ Collector) bool { return true }
func (r registryNoop) MustRegister(_ ...Collector) {}
func (r registryNoop) Gather() ([]*MetricFamily, error) {
	return []*MetricFamily{}, nil
}

func NewRegistry() MetricsRegistererGatherer {
	return &registryNoop{}
}

var _ Encoder = (*encoderNoop)(nil)

type encoderNoop struct{}

func (e encoderNoop) Encode(_ *MetricFamily) error { return nil }

func NewEncoder(_ io.Writer, _ Format) Encoder {
	return &encoderNoop{}
}
