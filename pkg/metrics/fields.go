// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"io"
	"reflect"
)

// PrometheusCollectorsFromFields returns the exported, initialized
// fields of the struct s (or of the struct s points to) that are
// prometheus collectors.
func PrometheusCollectorsFromFields(s interface{}) (cs []Collector) {
	v := reflect.Indirect(reflect.ValueOf(s))
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanInterface() {
			continue
		}
		if c, ok := f.Interface().(Collector); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// WriteText gathers all metrics of the registry and writes
// them to w in the prometheus text exposition format.
func WriteText(w io.Writer, reg MetricsRegistererGatherer) error {
	if reg == nil {
		return ErrNilRegistry
	}
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := NewEncoder(w, FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
