// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/ethersphere/clg/pkg/console"
)

// NewTestLogger returns logger used for testing.
// This logger uses t.Log as sink for log outputs
// and logs at every level unless told otherwise.
func NewTestLogger(t *testing.T, opts ...Option) *Logger {
	t.Helper()

	opts = append([]Option{WithLevel(LevelTrace)}, opts...)
	opts = append(opts, WithSink(&testSink{t: t}))

	return NewLogger(opts...)
}

var _ console.Sink = (*testSink)(nil)

type testSink struct {
	t *testing.T
}

func (ts *testSink) Log(s string) error   { return ts.log(s) }
func (ts *testSink) Error(s string) error { return ts.log(s) }
func (ts *testSink) Warn(s string) error  { return ts.log(s) }
func (ts *testSink) Info(s string) error  { return ts.log(s) }
func (ts *testSink) Trace(s string) error { return ts.log(s) }

// Styled implements the console.Styler interface.
func (ts *testSink) Styled() bool { return false }

func (ts *testSink) log(s string) error {
	ts.t.Log(s)
	return nil
}
