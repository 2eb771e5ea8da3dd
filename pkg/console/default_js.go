// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm
// +build js,wasm

package console

import (
	"syscall/js"
)

var _ Sink = (*jsSink)(nil)

// jsSink calls the methods of the host's global console object.
type jsSink struct {
	console js.Value
}

// Default returns the host's global console object as a Sink.
func Default() Sink {
	return &jsSink{console: js.Global().Get("console")}
}

// call invokes the named console method. A JavaScript exception thrown by
// the host is not caught here.
func (s *jsSink) call(method, line string) error {
	s.console.Call(method, line)
	return nil
}

func (s *jsSink) Log(line string) error   { return s.call("log", line) }
func (s *jsSink) Error(line string) error { return s.call("error", line) }
func (s *jsSink) Warn(line string) error  { return s.call("warn", line) }
func (s *jsSink) Info(line string) error  { return s.call("info", line) }
func (s *jsSink) Trace(line string) error { return s.call("trace", line) }

// Styled implements the Styler interface.
func (s *jsSink) Styled() bool { return true }
