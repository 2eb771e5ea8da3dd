// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js
// +build !js

package console

import (
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	defaultOnce sync.Once
	defaultSink Sink
)

// Default returns the process console: os.Stdout and os.Stderr. Styling
// is enabled only when both are attached to a terminal.
func Default() Sink {
	defaultOnce.Do(func() {
		styled := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		defaultSink = NewWriterSink(os.Stdout, os.Stderr, WithStyling(styled))
	})
	return defaultSink
}
