// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"io"
	"sync"
)

var _ Sink = (*WriterSink)(nil)

// Lock wraps io.Writer in a mutex to make it safe for concurrent use.
// In particular, *os.Files must be locked before use.
func Lock(w io.Writer) io.Writer {
	if _, ok := w.(*lockWriter); ok {
		return w // No need to layer on another lock.
	}
	return &lockWriter{w: w}
}

// lockWriter attaches mutex to io.Writer for convince of usage.
type lockWriter struct {
	sync.Mutex
	w io.Writer
}

// Write implements the io.Writer interface.
func (ls *lockWriter) Write(bs []byte) (int, error) {
	ls.Lock()
	n, err := ls.w.Write(bs)
	ls.Unlock()
	return n, err
}

// WriterSink is a Sink backed by two writers. The log and info entry
// points write to out, while error, warn and trace write to errOut.
type WriterSink struct {
	out    io.Writer
	errOut io.Writer
	styled bool
}

// WriterOption modifies a WriterSink.
type WriterOption func(*WriterSink)

// WithStyling tells the sink whether its writers render ANSI styling.
func WithStyling(styled bool) WriterOption {
	return func(s *WriterSink) { s.styled = styled }
}

// NewWriterSink returns a Sink writing one line per call to out or errOut.
// When both are the same writer they share a single lock, so lines from
// different entry points never interleave.
func NewWriterSink(out, errOut io.Writer, opts ...WriterOption) *WriterSink {
	lout := Lock(out)
	lerr := lout
	if errOut != out {
		lerr = Lock(errOut)
	}
	s := &WriterSink{out: lout, errOut: lerr}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *WriterSink) Log(line string) error   { return writeLine(s.out, line) }
func (s *WriterSink) Error(line string) error { return writeLine(s.errOut, line) }
func (s *WriterSink) Warn(line string) error  { return writeLine(s.errOut, line) }
func (s *WriterSink) Info(line string) error  { return writeLine(s.out, line) }
func (s *WriterSink) Trace(line string) error { return writeLine(s.errOut, line) }

// Styled implements the Styler interface.
func (s *WriterSink) Styled() bool { return s.styled }

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}
