// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"sync"

	"github.com/ethersphere/clg/pkg/console"
)

var _ console.Sink = (*Sink)(nil)

// Entry is a single line captured by the Sink.
type Entry struct {
	Channel console.Channel
	Line    string
}

// Sink is an in-memory console.Sink that records every call.
type Sink struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	styled  bool
}

// Option modifies the mock Sink.
type Option func(*Sink)

// WithError makes every call record the line and return err.
func WithError(err error) Option {
	return func(s *Sink) { s.err = err }
}

// WithStyling sets the value reported by Styled.
func WithStyling(styled bool) Option {
	return func(s *Sink) { s.styled = styled }
}

// NewSink returns a recording sink. Unless WithStyling is given it
// reports no styling support, so captured lines are plain text.
func NewSink(opts ...Option) *Sink {
	s := new(Sink)
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Sink) Log(line string) error   { return s.record(console.ChannelLog, line) }
func (s *Sink) Error(line string) error { return s.record(console.ChannelError, line) }
func (s *Sink) Warn(line string) error  { return s.record(console.ChannelWarn, line) }
func (s *Sink) Info(line string) error  { return s.record(console.ChannelInfo, line) }
func (s *Sink) Trace(line string) error { return s.record(console.ChannelTrace, line) }

// Styled implements the console.Styler interface.
func (s *Sink) Styled() bool { return s.styled }

func (s *Sink) record(c console.Channel, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Channel: c, Line: line})
	return s.err
}

// Entries returns a copy of all recorded entries in call order.
func (s *Sink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Lines returns the lines recorded on the given channel.
func (s *Sink) Lines(c console.Channel) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var lines []string
	for _, e := range s.entries {
		if e.Channel == c {
			lines = append(lines, e.Line)
		}
	}
	return lines
}

// Reset discards all recorded entries.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}
