// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"

	"github.com/ethersphere/clg/pkg/console"
	"github.com/hashicorp/go-multierror"
)

// Logger filters records against a fixed threshold, renders the ones
// that pass and writes them to a console sink.
type Logger struct {
	// threshold is the most verbose level still written.
	// It never changes after construction.
	threshold Level

	// sink represents the console where the lines are written.
	sink console.Sink

	// formatter renders records before they are written to the sink.
	formatter *formatter

	// clock stamps every rendered record.
	clock Clock

	// callerDepth is the number of extra frames skipped
	// when attributing formatted calls.
	callerDepth int

	// levelHooks allow triggering of registered hooks
	// on their associated severity log levels.
	levelHooks levelHooks
}

// NewLogger returns a configured Logger. It is not installed anywhere;
// see Registry.Install and Init for that.
func NewLogger(opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.sink == nil {
		o.sink = console.Default()
	}

	var styled bool
	switch o.style {
	case StyleAlways:
		styled = true
	case StyleAuto:
		styled = console.Styled(o.sink)
	}

	return &Logger{
		threshold:   o.level,
		sink:        o.sink,
		formatter:   newFormatter(styled),
		clock:       o.clock,
		callerDepth: o.callerDepth,
		levelHooks:  o.levelHooks,
	}
}

// Level returns the threshold of the logger.
func (l *Logger) Level() Level {
	return l.threshold
}

// LevelName returns the name of the threshold, e.g. "Info".
func (l *Logger) LevelName() string {
	return l.threshold.String()
}

// LevelOrdinal returns the numeric threshold, 0 for Off up to 5 for Trace.
func (l *Logger) LevelOrdinal() int {
	return l.threshold.Ordinal()
}

// Enabled reports whether a record of the given level would be written.
// Off is a threshold, never a record level, so it is never enabled;
// neither is a level outside the Off to Trace range.
func (l *Logger) Enabled(lv Level) bool {
	return lv.valid() && lv != LevelOff && lv.EnabledUnder(l.threshold)
}

// Log writes the record if its level is enabled. Failures of the sink
// or of the hooks are reported on os.Stderr.
func (l *Logger) Log(r Record) {
	if !l.Enabled(r.Level) {
		return
	}
	if err := l.log(r); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// Flush is a no-op; lines are never buffered.
func (l *Logger) Flush() {}

// Errorf logs a formatted message at the Error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(1, LevelError, format, args...)
}

// Warnf logs a formatted message at the Warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(1, LevelWarn, format, args...)
}

// Infof logs a formatted message at the Info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(1, LevelInfo, format, args...)
}

// Debugf logs a formatted message at the Debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(1, LevelDebug, format, args...)
}

// Tracef logs a formatted message at the Trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(1, LevelTrace, format, args...)
}

// logf attributes the message to the function skip frames above logf.
func (l *Logger) logf(skip int, lv Level, format string, args ...interface{}) {
	if !l.Enabled(lv) {
		return
	}
	module, line := caller(skip + 1 + l.callerDepth)
	l.Log(Record{
		Level:   lv,
		Module:  module,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// log renders the record, writes it to the sink matching its level
// and fires the hooks registered for the level.
func (l *Logger) log(r Record) error {
	line := l.formatter.render(r, l.clock.Now())

	var merr *multierror.Error
	if err := Output(l.sink, r.Level.Ordinal(), line); err != nil {
		merr = multierror.Append(
			merr,
			fmt.Errorf("log %s: failed to write message: %w", r.Level, err),
		)
	}
	if err := l.levelHooks.fire(r.Level); err != nil {
		merr = multierror.Append(
			merr,
			fmt.Errorf("log %s: failed to fire hooks: %w", r.Level, err),
		)
	}
	return merr.ErrorOrNil()
}
