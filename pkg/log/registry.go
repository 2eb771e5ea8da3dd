// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

// ErrAlreadyInstalled is returned when a second logger is installed
// into the same Registry.
var ErrAlreadyInstalled = errors.New("log: a logger is already installed")

// ErrNilLogger is returned when Install is called with a nil logger.
var ErrNilLogger = errors.New("log: nil logger")

// Registry is a one-shot slot holding the active logger. Once a logger
// is installed, the slot and its maximum level never change.
// The zero value is an empty registry ready to use.
type Registry struct {
	installed atomic.Bool
	logger    atomic.Value // *Logger
	maxLevel  atomic.Int32
}

// defaultRegistry is the process-wide registry used by the package-level functions.
var defaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return new(Registry)
}

// DefaultRegistry returns the process-wide Registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Install makes l the active logger and fixes the maximum level of
// the registry to the threshold of l. Only the first call succeeds;
// any later call returns ErrAlreadyInstalled and changes nothing.
// A nil logger is rejected with ErrNilLogger and leaves the slot free.
func (r *Registry) Install(l *Logger) error {
	if l == nil {
		return ErrNilLogger
	}
	if !r.installed.CAS(false, true) {
		return ErrAlreadyInstalled
	}
	r.maxLevel.Store(int32(l.threshold))
	r.logger.Store(l)
	return nil
}

// Logger returns the installed logger, if any.
func (r *Registry) Logger() (*Logger, bool) {
	l, ok := r.logger.Load().(*Logger)
	return l, ok
}

// MaxLevel returns the threshold of the installed logger,
// or LevelOff when nothing is installed.
func (r *Registry) MaxLevel() Level {
	return Level(r.maxLevel.Load())
}

// Enabled reports whether a record of the given level would be written
// by the installed logger.
func (r *Registry) Enabled(lv Level) bool {
	l, ok := r.Logger()
	return ok && lv.EnabledUnder(r.MaxLevel()) && l.Enabled(lv)
}

// Log hands the record to the installed logger. Before installation
// it does nothing.
func (r *Registry) Log(rec Record) {
	if l, ok := r.Logger(); ok && rec.Level.EnabledUnder(r.MaxLevel()) {
		l.Log(rec)
	}
}

// Init creates a Logger from the options and, unless its threshold is
// LevelOff, installs it. If a logger is already installed, Init writes
// a diagnostic to the error entry point of the sink and panics with
// ErrAlreadyInstalled.
func (r *Registry) Init(opts ...Option) *Logger {
	return r.init(1, opts...)
}

// init is Init attributing the diagnostic to the function skip frames
// above init.
func (r *Registry) init(skip int, opts ...Option) *Logger {
	l := NewLogger(opts...)
	if l.threshold == LevelOff {
		return l
	}
	if err := r.Install(l); err != nil {
		module, line := caller(skip + 1)
		_ = l.sink.Error(l.formatter.render(Record{
			Level:   LevelError,
			Module:  module,
			Line:    line,
			Message: fmt.Sprintf("install logger: %v", err),
		}, l.clock.Now()))
		panic(err)
	}
	return l
}

// logf routes a formatted call to the installed logger. The skip
// argument counts the frames between the user and logf.
func (r *Registry) logf(skip int, lv Level, format string, args ...interface{}) {
	if l, ok := r.Logger(); ok && lv.EnabledUnder(r.MaxLevel()) {
		l.logf(skip+1, lv, format, args...)
	}
}

// Init creates a logger from the options and installs it into the
// default registry. See Registry.Init.
func Init(opts ...Option) *Logger {
	return defaultRegistry.init(1, opts...)
}

// Install installs l into the default registry.
func Install(l *Logger) error {
	return defaultRegistry.Install(l)
}

// Enabled reports whether the logger installed into the default
// registry would write a record of the given level.
func Enabled(lv Level) bool {
	return defaultRegistry.Enabled(lv)
}

// Errorf logs to the default registry at the Error level.
func Errorf(format string, args ...interface{}) {
	defaultRegistry.logf(1, LevelError, format, args...)
}

// Warnf logs to the default registry at the Warn level.
func Warnf(format string, args ...interface{}) {
	defaultRegistry.logf(1, LevelWarn, format, args...)
}

// Infof logs to the default registry at the Info level.
func Infof(format string, args ...interface{}) {
	defaultRegistry.logf(1, LevelInfo, format, args...)
}

// Debugf logs to the default registry at the Debug level.
func Debugf(format string, args ...interface{}) {
	defaultRegistry.logf(1, LevelDebug, format, args...)
}

// Tracef logs to the default registry at the Trace level.
func Tracef(format string, args ...interface{}) {
	defaultRegistry.logf(1, LevelTrace, format, args...)
}
