// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log implements a leveled logger that renders each record into
// a single human-readable line and routes it to a console entry point
// chosen by the record's severity.
//
// A process may install at most one Logger into a Registry, after which
// the package-level functions (Errorf, Warnf, ...) route to it. Loggers
// that are not installed can still be used directly.
package log

import (
	"github.com/ethersphere/clg/pkg/console"
)

// Record is a single log event.
type Record struct {
	Level Level
	// Module identifies the originating package; empty when unknown.
	Module string
	// Line is the originating source line; 0 when unknown.
	Line    int
	Message string
}

// Hook that is fired when logging
// on the associated severity log level.
// Note, the call must be non-blocking.
type Hook interface {
	Fire(Level) error
}

// levelHooks is a helper type for storing and
// help triggering the hooks on a logger instance.
type levelHooks map[Level][]Hook

// fire triggers all the hooks for the given level.
func (lh levelHooks) fire(level Level) error {
	for _, hook := range lh[level] {
		if err := hook.Fire(level); err != nil {
			return err
		}
	}
	return nil
}

// Options specifies parameters that affect logger behavior.
type Options struct {
	sink        console.Sink
	level       Level
	clock       Clock
	style       Style
	callerDepth int
	levelHooks  levelHooks
}

// Option represent Options parameters modifier.
type Option func(*Options)

// defaultOptions returns the options a logger starts from:
// Info verbosity, the default console and automatic styling.
func defaultOptions() *Options {
	return &Options{
		level: LevelInfo,
		style: StyleAuto,
	}
}

// WithLevel sets the threshold: records more verbose than l are discarded.
func WithLevel(l Level) Option {
	return func(opts *Options) { opts.level = l }
}

// WithSink tells the logger to write to the given sink
// instead of the default console.
func WithSink(sink console.Sink) Option {
	return func(opts *Options) { opts.sink = sink }
}

// WithClock tells the logger where to read record timestamps from.
func WithClock(c Clock) Option {
	return func(opts *Options) { opts.clock = c }
}

// WithStyle tells the logger whether to color the level and line fields.
func WithStyle(s Style) Option {
	return func(opts *Options) { opts.style = s }
}

// WithCallerDepth tells the logger the number of additional stack-frames
// to skip when attributing a formatted log call to a package and line.
// It is meant for wrappers around the logger.
func WithCallerDepth(depth int) Option {
	return func(opts *Options) { opts.callerDepth = depth }
}

// WithLevelHooks tells the logger to register and execute hooks for
// every severity enabled under l. Thus LevelTrace registers the hooks
// with each severity, while LevelOff registers nothing.
func WithLevelHooks(l Level, hooks ...Hook) Option {
	return func(opts *Options) {
		if opts.levelHooks == nil {
			opts.levelHooks = make(levelHooks)
		}
		for _, ml := range Levels() {
			if ml != LevelOff && ml.EnabledUnder(l) {
				opts.levelHooks[ml] = append(opts.levelHooks[ml], hooks...)
			}
		}
	}
}
