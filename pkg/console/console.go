// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console provides the output surface of the logger: a set of
// named entry points (log, error, warn, info and trace) each accepting a
// single line of text. In a browser the entry points are the methods of
// the JavaScript console object, elsewhere they are backed by writers.
package console

import (
	"fmt"
	"strconv"
)

// Sink is the capability of writing a finished line to one of the
// console entry points. Implementations must not retry a failed call;
// the error is reported as is.
type Sink interface {
	Log(s string) error
	Error(s string) error
	Warn(s string) error
	Info(s string) error
	Trace(s string) error
}

// Styler is an optional interface a Sink may implement to tell whether
// it renders ANSI styling. A Sink that does not implement it is assumed
// to render styling.
type Styler interface {
	Styled() bool
}

// Channel names one of the console entry points.
type Channel int

const (
	ChannelLog Channel = iota
	ChannelError
	ChannelWarn
	ChannelInfo
	ChannelTrace
)

// String implements the fmt.Stringer interface.
func (c Channel) String() string {
	switch c {
	case ChannelLog:
		return "log"
	case ChannelError:
		return "error"
	case ChannelWarn:
		return "warn"
	case ChannelInfo:
		return "info"
	case ChannelTrace:
		return "trace"
	}
	return "Channel(" + strconv.Itoa(int(c)) + ")"
}

// Write sends s to the entry point of sink named by c.
func Write(sink Sink, c Channel, s string) error {
	switch c {
	case ChannelError:
		return sink.Error(s)
	case ChannelWarn:
		return sink.Warn(s)
	case ChannelInfo:
		return sink.Info(s)
	case ChannelTrace:
		return sink.Trace(s)
	}
	return sink.Log(s)
}

// Styled reports whether styling may be emitted to the sink.
func Styled(sink Sink) bool {
	if s, ok := sink.(Styler); ok {
		return s.Styled()
	}
	return true
}

// The helpers below write straight to the Default sink and are usable
// whether or not a logger has been installed.

// Logf formats according to a format specifier and writes to console.log.
func Logf(format string, args ...interface{}) error {
	return Default().Log(fmt.Sprintf(format, args...))
}

// Errorf formats according to a format specifier and writes to console.error.
func Errorf(format string, args ...interface{}) error {
	return Default().Error(fmt.Sprintf(format, args...))
}

// Warnf formats according to a format specifier and writes to console.warn.
func Warnf(format string, args ...interface{}) error {
	return Default().Warn(fmt.Sprintf(format, args...))
}

// Infof formats according to a format specifier and writes to console.info.
func Infof(format string, args ...interface{}) error {
	return Default().Info(fmt.Sprintf(format, args...))
}

// Tracef formats according to a format specifier and writes to console.trace.
func Tracef(format string, args ...interface{}) error {
	return Default().Trace(fmt.Sprintf(format, args...))
}
