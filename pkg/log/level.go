// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethersphere/clg/pkg/console"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value  = (*Level)(nil)
	_ fmt.Stringer = Level(0)
)

// Level specifies the severity of a record and, when used as a
// threshold, the verbosity of a logger. Levels are totally ordered
// from the least to the most verbose and their numeric value is
// the ordinal used for dispatching.
type Level int32

const (
	// LevelOff silences the logger.
	LevelOff Level = iota
	// LevelError allows only error messages to be printed.
	LevelError
	// LevelWarn allows only error and warning messages to be printed.
	LevelWarn
	// LevelInfo allows only error, warning and info messages to be printed.
	LevelInfo
	// LevelDebug allows error, warning, info and debug messages to be printed.
	LevelDebug
	// LevelTrace allows all messages to be printed.
	LevelTrace
)

var levelNames = [...]string{
	LevelOff:   "Off",
	LevelError: "Error",
	LevelWarn:  "Warn",
	LevelInfo:  "Info",
	LevelDebug: "Debug",
	LevelTrace: "Trace",
}

// Levels returns all levels in ascending order of verbosity.
func Levels() []Level {
	return []Level{LevelOff, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "Level(" + strconv.FormatInt(int64(l), 10) + ")"
}

// Ordinal returns the numeric encoding of the level, 0 for Off up to 5 for Trace.
func (l Level) Ordinal() int {
	return int(l)
}

// EnabledUnder reports whether a record of level l passes the threshold.
func (l Level) EnabledUnder(threshold Level) bool {
	return l <= threshold
}

func (l Level) valid() bool {
	return l >= LevelOff && l <= LevelTrace
}

// ParseError is returned when a text does not name a level.
type ParseError struct {
	Text string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("log: invalid level %q (want one of off, error, warn, info, debug, trace)", e.Text)
}

// ParseLevel returns the level named by s. The match is case-insensitive.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(l), nil
		}
	}
	return LevelOff, &ParseError{Text: s}
}

// ParseLevelOrWarn is like ParseLevel, but instead of returning the error
// it writes a warning line to the sink and reports false, leaving the
// choice of a fallback level to the caller. A failure of the sink is
// reported on os.Stderr.
func ParseLevelOrWarn(s string, sink console.Sink) (Level, bool) {
	l, err := ParseLevel(s)
	if err == nil {
		return l, true
	}
	module, line := caller(1)
	f := newFormatter(console.Styled(sink))
	msg := f.render(Record{
		Level:   LevelWarn,
		Module:  module,
		Line:    line,
		Message: err.Error(),
	}, defaultClock.Now())
	if err := Output(sink, LevelWarn.Ordinal(), msg); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("log: parse level: failed to write warning: %w", err))
	}
	return LevelOff, false
}

// MarshalText implements the encoding.TextMarshaler interface.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("log: marshal level: %s out of range", l)
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Set implements the pflag.Value interface.
func (l *Level) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

// Type implements the pflag.Value interface.
func (l *Level) Type() string {
	return "level"
}
