// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Style selects whether log lines carry ANSI styling.
type Style int

const (
	// StyleAuto styles lines when the sink reports support for it.
	StyleAuto Style = iota
	// StyleAlways styles every line.
	StyleAlways
	// StyleNever renders plain lines.
	StyleNever
)

// ParseStyle returns the style named by s: auto, always or never.
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(s) {
	case "auto", "":
		return StyleAuto, true
	case "always":
		return StyleAlways, true
	case "never":
		return StyleNever, true
	}
	return StyleAuto, false
}

// formatter renders records into single lines of the form:
//
//	HH:MM:SS.mmm[Z] [Level] module:line message
type formatter struct {
	styles   map[Level]*color.Color
	fallback *color.Color
	line     *color.Color
}

// newFormatter returns a formatter. The styled flag applies to this
// formatter only and never touches the color package globals.
func newFormatter(styled bool) *formatter {
	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if styled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &formatter{
		styles: map[Level]*color.Color{
			LevelError: style(color.FgRed, color.Bold),
			LevelWarn:  style(color.FgYellow, color.Bold),
			LevelInfo:  style(color.FgGreen),
			LevelDebug: style(color.FgBlue),
		},
		fallback: style(color.FgCyan),
		line:     style(color.FgBlue),
	}
}

// render formats the record stamped with ts.
func (f *formatter) render(r Record, ts Timestamp) string {
	level, ok := f.styles[r.Level]
	if !ok {
		level = f.fallback
	}

	b := new(strings.Builder)
	b.Grow(32 + len(r.Module) + len(r.Message))
	pad(b, ts.Hour, 2)
	b.WriteByte(':')
	pad(b, ts.Minute, 2)
	b.WriteByte(':')
	pad(b, ts.Second, 2)
	b.WriteByte('.')
	pad(b, ts.Millisecond, 3)
	if ts.UTC {
		b.WriteByte('Z')
	}
	b.WriteString(" [")
	b.WriteString(level.Sprint(r.Level.String()))
	b.WriteString("] ")
	b.WriteString(r.Module)
	b.WriteByte(':')
	b.WriteString(f.line.Sprint(r.Line))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	return b.String()
}

// pad writes n zero-padded to width digits.
func pad(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
