// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging bridges logrus onto the console logger, so that code
// written against logrus writes its entries through a *log.Logger.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethersphere/clg/pkg/log"
	"github.com/sirupsen/logrus"
)

// ModuleKey is the entry field that, when set to a string, overrides
// the module the record is attributed to.
const ModuleKey = "module"

var _ logrus.Hook = (*Hook)(nil)

// Hook is a logrus.Hook forwarding every entry to a console logger.
type Hook struct {
	logger *log.Logger
}

// NewHook returns a Hook writing to l.
func NewHook(l *log.Logger) *Hook {
	return &Hook{logger: l}
}

// Levels implements the logrus.Hook interface.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements the logrus.Hook interface.
func (h *Hook) Fire(e *logrus.Entry) error {
	lv := Level(e.Level)
	if !h.logger.Enabled(lv) {
		return nil
	}

	var r log.Record
	r.Level = lv
	if e.Caller != nil {
		r.Module = log.PackagePath(e.Caller.Function)
		r.Line = e.Caller.Line
	}
	if m, ok := e.Data[ModuleKey].(string); ok {
		r.Module = m
	}
	r.Message = message(e)

	h.logger.Log(r)
	return nil
}

// New returns a logrus logger whose entries are written only
// through l, filtered by the threshold of l.
func New(l *log.Logger) *logrus.Logger {
	lr := logrus.New()
	lr.SetOutput(io.Discard)
	lr.SetLevel(LogrusLevel(l.Level()))
	lr.AddHook(NewHook(l))
	return lr
}

// Level maps a logrus level onto a console level.
// Panic and Fatal are reported as errors.
func Level(l logrus.Level) log.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return log.LevelError
	case logrus.WarnLevel:
		return log.LevelWarn
	case logrus.InfoLevel:
		return log.LevelInfo
	case logrus.DebugLevel:
		return log.LevelDebug
	}
	return log.LevelTrace
}

// LogrusLevel maps a console threshold onto a logrus level.
// Off has no logrus equivalent and maps to the least verbose level.
func LogrusLevel(l log.Level) logrus.Level {
	switch l {
	case log.LevelError:
		return logrus.ErrorLevel
	case log.LevelWarn:
		return logrus.WarnLevel
	case log.LevelInfo:
		return logrus.InfoLevel
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelTrace:
		return logrus.TraceLevel
	}
	return logrus.PanicLevel
}

// message appends the entry fields, sorted by key, to the entry message.
func message(e *logrus.Entry) string {
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != ModuleKey {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return e.Message
	}
	sort.Strings(keys)

	b := new(strings.Builder)
	b.WriteString(e.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}
	return b.String()
}
