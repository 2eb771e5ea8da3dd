// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm
// +build js,wasm

// Command clg-wasm exposes the console logger to JavaScript. It defines
// the following globals:
//
//	_clg_newLogLevel(name)      level number for a case-insensitive name
//	_clg_ConsoleLogger(level)   installs a logger, returns its accessors
//	_clg_testLogger()           logs one record of every severity
package main

import (
	"syscall/js"

	"github.com/ethersphere/clg/pkg/console"
	"github.com/ethersphere/clg/pkg/log"
)

func main() {
	js.Global().Set("_clg_newLogLevel", js.FuncOf(newLogLevel))
	js.Global().Set("_clg_ConsoleLogger", js.FuncOf(consoleLogger))
	js.Global().Set("_clg_testLogger", js.FuncOf(testLogger))

	select {}
}

// newLogLevel returns the number of the named level, or undefined after
// a console warning when the name is unknown.
func newLogLevel(_ js.Value, args []js.Value) interface{} {
	if len(args) == 0 || args[0].Type() != js.TypeString {
		_ = console.Errorf("_clg_newLogLevel: want a level name")
		return js.Undefined()
	}
	lv, ok := log.ParseLevelOrWarn(args[0].String(), console.Default())
	if !ok {
		return js.Undefined()
	}
	return lv.Ordinal()
}

// consoleLogger initializes the global logger. A missing level means Info;
// Off creates the logger without installing it.
func consoleLogger(_ js.Value, args []js.Value) interface{} {
	lv := log.LevelInfo
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		n := args[0].Int()
		if n < log.LevelOff.Ordinal() || n > log.LevelTrace.Ordinal() {
			_ = console.Warnf("_clg_ConsoleLogger: level %d out of range, using Info", n)
		} else {
			lv = log.Level(n)
		}
	}

	l := log.Init(log.WithLevel(lv))
	return map[string]interface{}{
		"level":    l.LevelName(),
		"levelNum": l.LevelOrdinal(),
	}
}

func testLogger(_ js.Value, _ []js.Value) interface{} {
	log.Tracef("Trace")
	log.Debugf("DBG")
	log.Infof("information")
	log.Warnf("warning")
	log.Errorf("panic")
	return nil
}
