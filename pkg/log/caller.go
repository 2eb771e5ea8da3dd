// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"runtime"
	"strings"
)

// caller returns the package path and line of the function skip frames
// above the caller of caller. Unknown values are reported as "" and 0.
func caller(skip int) (module string, line int) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		module = PackagePath(fn.Name())
	}
	return module, line
}

// PackagePath strips the function part from a fully qualified
// function name, e.g. "example.com/a/b.(*T).M" yields "example.com/a/b".
func PackagePath(name string) string {
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.IndexByte(name[slash+1:], '.'); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}
