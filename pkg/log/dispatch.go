// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "github.com/ethersphere/clg/pkg/console"

// Output writes line to the console entry point matching the level
// ordinal: Error to error, Warn to warn, Info and Debug to info, and
// anything else to trace.
func Output(sink console.Sink, ordinal int, line string) error {
	switch ordinal {
	case 1:
		return sink.Error(line)
	case 2:
		return sink.Warn(line)
	case 3, 4:
		return sink.Info(line)
	default:
		return sink.Trace(line)
	}
}
