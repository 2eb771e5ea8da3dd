// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

// Render exposes the formatter for tests.
func Render(styled bool, r Record, ts Timestamp) string {
	return newFormatter(styled).render(r, ts)
}
