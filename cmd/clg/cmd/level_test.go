// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethersphere/clg/cmd/clg/cmd"
)

func TestLevelCmd(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		want     string
		warnings int
	}{
		{"canonical", []string{"level", "debug"}, "Debug 4\n", 0},
		{"mixed case", []string{"level", "TrAcE"}, "Trace 5\n", 0},
		{"off", []string{"level", "OFF"}, "Off 0\n", 0},
		{"unknown", []string{"level", "verbose"}, "Info 3\n", 1},
		{"unknown with fallback", []string{"level", "loud", "--fallback", "warn"}, "Warn 2\n", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := newCommand(t,
				cmd.WithArgs(tc.args...),
				cmd.WithOutput(&out),
				cmd.WithErrorOutput(&errOut),
			).Execute(); err != nil {
				t.Fatal(err)
			}

			if have := out.String(); have != tc.want {
				t.Errorf("got output %q, want %q", have, tc.want)
			}
			if have := strings.Count(errOut.String(), "[Warn]"); have != tc.warnings {
				t.Errorf("got %d warnings, want %d: %q", have, tc.warnings, errOut.String())
			}
		})
	}
}

func TestLevelCmdInvalidFallback(t *testing.T) {
	err := newCommand(t,
		cmd.WithArgs("level", "info", "--fallback", "loud"),
		cmd.WithOutput(new(bytes.Buffer)),
		cmd.WithErrorOutput(new(bytes.Buffer)),
	).Execute()
	if err == nil {
		t.Fatal("want error for an invalid fallback")
	}
}

func TestLevelCmdColor(t *testing.T) {
	testCases := []struct {
		color string
		want  string
	}{
		{"always", "[\x1b[33;1mWarn\x1b[0m]"},
		{"never", "[Warn]"},
		{"auto", "[Warn]"},
	}

	for _, tc := range testCases {
		t.Run(tc.color, func(t *testing.T) {
			var errOut bytes.Buffer
			if err := newCommand(t,
				cmd.WithArgs("level", "verbose", "--color", tc.color),
				cmd.WithOutput(new(bytes.Buffer)),
				cmd.WithErrorOutput(&errOut),
			).Execute(); err != nil {
				t.Fatal(err)
			}

			have := errOut.String()
			if !strings.Contains(have, tc.want) {
				t.Errorf("warning %q does not contain %q", have, tc.want)
			}
			if tc.color != "always" && strings.Contains(have, "\x1b[") {
				t.Errorf("warning %q must not be styled", have)
			}
		})
	}
}
