// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/ethersphere/clg/cmd/clg/cmd"
	"github.com/ethersphere/clg/pkg/log"
)

var homeDir string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "clg-cmd-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	homeDir = dir

	code := m.Run()
	if err := os.RemoveAll(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

var fixedClock = log.NewClock(
	func() time.Time { return time.Date(2026, time.October, 19, 9, 5, 3, 7e6, time.UTC) },
	func() (*time.Location, error) { return time.UTC, nil },
)

func newCommand(t *testing.T, opts ...cmd.Option) (c *cmd.Command) {
	t.Helper()

	c, err := cmd.NewCommand(append([]cmd.Option{
		cmd.WithHomeDir(homeDir),
		cmd.WithRegistry(log.NewRegistry()),
		cmd.WithClock(fixedClock),
	}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
