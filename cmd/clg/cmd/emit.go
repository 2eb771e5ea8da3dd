// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/ethersphere/clg/pkg/log"
	"github.com/spf13/cobra"
)

const (
	optionNameSeverity = "severity"
	optionNameModule   = "module"
	optionNameLine     = "line"
)

func (c *command) initEmitCmd() {
	severity := log.LevelInfo

	cmd := &cobra.Command{
		Use:   "emit [message]",
		Short: "Write a log record to the console",
		Long: `Write a single log record to the console.

The record is written only if its severity is enabled under the configured
verbosity. Info and debug records go to standard output, all others to
standard error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := cmd.Flags().GetString(optionNameModule)
			if err != nil {
				return err
			}
			line, err := cmd.Flags().GetInt(optionNameLine)
			if err != nil {
				return err
			}

			logger, reg, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			c.registry.Log(log.Record{
				Level:   severity,
				Module:  module,
				Line:    line,
				Message: strings.Join(args, " "),
			})
			logger.Flush()

			return printMetrics(cmd, reg)
		},
	}

	cmd.Flags().Var(&severity, optionNameSeverity, "severity of the record: error, warn, info, debug or trace")
	cmd.Flags().String(optionNameModule, "", "module the record originates from")
	cmd.Flags().Int(optionNameLine, 0, "source line the record originates from")

	c.root.AddCommand(cmd)
}

func (c *command) initDemoCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Write one record of every severity",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, reg, err := c.newLogger(cmd)
			if err != nil {
				return err
			}

			logger.Tracef("Trace")
			logger.Debugf("DBG")
			logger.Infof("information")
			logger.Warnf("warning")
			logger.Errorf("panic")
			logger.Flush()

			return printMetrics(cmd, reg)
		},
	})
}
