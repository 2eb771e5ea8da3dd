// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/ethersphere/clg/pkg/log"
	"github.com/spf13/cobra"
)

const optionNameFallback = "fallback"

func (c *command) initLevelCmd() {
	fallback := log.LevelInfo

	cmd := &cobra.Command{
		Use:   "level <name>",
		Short: "Print the canonical name and number of a level",
		Long: `Print the canonical name and number of a level.

Names are case-insensitive. An unknown name is reported as a warning
and the fallback level is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, _, err := c.sink(cmd)
			if err != nil {
				return err
			}

			lv, ok := log.ParseLevelOrWarn(args[0], sink)
			if !ok {
				lv = fallback
			}
			cmd.Printf("%s %d\n", lv, lv.Ordinal())
			return nil
		},
	}

	cmd.Flags().Var(&fallback, optionNameFallback, "level used when the name is unknown")

	c.root.AddCommand(cmd)
}
