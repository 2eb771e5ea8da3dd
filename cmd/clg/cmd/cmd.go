// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethersphere/clg/pkg/console"
	"github.com/ethersphere/clg/pkg/log"
	"github.com/ethersphere/clg/pkg/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	optionNameVerbosity = "verbosity"
	optionNameColor     = "color"
	optionNameMetrics   = "metrics"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root     *cobra.Command
	config   *viper.Viper
	cfgFile  string
	homeDir  string
	registry *log.Registry
	clock    log.Clock
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "clg",
			Short:         "Leveled logging to the console",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}
	if c.registry == nil {
		c.registry = log.DefaultRegistry()
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()
	c.initEmitCmd()
	c.initDemoCmd()
	c.initLevelCmd()
	c.initVersionCmd()
	c.initConfigurateOptionsCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.clg.yaml)")
	globalFlags.String(optionNameVerbosity, "info", "log verbosity level off, error, warn, info, debug or trace")
	globalFlags.String(optionNameColor, "auto", "color the output: auto, always or never")
	globalFlags.Bool(optionNameMetrics, false, "print log metrics after the command")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".clg"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".clg" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("clg")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}

	if err := config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// verbosity returns the configured logger threshold.
func (c *command) verbosity() (log.Level, error) {
	v := c.config.GetString(optionNameVerbosity)
	l, err := log.ParseLevel(v)
	if err != nil {
		return log.LevelOff, fmt.Errorf("%s: %w", optionNameVerbosity, err)
	}
	return l, nil
}

// sink returns a console writing to the command outputs, styled as the
// color option asks.
func (c *command) sink(cmd *cobra.Command) (console.Sink, log.Style, error) {
	v := c.config.GetString(optionNameColor)
	style, ok := log.ParseStyle(v)
	if !ok {
		return nil, style, fmt.Errorf("%s: invalid value %q (want auto, always or never)", optionNameColor, v)
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var styled bool
	switch style {
	case log.StyleAlways:
		styled = true
	case log.StyleAuto:
		styled = terminal(out) && terminal(errOut)
	}
	return console.NewWriterSink(out, errOut, console.WithStyling(styled)), style, nil
}

// newLogger initializes the logger of the command, installing it unless
// the verbosity is off. The returned registry is non-nil only when
// metrics are requested.
func (c *command) newLogger(cmd *cobra.Command) (*log.Logger, metrics.MetricsRegistererGatherer, error) {
	verbosity, err := c.verbosity()
	if err != nil {
		return nil, nil, err
	}
	sink, style, err := c.sink(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := []log.Option{
		log.WithLevel(verbosity),
		log.WithSink(sink),
		log.WithStyle(style),
		log.WithClock(c.clock),
	}

	var reg metrics.MetricsRegistererGatherer
	if c.config.GetBool(optionNameMetrics) {
		hook := log.NewMetricsHook()
		reg = metrics.NewRegistry()
		reg.MustRegister(hook.Metrics()...)
		opts = append(opts, log.WithLevelHooks(log.LevelTrace, hook))
	}

	return c.registry.Init(opts...), reg, nil
}

// printMetrics writes the gathered metrics, if any, to the command output.
func printMetrics(cmd *cobra.Command, reg metrics.MetricsRegistererGatherer) error {
	if reg == nil {
		return nil
	}
	return metrics.WriteText(cmd.OutOrStdout(), reg)
}

// terminal reports whether w is a terminal.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
