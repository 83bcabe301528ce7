package main

import (
	"context"
	"os"

	"github.com/gzm55/propreplace/cmd/propreplace/opts"
	"github.com/gzm55/propreplace/pkg/config"
	"github.com/gzm55/propreplace/pkg/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".propreplace.yaml", "rule config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures the zerolog logger based on flags
func setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	reporter := report.NewReporter(*zerolog.Ctx(ctx))

	cfg, err := config.LoadConfig(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Config:   cfg,
		Reporter: reporter,
	}, nil
}
