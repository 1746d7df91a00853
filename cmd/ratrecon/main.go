// Copyright (c) 2023 Colin McRae

// Command ratrecon reconstructs exact rationals from approximations with a
// known denominator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/predrag3141/ratrecon/internal/config"
	"github.com/predrag3141/ratrecon/internal/logging"
)

// errFailed is returned by commands when some reconstruction failed. The
// results have been printed already.
var errFailed = errors.New("reconstruction failed")

type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "ratrecon",
		Short: "Reconstruct exact rationals from approximations",
		Long: `ratrecon recovers a rational a/b, or a vector of rationals over a common
denominator, from approximations n/d with d known, given a bound on b.

Each result is reported with its confidence: guaranteed when it is the only
rational with denominator within the bound close enough to the input,
plausible when it is the best candidate but not provably unique, and failed
when no candidate exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath != "" {
				cfg, err := config.LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			logger, err := logging.New(a.cfg.Log, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(a.newScalarCmd())
	rootCmd.AddCommand(a.newVectorCmd())
	rootCmd.AddCommand(a.newDecimalCmd())
	rootCmd.AddCommand(a.newBatchCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
