// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state out of package globals so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "matgen",
		Short: "Spectrum-controlled test matrix generator",
		Long: `matgen manufactures dense matrices with engineered singular-value
profiles (polynomial, exponential, staircase, bad_cholqr) as well as gaussian,
spiked and adversarial matrices, and reports condition number, numerical rank
and spectral norm for each one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
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
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCmd(a),
		newProfileCmd(a),
		newVersionCmd(),
	)

	return root
}
