// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matgen/gen"
	"github.com/katalvlaran/matgen/spectrum"
)

// profileOptions are the flags of `matgen profile`.
type profileOptions struct {
	family string
	rank   int
	cols   int
	cond   float64
	floor  float64
	plot   string
}

func newProfileCmd(a *app) *cobra.Command {
	o := &profileOptions{}
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the singular-value profile of a spectrum family",
		Long: `Prints the singular values a spectrum family would embed, one per line,
followed by the condition number they encode.

Example:
  matgen profile --family exponential --rank 40 --cond 1e10 --plot exp.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, a.logger, o)
		},
	}
	cmd.Flags().StringVar(&o.family, "family", "polynomial", "polynomial, exponential, staircase or bad_cholqr")
	cmd.Flags().IntVarP(&o.rank, "rank", "k", 10, "number of leading values (rank)")
	cmd.Flags().IntVarP(&o.cols, "cols", "n", 0, "profile length for bad_cholqr (default: rank)")
	cmd.Flags().Float64VarP(&o.cond, "cond", "c", 1e3, "target condition number")
	cmd.Flags().Float64Var(&o.floor, "floor", spectrum.BadCholQRFloor, "bad_cholqr tail floor")
	cmd.Flags().StringVar(&o.plot, "plot", "", "also plot the profile to this file (.png, .svg, .pdf)")

	return cmd
}

func runProfile(cmd *cobra.Command, logger *zap.Logger, o *profileOptions) error {
	family, err := gen.ParseFamily(o.family)
	if err != nil {
		return err
	}
	if !(o.floor > 0) {
		return fmt.Errorf("--floor must be > 0, got %g", o.floor)
	}
	n := o.cols
	if n == 0 {
		n = o.rank
	}
	spec := gen.Spec{Rows: max(n, o.rank), Cols: n, Rank: o.rank, Family: family, CondNum: o.cond, Scaling: 1}
	if err = spec.Validate(); err != nil {
		return err
	}
	s, err := gen.Profile(spec, gen.WithBadCholQRFloor(o.floor))
	if err != nil {
		return err
	}
	ratio, err := spectrum.Ratio(s)
	if err != nil {
		return err
	}
	logger.Debug("profile computed", zap.Stringer("family", family), zap.Int("len", len(s)), zap.Float64("ratio", ratio))

	out := cmd.OutOrStdout()
	for i, v := range s {
		fmt.Fprintf(out, "%d\t%.17g\n", i, v)
	}
	fmt.Fprintf(out, "cond\t%.17g\n", ratio)

	if o.plot != "" {
		return savePlot(o.plot, fmt.Sprintf("%s k=%d cond=%g", family, o.rank, o.cond), s)
	}

	return nil
}
