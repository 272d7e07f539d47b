// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/diagnostics"
	"github.com/katalvlaran/matgen/gen"
)

// generateOptions are the flags of `matgen generate`.
type generateOptions struct {
	file    string
	workers int
	plotDir string
	format  string
}

// report is the per-job outcome printed by `matgen generate`.
type report struct {
	Name           string    `yaml:"name"`
	Family         string    `yaml:"family"`
	Rows           int       `yaml:"rows"`
	Cols           int       `yaml:"cols"`
	Rank           int       `yaml:"rank"`
	Measured       bool      `yaml:"measured"`
	Cond           float64   `yaml:"cond"`
	Norm           float64   `yaml:"spectral_norm"`
	SingularValues []float64 `yaml:"singular_values,flow"`
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the matrices listed in a YAML job file",
		Long: `Reads a YAML job file, builds every matrix concurrently and prints a
diagnostics summary (shape, rank, condition number, spectral norm).

Example:
  matgen generate -f jobs.yaml --workers 4 --plot-dir plots/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jf, err := readJobFile(o.file)
			if err != nil {
				return err
			}
			reports, err := runJobs(cmd.Context(), a.logger, jf, o)
			if err != nil {
				return err
			}
			return writeReports(cmd, reports, o.format)
		},
	}
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "YAML job file (required)")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", runtime.GOMAXPROCS(0), "maximum concurrent jobs")
	cmd.Flags().StringVar(&o.plotDir, "plot-dir", "", "write one singular-value plot per job into this directory")
	cmd.Flags().StringVar(&o.format, "format", "table", "output format: table or yaml")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runJobs generates every job of jf with at most o.workers in flight. The
// first failure cancels the remaining jobs. Reports keep the file order.
func runJobs(ctx context.Context, logger *zap.Logger, jf jobFile, o *generateOptions) ([]report, error) {
	if o.workers < 1 {
		return nil, fmt.Errorf("--workers must be >= 1, got %d", o.workers)
	}
	if o.plotDir != "" {
		if err := os.MkdirAll(o.plotDir, 0o755); err != nil {
			return nil, err
		}
	}

	reports := make([]report, len(jf.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range jf.Jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runJob(logger, jf, i)
			if err != nil {
				return err
			}
			if o.plotDir != "" {
				path := filepath.Join(o.plotDir, r.Name+".png")
				if err = savePlot(path, fmt.Sprintf("%s (%s)", r.Name, r.Family), r.SingularValues); err != nil {
					return fmt.Errorf("job %q: plot: %w", r.Name, err)
				}
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// runJob builds job i and measures it.
func runJob(logger *zap.Logger, jf jobFile, i int) (report, error) {
	j := jf.Jobs[i]
	spec, err := j.spec()
	if err != nil {
		return report{}, err
	}
	log := logger.With(zap.String("job", j.Name))

	var dst buffer.Dense
	res, next, err := gen.Generate(spec, &dst, jf.state(i), gen.WithLogger(log))
	if err != nil {
		return report{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	sv, err := diagnostics.SingularValues(dst.Data(), res.Rows, res.Cols, diagnostics.Full)
	if err != nil {
		return report{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	norm, _, err := diagnostics.SpectralNorm(dst.Data(), res.Rows, res.Cols, j.powerIters(), next)
	if err != nil {
		return report{}, fmt.Errorf("job %q: %w", j.Name, err)
	}

	cond := math.Inf(1)
	if last := sv[len(sv)-1]; last > 0 {
		cond = sv[0] / last
	}
	log.Info("job done",
		zap.Stringer("family", res.Family),
		zap.Int("rows", res.Rows),
		zap.Int("cols", res.Cols),
		zap.Int("rank", res.Rank),
		zap.Float64("cond", cond),
		zap.Float64("spectral_norm", norm),
	)

	return report{
		Name:           j.Name,
		Family:         res.Family.String(),
		Rows:           res.Rows,
		Cols:           res.Cols,
		Rank:           res.Rank,
		Measured:       res.Measured,
		Cond:           cond,
		Norm:           norm,
		SingularValues: sv,
	}, nil
}

// writeReports prints reports in the requested format.
func writeReports(cmd *cobra.Command, reports []report, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFAMILY\tSHAPE\tRANK\tCOND\tNORM")
		for _, r := range reports {
			rank := fmt.Sprint(r.Rank)
			if r.Measured {
				rank += "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\t%.3e\t%.6g\n", r.Name, r.Family, r.Rows, r.Cols, rank, r.Cond, r.Norm)
		}
		return tw.Flush()
	default:
		return errors.New("--format must be table or yaml")
	}
}
