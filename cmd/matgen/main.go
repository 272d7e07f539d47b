// SPDX-License-Identifier: MIT
// Command matgen generates spectrum-controlled test matrices and reports
// their numerical diagnostics.
//
// Usage:
//
//	matgen generate -f jobs.yaml [--workers N] [--plot-dir DIR]
//	matgen profile --family polynomial --rank 50 --cond 1e6 [--plot FILE]
//	matgen version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "matgen:", err)
		stop()
		os.Exit(1)
	}
}
