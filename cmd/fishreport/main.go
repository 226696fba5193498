package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/fishing-report-dashboard/internal/cli"
	"github.com/couchcryptid/fishing-report-dashboard/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{Metrics: observability.NewMetrics()})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fishreport:", err)
		stop()
		os.Exit(1)
	}
}
