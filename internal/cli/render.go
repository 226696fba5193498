package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishing-report-dashboard/internal/render"
)

func (a *app) newRenderCmd() *cobra.Command {
	var (
		out      string
		count    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard to a static HTML file",
		Long: "Write the dashboard to a static HTML file. With --count greater than one the\n" +
			"file is rewritten every --interval, each render continuing the previous charts.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}
			svc := a.service(cfg, logger)
			clock := clockwork.NewRealClock()

			var prev render.Charts
			for i := range count {
				if i > 0 && !wait(cmd.Context(), clock, interval) {
					return nil
				}
				page := svc.Build(cmd.Context(), prev)
				if err := writeFile(out, page); err != nil {
					return err
				}
				prev = page.Charts
				logger.Info("dashboard written", "path", out, "revision", page.Charts.Activity.Revision, "fallback", page.Fallback)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dashboard.html", "output HTML file")
	cmd.Flags().IntVar(&count, "count", 1, "number of renders")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "delay between renders")

	return cmd
}

func wait(ctx context.Context, clock clockwork.Clock, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-clock.After(d):
		return true
	}
}

// writeFile replaces path atomically so a browser never sees a partial page.
func writeFile(path string, page render.Page) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dashboard-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render.WritePage(tmp, page); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
