package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

func (a *app) newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Fetch the live report document and list fields that will be defaulted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}

			// No fallback here: an unusable source is the thing being checked.
			doc, err := a.feed(cfg, logger).Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", cfg.ReportsSource, err)
			}

			out := cmd.OutOrStdout()
			issues := domain.Validate(doc)
			fmt.Fprintf(out, "%d reports, last updated %s\n", len(doc.Reports), domain.Summarize(doc, domain.DefaultLimits()).LastUpdated)
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}
			if len(issues) == 0 {
				fmt.Fprintln(out, "no issues")
				return nil
			}
			if strict {
				return fmt.Errorf("%d issues found", len(issues))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any issue is found")

	return cmd
}
