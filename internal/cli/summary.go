package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishing-report-dashboard/internal/render"
)

func (a *app) newSummaryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}

			page := a.service(cfg, logger).Build(cmd.Context(), render.Charts{})
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}
			return render.WriteSummary(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dashboard view model as JSON")

	return cmd
}
