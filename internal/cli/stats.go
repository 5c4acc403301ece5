package cli

import (
	"moviecli/internal/api"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var pageSize int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Client.GetStats(cmd.Context(), pageSize)
			if err != nil {
				return err
			}
			return app.printJSON(res)
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", api.DefaultPageSize, "Page size echoed in the stats")
	return cmd
}
