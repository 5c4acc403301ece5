package cli

import (
	"encoding/json"
	"io"
	"strings"

	"moviecli/internal/api"
	"moviecli/internal/config"
	"moviecli/internal/tui"

	"github.com/spf13/cobra"
)

// App carries the resolved configuration and client to every subcommand.
type App struct {
	Cfg    config.Config
	Client *api.Client

	apiURL string
	Pretty bool
	out    io.Writer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "moviecli",
		Short:        "Movie catalog client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  moviecli

  # Scriptable commands
  moviecli movies list --q nolan --sort year --dir desc
  moviecli movies add --title "Dune" --director "Denis Villeneuve" --year 2021 --rating 8.1
  moviecli stats --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.Cfg)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		app.Cfg = config.Load()
		if v := strings.TrimSpace(app.apiURL); v != "" {
			app.Cfg.APIURL = strings.TrimRight(v, "/")
		}
		config.SetupLogging(app.Cfg)
		app.Client = api.NewClient(app.Cfg.APIURL, app.Cfg.Timeout)
		app.out = cmd.OutOrStdout()
	}

	cmd.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "Movie API base URL (overrides MOVIECLI_API_URL)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newMoviesCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func (app *App) printJSON(v any) error {
	enc := json.NewEncoder(app.out)
	if app.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
