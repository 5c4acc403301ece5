package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"moviecli/internal/api"

	"github.com/spf13/cobra"
)

func newMoviesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List and manage movies",
	}
	cmd.AddCommand(newMoviesListCmd(app))
	cmd.AddCommand(newMoviesGetCmd(app))
	cmd.AddCommand(newMoviesAddCmd(app))
	cmd.AddCommand(newMoviesUpdateCmd(app))
	cmd.AddCommand(newMoviesDeleteCmd(app))
	return cmd
}

func newMoviesListCmd(app *App) *cobra.Command {
	var (
		page     int
		pageSize int
		q        string
		sort     string
		dir      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies (paginated JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := api.ListQuery{
				Page:     page,
				PageSize: pageSize,
				Q:        q,
				Sort:     sort,
				Dir:      dir,
			}
			res, err := app.Client.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			return app.printJSON(res)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", api.DefaultPageSize, "Page size (5, 10, 20 or 50)")
	cmd.Flags().StringVar(&q, "q", "", "Filter on title or director")
	cmd.Flags().StringVar(&sort, "sort", api.DefaultSort, "Sort field (title, director, year, rating)")
	cmd.Flags().StringVar(&dir, "dir", api.DefaultDir, "Sort direction (asc or desc)")
	return cmd
}

func newMoviesGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			mv, err := app.Client.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.printJSON(mv)
		},
	}
}

func movieFlags(cmd *cobra.Command, p *api.MoviePayload) {
	cmd.Flags().StringVar(&p.Title, "title", "", "Movie title")
	cmd.Flags().StringVar(&p.Director, "director", "", "Director name")
	cmd.Flags().StringVar(&p.Year, "year", "", "Release year")
	cmd.Flags().StringVar(&p.Rating, "rating", "", "Rating (0-10)")
	cmd.Flags().StringVar(&p.ImageURL, "image-url", "", "Poster image URL")
}

func newMoviesAddCmd(app *App) *cobra.Command {
	var p api.MoviePayload
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a movie",
		RunE: func(cmd *cobra.Command, args []string) error {
			mv, err := app.Client.Create(cmd.Context(), trimPayload(p))
			if err != nil {
				return renderFieldErrors(err)
			}
			return app.printJSON(mv)
		},
	}
	movieFlags(cmd, &p)
	return cmd
}

func newMoviesUpdateCmd(app *App) *cobra.Command {
	var p api.MoviePayload
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			mv, err := app.Client.Update(cmd.Context(), id, trimPayload(p))
			if err != nil {
				return renderFieldErrors(err)
			}
			return app.printJSON(mv)
		},
	}
	movieFlags(cmd, &p)
	return cmd
}

func newMoviesDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirmOnStdin(cmd, id) {
				// Declined: no request is made.
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			if err := app.Client.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func confirmOnStdin(cmd *cobra.Command, id int64) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "Delete movie %d? This cannot be undone. [y/N]: ", id)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id %q", s)
	}
	return id, nil
}

func trimPayload(p api.MoviePayload) api.MoviePayload {
	p.Title = strings.TrimSpace(p.Title)
	p.Director = strings.TrimSpace(p.Director)
	p.Year = strings.TrimSpace(p.Year)
	p.Rating = strings.TrimSpace(p.Rating)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	return p
}

// renderFieldErrors expands a structured validation failure into one line per
// field on stderr; other errors pass through untouched.
func renderFieldErrors(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.HasFieldErrors() {
		fmt.Fprintln(os.Stderr, apiErr.FieldSummary())
	}
	return err
}
