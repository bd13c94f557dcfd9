package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/edulearn/marketplace/internal/core/domain"
)

func newCoursesCommand(current func() *app) *cobra.Command {
	var (
		state      domain.QueryState
		sortBy     string
		categories bool
	)

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			catalog := current().catalog
			out := cmd.OutOrStdout()

			if categories {
				cats, err := catalog.Categories(ctx)
				if err != nil {
					return err
				}
				for _, c := range cats {
					fmt.Fprintln(out, c)
				}
				return nil
			}

			state.SortBy = domain.SortMode(sortBy)
			courses, err := catalog.Browse(ctx, state)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLEVEL\tDURATION\tPRICE\tRATING\tSTUDENTS")
			for _, c := range courses {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t$%.2f\t%.1f\t%d\n",
					c.ID, c.Title, c.Category, c.Difficulty,
					domain.FormatDuration(c.DurationMinutes), c.Price, c.Rating, c.EnrolledCount)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d course(s)\n", len(courses))
			return nil
		},
	}

	cmd.Flags().StringVarP(&state.Query, "query", "q", "", "text matched against title and description")
	cmd.Flags().StringVar(&state.Category, "category", domain.FilterAll, "category filter")
	cmd.Flags().StringVar(&state.Difficulty, "difficulty", domain.FilterAll, "difficulty filter")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.SortPopular), "popular, rating, price-ascending or price-descending")
	cmd.Flags().BoolVar(&categories, "categories", false, "list categories instead of courses")
	return cmd
}
