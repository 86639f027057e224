// Command bookreviews: the report subcommands.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/albertoventurini/graph-book-reviews/bookreviews"
)

// newReportCmd runs the full report: the same sequence the corpus case
// study prints.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run the full report over the corpus",
		Args:  cobra.NoArgs,
		RunE: withGraph(func(cmd *cobra.Command, _ []string, cfg *Config, g *bookreviews.Graph) error {
			out := cmd.OutOrStdout()
			n := cfg.Report.TopAuthors

			ranked, err := bookreviews.AuthorsByReviewCount(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Top %d authors by number of reviews:\n", n)
			for _, a := range bookreviews.TopN(ranked, n) {
				fmt.Fprintf(out, "  %s %d\n", a.Name, a.Reviews)
			}

			fmt.Fprintf(out, "\nAverage ratings for the top %d authors:\n", n)
			for _, a := range bookreviews.TopN(ranked, n) {
				avg, err := bookreviews.AverageRatingByAuthor(g, a.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %s %f\n", a.Name, avg)
			}

			byRating, err := bookreviews.AuthorsByAverageRating(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTop %d authors by average rating:\n", n)
			for _, a := range bookreviews.TopN(byRating, n) {
				fmt.Fprintf(out, "  %s %g\n", a.Name, a.Rating)
			}

			inState, err := bookreviews.BooksReviewedInState(g, cfg.Report.State)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nBooks reviewed by users in %s: %d\n", cfg.Report.State, len(inState))
			for _, title := range inState {
				fmt.Fprintf(out, "  %s\n", title)
			}

			inCountry, err := bookreviews.BooksReviewedInCountry(g, cfg.Report.Country)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nBooks reviewed by users in %s: %d\n", cfg.Report.Country, len(inCountry))
			for _, title := range inCountry {
				fmt.Fprintf(out, "  %s\n", title)
			}

			avgAge, err := bookreviews.AverageAgeByTitle(g, cfg.Report.Title)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nAverage age of reviewers of %q: %g\n", cfg.Report.Title, avgAge)

			return nil
		}),
	}
}

func newTopAuthorsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top-authors",
		Short: "Rank authors by number of reviews",
		Args:  cobra.NoArgs,
		RunE: withGraph(func(cmd *cobra.Command, _ []string, _ *Config, g *bookreviews.Graph) error {
			ranked, err := bookreviews.AuthorsByReviewCount(g)
			if err != nil {
				return err
			}
			for _, a := range bookreviews.TopN(ranked, n) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", a.Name, a.Reviews)
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of authors to print")

	return cmd
}

func newAvgRatingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avg-rating <author>",
		Short: "Average rating across all reviews of an author's books",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(func(cmd *cobra.Command, args []string, _ *Config, g *bookreviews.Graph) error {
			avg, err := bookreviews.AverageRatingByAuthor(g, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", args[0], avg)
			return nil
		}),
	}
}

func newBooksInStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books-in-state <state>",
		Short: "Titles reviewed by users living in a state",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(func(cmd *cobra.Command, args []string, _ *Config, g *bookreviews.Graph) error {
			titles, err := bookreviews.BooksReviewedInState(g, args[0])
			if err != nil {
				return err
			}
			for _, title := range titles {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		}),
	}
}

func newBooksInCountryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books-in-country <country>",
		Short: "Titles reviewed by users living in a country",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(func(cmd *cobra.Command, args []string, _ *Config, g *bookreviews.Graph) error {
			titles, err := bookreviews.BooksReviewedInCountry(g, args[0])
			if err != nil {
				return err
			}
			for _, title := range titles {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		}),
	}
}

func newAvgAgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avg-age <title>",
		Short: "Average age of the reviewers of all books with a title",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(func(cmd *cobra.Command, args []string, _ *Config, g *bookreviews.Graph) error {
			avg, err := bookreviews.AverageAgeByTitle(g, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(avg, 'g', -1, 64))
			return nil
		}),
	}
}
