// Command bookreviews loads the BX book-review corpus into an in-memory
// property graph and answers traversal queries over it.

package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertoventurini/graph-book-reviews/bookreviews"
	"github.com/albertoventurini/graph-book-reviews/ingest"
)

var (
	flagConfig  string
	flagBooks   string
	flagRatings string
	flagUsers   string
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "bookreviews",
		Short: "Query the BX book-review corpus as an in-memory property graph",
		Long: `bookreviews parses the BX corpus (books, users, ratings) into a labelled
property graph and runs multi-hop traversal queries over it: author
rankings, average ratings, books reviewed per region, reviewer ages.

The graph is rebuilt from the CSV files on every invocation; there is no
persistence.`,
		SilenceUsage: true,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "TOML config file with dataset paths and report parameters")
	pf.StringVar(&flagBooks, "books", "", "books CSV file (overrides config)")
	pf.StringVar(&flagRatings, "ratings", "", "ratings CSV file (overrides config)")
	pf.StringVar(&flagUsers, "users", "", "users CSV file (overrides config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose (development) logging")

	rootCmd.AddCommand(
		newReportCmd(),
		newTopAuthorsCmd(),
		newAvgRatingCmd(),
		newBooksInStateCmd(),
		newBooksInCountryCmd(),
		newAvgAgeCmd(),
	)
}

// newLogger builds the process logger: human-readable in verbose mode,
// JSON otherwise.
func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// resolveConfig overlays the command-line flags on the file config.
func resolveConfig() (*Config, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagBooks != "" {
		cfg.Dataset.Books = flagBooks
	}
	if flagRatings != "" {
		cfg.Dataset.Ratings = flagRatings
	}
	if flagUsers != "" {
		cfg.Dataset.Users = flagUsers
	}

	return cfg, nil
}

// loadGraph parses the corpus and builds the graph, logging timings and
// sizes along the way.
func loadGraph(cfg *Config, logger *zap.Logger) (*bookreviews.Graph, error) {
	start := time.Now()
	ds, err := ingest.ParseDataset(cfg.Dataset.Books, cfg.Dataset.Ratings, cfg.Dataset.Users)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset parsed",
		zap.String("books_file", cfg.Dataset.Books),
		zap.String("ratings_file", cfg.Dataset.Ratings),
		zap.String("users_file", cfg.Dataset.Users),
		zap.String("books", humanize.Comma(int64(len(ds.Books)))),
		zap.String("ratings", humanize.Comma(int64(len(ds.Ratings)))),
		zap.String("users", humanize.Comma(int64(len(ds.Users)))),
		zap.Duration("took", time.Since(start)),
	)

	start = time.Now()
	g, err := bookreviews.NewGraph(ds)
	if err != nil {
		return nil, err
	}
	logger.Info("graph built",
		zap.String("nodes", humanize.Comma(int64(g.NodeCount()))),
		zap.String("edges", humanize.Comma(int64(g.EdgeCount()))),
		zap.Duration("took", time.Since(start)),
	)

	return g, nil
}

// withGraph wraps a query runner with logger setup, config resolution, and
// graph construction.
func withGraph(run func(cmd *cobra.Command, args []string, cfg *Config, g *bookreviews.Graph) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		g, err := loadGraph(cfg, logger)
		if err != nil {
			return err
		}

		return run(cmd, args, cfg, g)
	}
}
