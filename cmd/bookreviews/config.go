// Command bookreviews: TOML configuration for dataset paths and report
// parameters. Flags override file values; file values override defaults.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the optional on-disk configuration.
//
//	[dataset]
//	books = "data/BX-Books.csv"
//	ratings = "data/BX-Book-Ratings.csv"
//	users = "data/BX-Users.csv"
//
//	[report]
//	top_authors = 10
//	state = "california"
//	country = "italy"
//	title = "Dracula"
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Report  ReportConfig  `toml:"report"`
}

// DatasetConfig locates the three corpus files.
type DatasetConfig struct {
	Books   string `toml:"books"`
	Ratings string `toml:"ratings"`
	Users   string `toml:"users"`
}

// ReportConfig parameterizes the full report.
type ReportConfig struct {
	TopAuthors int    `toml:"top_authors"`
	State      string `toml:"state"`
	Country    string `toml:"country"`
	Title      string `toml:"title"`
}

// defaultConfig mirrors the parameters of the original report run.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Books:   "data/BX-Books.csv",
			Ratings: "data/BX-Book-Ratings.csv",
			Users:   "data/BX-Users.csv",
		},
		Report: ReportConfig{
			TopAuthors: 10,
			State:      "california",
			Country:    "italy",
			Title:      "Dracula",
		},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path, if
// any path was given.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
