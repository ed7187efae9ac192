package config

import (
	"fmt"
	"strings"

	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// Config holds the settings of a diversity analysis run.
type Config struct {
	// RawDir holds the raw tabular files to merge.
	RawDir string `mapstructure:"raw_dir"`
	// ProcessedPath is where the merged dataset is cached.
	ProcessedPath string `mapstructure:"processed_path"`
	Extension     string `mapstructure:"extension"`
	TopN          int    `mapstructure:"top_n"`
	ModelKind     string `mapstructure:"model_kind"`
	// StorePath is the SQLite report database. Empty keeps reports in memory.
	StorePath string `mapstructure:"store_path"`
	LogLevel  string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RawDir:        "../data/raw",
		ProcessedPath: "../data/processed/merged_tweets.csv",
		Extension:     ".csv",
		TopN:          10,
		ModelKind:     "lda",
		LogLevel:      "info",
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RawDir) == "" {
		return fmt.Errorf("raw_dir is empty: %w", internalerr.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ProcessedPath) == "" {
		return fmt.Errorf("processed_path is empty: %w", internalerr.ErrInvalidConfig)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d: %w", c.TopN, internalerr.ErrInvalidConfig)
	}
	if _, err := diversity.ParseKind(c.ModelKind); err != nil {
		return fmt.Errorf("model_kind: %v: %w", err, internalerr.ErrInvalidConfig)
	}
	return nil
}
