// Package config resolves the runtime configuration: where the CSV
// snapshots live, where the GIF animations live, and which column joins
// snapshots. Values come from the environment (optionally seeded from a
// .env file by the CLI) with sensible defaults; flags may override them.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvSnapshotDir  = "STOCKFILTER_DATA_DIR"
	EnvAnimationDir = "STOCKFILTER_GIF_DIR"
	EnvKeyColumn    = "STOCKFILTER_KEY_COLUMN"
)

// Defaults mirror the layout the chart producer writes into.
const (
	DefaultSnapshotDir  = "public/data"
	DefaultAnimationDir = "public/data/rrg_gif"
	DefaultKeyColumn    = "symbol"
)

// Config carries the paths and join key. Paths are configuration, never
// hard-coded by callers.
type Config struct {
	SnapshotDir  string // directory of *.csv snapshots
	AnimationDir string // directory of *.gif animations
	KeyColumn    string // join key for reconciliation
}

// FromEnv builds a Config from the environment, falling back to
// defaults for unset or blank variables.
func FromEnv() Config {
	return Config{
		SnapshotDir:  envOr(EnvSnapshotDir, DefaultSnapshotDir),
		AnimationDir: envOr(EnvAnimationDir, DefaultAnimationDir),
		KeyColumn:    envOr(EnvKeyColumn, DefaultKeyColumn),
	}
}

// Validate checks that the configuration is usable. Directories are not
// required to exist (an empty data directory is an expected steady
// state), but none of the fields may be blank.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SnapshotDir) == "" {
		return fmt.Errorf("config error: snapshot directory must be non-empty")
	}
	if strings.TrimSpace(c.AnimationDir) == "" {
		return fmt.Errorf("config error: animation directory must be non-empty")
	}
	if strings.TrimSpace(c.KeyColumn) == "" {
		return fmt.Errorf("config error: key column must be non-empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
