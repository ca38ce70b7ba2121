// Package chessconfig loads engine tuning from a TOML file, falling
// back to built-in defaults when no file is given.
package chessconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the engine's tunable surface. Search constants that the
// specification fixes (quiescence thresholds, extension bound, mate
// scores) are NOT configurable here — only what a real deployment
// would plausibly want to vary per run.
type Config struct {
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

type SearchConfig struct {
	Depth   int `toml:"depth"`
	Workers int `toml:"workers"`
}

type LogConfig struct {
	// Level is one of zap's level names: debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Search: SearchConfig{Depth: 6, Workers: 4},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path and merges it over Default(); a missing path is not
// an error, it just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("chessconfig: decode %s: %w", path, err)
	}
	return cfg, nil
}
