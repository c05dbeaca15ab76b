// Package config holds configuration read from a TOML file, with
// defaults used when the file is absent, grounded on the teacher
// engine's internal/config package.
package config

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of engine-tunable settings (spec §5, §9).
type Config struct {
	Search SearchConfig
	Log    LogConfig
}

// SearchConfig controls the search (spec §4.5).
type SearchConfig struct {
	HashSizeMB    int
	MaxDepth      int
	UseTransposition bool
	UseLMR        bool
}

// LogConfig controls the go-logging backend (spec §9 ambient logging).
type LogConfig struct {
	Level       string
	SearchLevel string
}

// Default returns the engine's built-in configuration, used whenever no
// file is found or a field is left unset in one.
func Default() Config {
	return Config{
		Search: SearchConfig{
			HashSizeMB:       64,
			MaxDepth:         0,
			UseTransposition: true,
			UseLMR:           true,
		},
		Log: LogConfig{
			Level:       "INFO",
			SearchLevel: "INFO",
		},
	}
}

// Load reads path as TOML over a Default() base, so an incomplete file
// only overrides the fields it sets. A missing file is not an error -
// the engine falls back to defaults, as the teacher's Setup does.
func Load(path string) Config {
	c := Default()
	if path == "" {
		return c
	}
	if _, err := os.Stat(path); err != nil {
		return c
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		log.Printf("config: could not parse %s, using defaults: %v", path, err)
		return Default()
	}
	return c
}
