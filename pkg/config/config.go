// Package config loads operator credentials and tool settings from the
// environment, with optional .env file support for local runs.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the commands need beyond their flags.
type Config struct {
	// EDLToken is a pre-issued Earthdata Login bearer token. When empty
	// the discover flow bootstraps one with the username/password pair.
	EDLToken    string `env:"EDL_TOKEN"`
	EDLUsername string `env:"EDL_USERNAME"`
	EDLPassword string `env:"EDL_PASSWORD"`

	// LaunchpadToken authenticates the association flows against the
	// CMR search application.
	LaunchpadToken string `env:"LAUNCHPAD_TOKEN"`

	SnapshotDir string        `env:"SNAPSHOT_DIR" envDefault:"."`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0"`
}

// Load reads configuration from the process environment. A .env file in
// the working directory is applied first if present; its absence is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
