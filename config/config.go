// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultOutput is where the report is written when no path is given.
const DefaultOutput = "./audioinfo.txt"

type Config struct {
	Output  string // report path when not printing
	Verbose bool
	OnError string // "abort" or "skip"
	Workers int
}

type fileConfig struct {
	Output  string `toml:"output"`
	Verbose *bool  `toml:"verbose"`
	OnError string `toml:"on_error"`
	Workers int    `toml:"workers"`
}

// Load returns the defaults, overlaid by the config file and then by
// AUDIOINFO_* environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if configPath := configFilePath(); configPath != "" {
		if err := loadFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Output:  DefaultOutput,
		OnError: "abort",
		Workers: 1,
	}
}

func loadFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if fc.Output != "" {
		cfg.Output = expandTilde(fc.Output)
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.OnError != "" {
		cfg.OnError = fc.OnError
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("AUDIOINFO_OUTPUT"); v != "" {
		cfg.Output = expandTilde(v)
	}
	if v := os.Getenv("AUDIOINFO_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUDIOINFO_VERBOSE: %w", err)
		}
		cfg.Verbose = b
	}
	if v := os.Getenv("AUDIOINFO_ON_ERROR"); v != "" {
		cfg.OnError = v
	}
	if v := os.Getenv("AUDIOINFO_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("AUDIOINFO_WORKERS: want a positive integer, got %q", v)
		}
		cfg.Workers = n
	}

	return nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "audioinfo")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "audioinfo")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
