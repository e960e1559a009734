package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

/** @brief Logging configuration. */
type LogConfig struct {
	/** @brief One of debug, info, warn, error. */
	Level string `toml:"level"`
}

/** @brief Where P3D files are found and how they are loaded. */
type AssetsConfig struct {
	/** @brief Directory that relative file names are resolved against. */
	Root string `toml:"root"`
	/** @brief Files loaded at startup, in order. Later files override earlier ones. */
	Files []string `toml:"files"`
	/** @brief Reload files from Root when they change on disk. */
	Watch bool `toml:"watch"`
	/** @brief Number of decode workers. 1 decodes on the calling goroutine. */
	Workers int `toml:"workers"`
}

/** @brief Set chunk resolution. */
type SetsConfig struct {
	/** @brief Seed for the random candidate selection. 0 seeds from the clock. */
	Seed uint64 `toml:"seed"`
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Assets AssetsConfig `toml:"assets"`
	Sets   SetsConfig   `toml:"sets"`
}

// DefaultConfig is used for every key a config file leaves out.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			Root:    "assets",
			Workers: 1,
		},
	}
}

// LoadConfig reads a TOML config file on top of DefaultConfig. An empty
// path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ParseConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data into cfg, rejecting unknown keys.
func ParseConfig(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return fmt.Errorf("unknown keys:\n%s", strictErr.String())
		}
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Assets.Workers < 1 {
		return fmt.Errorf("assets.workers must be >= 1, got %d", c.Assets.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level %q is not a valid level", c.Log.Level)
	}
	return nil
}
