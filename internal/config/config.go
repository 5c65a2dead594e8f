package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/stackmoxie/looksy-cog/internal/log"
)

const FileName = "cog.toml"

var (
	ErrEmptyName      = errors.New("cog name empty")
	ErrEmptyVersion   = errors.New("cog version empty")
	ErrEmptyListen    = errors.New("listen address empty")
	ErrInvalidTimeout = errors.New("looksy timeout must be positive")
)

type CogConfig struct {
	Name     string `toml:"name"`
	Label    string `toml:"label"`
	Version  string `toml:"version"`
	Homepage string `toml:"homepage"`
	AuthHelp string `toml:"auth_help"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type LooksyConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type Config struct {
	Cog    CogConfig    `toml:"cog"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Looksy LooksyConfig `toml:"looksy"`
}

func defaults() Config {
	return Config{
		Cog: CogConfig{
			Name:     "stackmoxie/looksy",
			Label:    "Looksy",
			Version:  "0.1.0",
			AuthHelp: "Point the cog at a running Looksy image comparison service.",
		},
		Server: ServerConfig{
			Listen: "0.0.0.0:28866",
		},
		Log: LogConfig{
			Level: "info",
		},
		Looksy: LooksyConfig{
			TimeoutSeconds: 60,
		},
	}
}

// Load reads <dir>/cog.toml over the defaults, then applies COG_LISTEN and
// COG_LOG_LEVEL from the environment. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := defaults()
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if v := os.Getenv("COG_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("COG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Cog.Name == "" {
		return ErrEmptyName
	}
	if c.Cog.Version == "" {
		return ErrEmptyVersion
	}
	if c.Server.Listen == "" {
		return ErrEmptyListen
	}
	if c.Looksy.TimeoutSeconds <= 0 {
		return ErrInvalidTimeout
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func (c *Config) LooksyTimeout() time.Duration {
	return time.Duration(c.Looksy.TimeoutSeconds) * time.Second
}
