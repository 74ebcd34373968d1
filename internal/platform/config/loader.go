package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader reads the project configuration from disk, layering environment
// variables over file values.
type Loader struct {
	useDotEnv bool
	path      string
}

func NewLoader() *Loader {
	return &Loader{useDotEnv: true}
}

// WithDotEnv toggles loading variables from a .env file before reading
// config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithPath pins the config file location instead of searching the default
// candidates.
func (l *Loader) WithPath(path string) *Loader {
	l.path = path
	return l
}

// Result captures the loaded configuration and its origin path. Path is
// empty when defaults were used.
type Result struct {
	Config *Config
	Path   string
}

var searchPaths = []string{".iconforge.yaml", ".iconforge.yml", "iconforge.yaml"}

// Load reads the config file, applies env overrides and validates the
// result. A missing file is only an error when a path was pinned
// explicitly; otherwise defaults apply.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()
	path := l.path
	if path == "" {
		path = os.Getenv("ICONFORGE_CONFIG")
	}

	if path != "" {
		if err := readInto(path, cfg); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range searchPaths {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := readInto(candidate, cfg); err != nil {
				return nil, err
			}
			path = candidate
			break
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

func readInto(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ICONFORGE_OUT"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("ICONFORGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ICONFORGE_QUALITY"); v != "" {
		if quality, err := strconv.Atoi(v); err == nil {
			cfg.Output.Quality = quality
		}
	}
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	if cfg.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if cfg.Output.Quality < 0 || cfg.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be within 0-100, got %d", cfg.Output.Quality)
	}
	if cfg.Output.Concurrency < 0 {
		return fmt.Errorf("output.concurrency must not be negative, got %d", cfg.Output.Concurrency)
	}
	if len(cfg.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	return nil
}
