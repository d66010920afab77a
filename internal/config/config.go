package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig []byte

// Config is the root configuration document.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Fetch   Fetch   `toml:"fetch"`
	Wiki    Wiki    `toml:"wiki"`
	Merge   Merge   `toml:"merge"`
	Logging Logging `toml:"logging"`
}

// Paths locates the catalog and working directories.
type Paths struct {
	CatalogPath string `toml:"catalog_path"`
	CacheDir    string `toml:"cache_dir"`
	LogDir      string `toml:"log_dir"`
}

// Fetch controls HTTP behavior for schedule and wiki retrieval.
type Fetch struct {
	UserAgent       string `toml:"user_agent"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	RequestDelayMS  int    `toml:"request_delay_ms"`
	CacheEnabled    bool   `toml:"cache_enabled"`
	CacheMaxAgeDays int    `toml:"cache_max_age_days"`
	StartDate       string `toml:"start_date"`
}

// Wiki names the wiki endpoints used for enrichment.
type Wiki struct {
	EpisodeListURL string `toml:"episode_list_url"`
	BaseURL        string `toml:"base_url"`
}

// Merge tunes duplicate resolution.
type Merge struct {
	PlaceholderPattern string `toml:"placeholder_pattern"`
}

// Logging selects log verbosity and output format.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file at the default location yields the default
// configuration; a missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize expands paths and trims string fields in place.
func (c *Config) normalize() error {
	var err error
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("expand catalog path: %w", err)
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("expand cache dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("expand log dir: %w", err)
	}

	c.Fetch.UserAgent = strings.TrimSpace(c.Fetch.UserAgent)
	c.Fetch.StartDate = strings.TrimSpace(c.Fetch.StartDate)
	c.Wiki.EpisodeListURL = strings.TrimSpace(c.Wiki.EpisodeListURL)
	c.Wiki.BaseURL = strings.TrimRight(strings.TrimSpace(c.Wiki.BaseURL), "/")
	c.Merge.PlaceholderPattern = strings.TrimSpace(c.Merge.PlaceholderPattern)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// EnsureDirectories creates the cache and log directories plus the catalog's
// parent directory.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Paths.CatalogPath),
		c.Paths.CacheDir,
		c.Paths.LogDir,
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the annotated sample configuration to path. It refuses
// to overwrite an existing file.
func CreateSample(path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return "", fmt.Errorf("config file already exists: %s", expanded)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, sampleConfig, 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return expanded, nil
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return filepath.Clean(path), nil
}
