package config

import (
	"fmt"
	"regexp"
	"time"
)

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	if err := c.validateWiki(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.CatalogPath == "" {
		return fmt.Errorf("paths.catalog_path must not be empty")
	}
	if c.Paths.CacheDir == "" {
		return fmt.Errorf("paths.cache_dir must not be empty")
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.UserAgent == "" {
		return fmt.Errorf("fetch.user_agent must not be empty")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.RequestDelayMS < 0 {
		return fmt.Errorf("fetch.request_delay_ms must not be negative, got %d", c.Fetch.RequestDelayMS)
	}
	if c.Fetch.CacheMaxAgeDays < 0 {
		return fmt.Errorf("fetch.cache_max_age_days must not be negative, got %d", c.Fetch.CacheMaxAgeDays)
	}
	if c.Fetch.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Fetch.StartDate); err != nil {
			return fmt.Errorf("fetch.start_date must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

func (c *Config) validateWiki() error {
	if c.Wiki.EpisodeListURL == "" {
		return fmt.Errorf("wiki.episode_list_url must not be empty")
	}
	if c.Wiki.BaseURL == "" {
		return fmt.Errorf("wiki.base_url must not be empty")
	}
	return nil
}

func (c *Config) validateMerge() error {
	if c.Merge.PlaceholderPattern == "" {
		return fmt.Errorf("merge.placeholder_pattern must not be empty")
	}
	if _, err := regexp.Compile(c.Merge.PlaceholderPattern); err != nil {
		return fmt.Errorf("merge.placeholder_pattern is not a valid regexp: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
