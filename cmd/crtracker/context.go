package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"crtracker/internal/catalog"
	"crtracker/internal/config"
	"crtracker/internal/fetch"
	"crtracker/internal/logging"
)

// commandContext lazily loads shared state (config, logger) once per
// invocation and hands commands their collaborators.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
	})
	return c.logger, c.loggerErr
}

// openCatalog acquires the catalog lock and loads the current snapshot.
// The returned release function must be called once the command is done
// with the store.
func (c *commandContext) openCatalog() (*catalog.Store, *catalog.Snapshot, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	store := catalog.NewStore(cfg.Paths.CatalogPath, logger)
	if err := store.Acquire(); err != nil {
		return nil, nil, nil, err
	}
	snap, err := store.Load()
	if err != nil {
		store.Release()
		if errors.Is(err, catalog.ErrStoreMissing) {
			return nil, nil, nil, fmt.Errorf("%w (run `crtracker catalog init` to create it)", err)
		}
		return nil, nil, nil, err
	}
	return store, snap, store.Release, nil
}

// loadCatalog loads the snapshot without taking the lock, for read-only
// commands.
func (c *commandContext) loadCatalog() (*catalog.Snapshot, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	snap, err := catalog.NewStore(cfg.Paths.CatalogPath, logger).Load()
	if err != nil && errors.Is(err, catalog.ErrStoreMissing) {
		return nil, fmt.Errorf("%w (run `crtracker catalog init` to create it)", err)
	}
	return snap, err
}

// newFetcher builds the HTTP fetcher, wiring in the page cache when
// enabled. The returned close function releases the cache database.
func (c *commandContext) newFetcher() (*fetch.Fetcher, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	var cache *fetch.Cache
	closeCache := func() {}
	if cfg.Fetch.CacheEnabled {
		maxAge := time.Duration(cfg.Fetch.CacheMaxAgeDays) * 24 * time.Hour
		cache, err = fetch.OpenCache(cfg.Paths.CacheDir, maxAge, logger)
		if err != nil {
			return nil, nil, err
		}
		closeCache = func() { cache.Close() }
	}
	return fetch.New(cfg.Fetch, cache, logger), closeCache, nil
}
