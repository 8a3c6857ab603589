package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"waxcrate/internal/collection"
	"waxcrate/internal/config"
	"waxcrate/internal/discogs"
	"waxcrate/internal/events"
	"waxcrate/internal/importer"
	"waxcrate/internal/logging"
	"waxcrate/internal/spotify"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
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

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// ensureLogger builds a file-only logger so structured output never mixes
// with tables and JSON on stdout.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg := c.configValue()
		if cfg == nil || cfg.Paths.LogDir == "" {
			c.logger = logging.Nop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, "waxcrate.log")},
		})
		if err != nil {
			c.logger = logging.Nop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withStore opens the collection store for the duration of fn.
func (c *commandContext) withStore(fn func(*collection.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := collection.Open(cfg, c.ensureLogger())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// withService opens the store and builds the importer service with whichever
// metadata providers the configuration enables.
func (c *commandContext) withService(fn func(*importer.Service, *collection.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	return c.withStore(func(store *collection.Store) error {
		logger := c.ensureLogger()
		opts := []importer.Option{importer.WithLogger(logger)}

		if token := strings.TrimSpace(cfg.Discogs.Token); token != "" {
			client, err := discogs.New(token, cfg.Discogs.BaseURL)
			if err != nil {
				return err
			}
			opts = append(opts, importer.WithDiscogs(client))
		}
		if id := strings.TrimSpace(cfg.Spotify.ClientID); id != "" && strings.TrimSpace(cfg.Spotify.ClientSecret) != "" {
			client, err := spotify.New(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL, cfg.Spotify.BaseURL)
			if err != nil {
				return err
			}
			opts = append(opts, importer.WithSpotify(client))
		}

		bus := events.NewBus(logger)
		return fn(importer.NewService(store, bus, opts...), store)
	})
}
