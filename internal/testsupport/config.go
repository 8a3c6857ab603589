package testsupport

import (
	"path/filepath"
	"testing"

	"waxcrate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithDiscogsToken sets the Discogs token on the test config.
func WithDiscogsToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Discogs.Token = token
	}
}

// WithNtfyTopic sets the share ntfy topic on the test config.
func WithNtfyTopic(topic string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Share.NtfyTopic = topic
	}
}
