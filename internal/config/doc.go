// Package config loads and validates waxcrate's TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/waxcrate/config.toml, then ./waxcrate.toml, falling back to
// defaults when no file exists. Provider credentials can come from the
// environment (optionally via a .env file) and take precedence over the file,
// so tokens never need to live in checked-in configuration.
package config
