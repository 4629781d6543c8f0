package logging

import (
	"os"
	"strings"
)

// Env names the environment variables read by Finalize. The caller owns the
// naming, so a service can use LOGGING_LEVEL while tests use throwaway keys.
// An empty name is never looked up.
type Env struct {
	Level  string
	Format string
}

// Config is the [logging] section of a service configuration file.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge copies the overlay's level and format when they are set.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := lookup(env.Level); v != "" {
		c.Level = Level(strings.ToLower(v))
	}
	if v := lookup(env.Format); v != "" {
		c.Format = Format(strings.ToLower(v))
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(name))
}
