package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvFormsMaxSize overrides the maximum accepted form body size.
const EnvFormsMaxSize = "FORMS_MAX_SIZE"

// FormsConfig bounds submitted form bodies.
type FormsConfig struct {
	// MaxSize is a human-readable byte size such as "1MB".
	MaxSize    string `toml:"max_size"`
	maxSizeVal int64
}

// MaxSizeBytes returns the parsed MaxSize. Valid only after Finalize.
func (c *FormsConfig) MaxSizeBytes() int64 {
	return c.maxSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the forms configuration.
func (c *FormsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *FormsConfig) Merge(overlay *FormsConfig) {
	if overlay.MaxSize != "" {
		c.MaxSize = overlay.MaxSize
	}
}

func (c *FormsConfig) loadDefaults() {
	if c.MaxSize == "" {
		c.MaxSize = "1MB"
	}
}

func (c *FormsConfig) loadEnv() {
	if v := os.Getenv(EnvFormsMaxSize); v != "" {
		c.MaxSize = v
	}
}

func (c *FormsConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	c.maxSizeVal = size
	return nil
}
