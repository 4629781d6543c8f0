package config

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"strconv"
)

const (
	EnvMetricsEnabled   = "METRICS_ENABLED"
	EnvMetricsPath      = "METRICS_PATH"
	EnvMetricsNamespace = "METRICS_NAMESPACE"
)

// metricsPath accepts literal multi-segment paths only. Wildcards, the bare
// root and trailing slashes cannot be served as a single GET route.
var metricsPath = regexp.MustCompile(`^(/[A-Za-z0-9._~-]+)+$`)

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled is a pointer so an absent key keeps the default of true.
	Enabled   *bool  `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// IsEnabled reports whether metrics are collected and served.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Finalize applies defaults, loads environment overrides, and validates the metrics configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled != nil {
		enabled := *overlay.Enabled
		c.Enabled = &enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *MetricsConfig) loadDefaults() {
	if c.Enabled == nil {
		enabled := true
		c.Enabled = &enabled
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "delivery_demo"
	}
}

func (c *MetricsConfig) loadEnv() error {
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid enabled %q: %w", v, err)
		}
		c.Enabled = &enabled
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.Namespace = v
	}
	return nil
}

func (c *MetricsConfig) validate() error {
	if !metricsPath.MatchString(c.Path) || path.Clean(c.Path) != c.Path {
		return fmt.Errorf("invalid path %q: must be a literal path like /metrics", c.Path)
	}
	return nil
}
