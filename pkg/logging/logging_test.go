package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JaimeStill/delivery-demo/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_EnvCaseInsensitive(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", " WARN ")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelWarn {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelWarn)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want default %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"level", logging.Config{Level: "verbose"}},
		{"format", logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(nil); err == nil {
				t.Error("Finalize() should return error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	base.Merge(&logging.Config{Format: logging.FormatJSON})

	if base.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q (should not change)", base.Level, logging.LevelInfo)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (should merge)", base.Format, logging.FormatJSON)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	}, &buf)

	logger.Debug("hidden")
	logger.Info("visible", "key", "value")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "visible" {
		t.Errorf("msg = %v, want visible", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level    logging.Level
		expected string
	}{
		{logging.LevelDebug, "DEBUG"},
		{logging.LevelInfo, "INFO"},
		{logging.LevelWarn, "WARN"},
		{logging.LevelError, "ERROR"},
		{"unknown", "INFO"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel().String(); got != tt.expected {
				t.Errorf("ToSlogLevel() = %s, want %s", got, tt.expected)
			}
		})
	}
}
