package main

import (
	"log/slog"

	"github.com/JaimeStill/delivery-demo/internal/config"
	"github.com/JaimeStill/delivery-demo/internal/lifecycle"
	"github.com/JaimeStill/delivery-demo/internal/metrics"
	"github.com/JaimeStill/delivery-demo/pkg/logging"
)

// Runtime holds the process-wide infrastructure shared by every subsystem.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.System
}

// NewRuntime builds the runtime. Metrics is nil when disabled by configuration.
func NewRuntime(cfg *config.Config) *Runtime {
	rt := &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
	if cfg.Metrics.IsEnabled() {
		rt.Metrics = metrics.New(cfg.Metrics.Namespace)
	}
	return rt
}
