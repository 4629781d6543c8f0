package main

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/JaimeStill/delivery-demo/internal/config"
	"github.com/JaimeStill/delivery-demo/internal/lifecycle"
	"github.com/JaimeStill/delivery-demo/internal/site"
	"github.com/JaimeStill/delivery-demo/pkg/routes"
	"github.com/JaimeStill/delivery-demo/web/app"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, runtime *Runtime, cfg *config.Config) error {
	siteHandler := site.NewHandler(runtime.Logger, cfg.Forms.MaxSizeBytes())
	r.RegisterGroup(siteHandler.Routes())

	appHandler, err := app.NewHandler("")
	if err != nil {
		return fmt.Errorf("pages: %w", err)
	}
	r.RegisterGroup(appHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handleReadinessCheck(w, runtime.Lifecycle)
		},
	})

	if runtime.Metrics != nil {
		metricsRoute := routes.Route{
			Method:  "GET",
			Pattern: cfg.Metrics.Path,
			Handler: runtime.Metrics.Handler(),
		}
		if isRegistered(r, metricsRoute.Key("")) {
			return fmt.Errorf("metrics path %s conflicts with an existing route", cfg.Metrics.Path)
		}
		r.RegisterRoute(metricsRoute)
	}

	return nil
}

// isRegistered reports whether key is already claimed by a route or group.
func isRegistered(r routes.System, key string) bool {
	for _, route := range r.Routes() {
		if route.Key("") == key {
			return true
		}
	}
	for _, group := range r.Groups() {
		if slices.Contains(group.Keys(""), key) {
			return true
		}
	}
	return false
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
