package main

import (
	"github.com/JaimeStill/delivery-demo/internal/config"
	"github.com/JaimeStill/delivery-demo/pkg/middleware"
)

// buildMiddleware creates the middleware stack. Logger and Metrics read the
// pattern ServeMux sets on the request, so nothing below RequestID may replace
// the request with a copy.
func buildMiddleware(runtime *Runtime, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	if runtime.Metrics != nil {
		middlewareSys.Use(middleware.Metrics(runtime.Metrics))
	}
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	return middlewareSys
}
