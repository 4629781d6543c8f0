package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/JaimeStill/delivery-demo/internal/config"
	"github.com/JaimeStill/delivery-demo/internal/routes"
	"github.com/JaimeStill/delivery-demo/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	handler http.Handler
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime := NewRuntime(cfg)

	routeSys := routes.New(runtime.Logger)
	if err := registerRoutes(routeSys, runtime, cfg); err != nil {
		return nil, fmt.Errorf("route registration failed: %w", err)
	}

	handler := buildMiddleware(runtime, cfg).Apply(routeSys.Build())

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"metrics", cfg.Metrics.IsEnabled(),
	)

	return &Server{
		runtime: runtime,
		handler: handler,
		http:    server.New(&cfg.Server, handler, runtime.Logger),
	}, nil
}

// Handler returns the fully assembled HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.runtime.Lifecycle.WaitForStartup()
	s.runtime.Logger.Info("all subsystems ready", "addr", s.http.Addr())
	return nil
}

// Addr returns the address the HTTP server is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}
