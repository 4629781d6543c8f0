// Package site serves the demo's fixed text and JSON content and accepts
// the sign-up form submission.
package site

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/delivery-demo/pkg/handlers"
	"github.com/JaimeStill/delivery-demo/pkg/routes"
)

// Handler serves the site's non-HTML routes.
type Handler struct {
	logger      *slog.Logger
	maxFormSize int64
}

// NewHandler creates a handler that rejects form bodies over maxFormSize bytes.
func NewHandler(logger *slog.Logger, maxFormSize int64) *Handler {
	return &Handler{
		logger:      logger.With("handler", "site"),
		maxFormSize: maxFormSize,
	}
}

// Routes returns the route group for the site endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Description: "Fixed demo content and form submission",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.Home},
			{Method: "GET", Pattern: "/error", Handler: h.Error},
			{Method: "POST", Pattern: "/submit", Handler: h.Submit},
		},
		Children: []routes.Group{
			{
				Prefix: "/api",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/info", Handler: h.Info},
				},
			},
		},
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, Greeting)
}

func (h *Handler) Error(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, Apology)
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, CurrentInfo)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := ParseSubmission(w, r, h.maxFormSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.logger.Debug("form submitted", "username_len", len(sub.Username))
	handlers.RespondText(w, http.StatusOK, sub.Confirmation())
}
