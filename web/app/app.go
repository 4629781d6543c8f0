// Package app provides the HTML fragment pages with embedded templates.
package app

import (
	"embed"

	"github.com/JaimeStill/delivery-demo/pkg/routes"
	"github.com/JaimeStill/delivery-demo/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "fragment.html"

var views = []web.PageDef{
	{Route: "/about", Template: "about.html", Title: "About"},
	{Route: "/details", Template: "details.html", Title: "Details"},
	{Route: "/submit", Template: "submit.html", Title: "Submit"},
}

// Handler serves the pre-parsed pages.
type Handler struct {
	templates *web.TemplateSet
}

// NewHandler parses every page template. basePath prefixes links and the
// form action so the pages can be mounted under a sub-path.
func NewHandler(basePath string) (*Handler, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		views,
	)
	if err != nil {
		return nil, err
	}
	return &Handler{templates: ts}, nil
}

// Routes returns the route group for the HTML pages.
func (h *Handler) Routes() routes.Group {
	group := routes.Group{
		Description: "HTML fragment pages",
		Routes:      make([]routes.Route, 0, len(views)),
	}
	for _, view := range views {
		group.Routes = append(group.Routes, routes.Route{
			Method:  "GET",
			Pattern: view.Route,
			Handler: h.templates.PageHandler(layout, view),
		})
	}
	return group
}
