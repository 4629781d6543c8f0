// Package web provides infrastructure for serving HTML with Go templates.
// Templates are parsed once at startup so rendering does no per-request parsing.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/JaimeStill/delivery-demo/pkg/handlers"
)

// PageDef defines a page with its route and template file.
type PageDef struct {
	Route    string
	Template string
	Title    string
}

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by page template name.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates matching layoutGlob and clones
// them for each page found under pageSubdir. Any parse failure is returned
// immediately so a broken template stops startup.
func NewTemplateSet(layoutFS, pageFS fs.FS, layoutGlob, pageSubdir, basePath string, pages []PageDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	pageSub, err := fs.Sub(pageFS, pageSubdir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		if _, err := t.ParseFS(pageSub, p.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p.Template, err)
		}
		pageTemplates[p.Template] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// PageHandler returns an HTTP handler that renders the given page.
func (ts *TemplateSet) PageHandler(layout string, page PageDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Title:    page.Title,
			BasePath: ts.basePath,
		}
		if err := ts.Render(w, layout, page.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given page data.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}
	w.Header().Set("Content-Type", handlers.ContentTypeHTML)
	return t.ExecuteTemplate(w, layoutName, data)
}
