package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/delivery-demo/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/fragment.html": {Data: []byte(`<section data-title="{{ .Title }}">{{ block "content" . }}{{ end }}</section>`)},
	"pages/home.html":       {Data: []byte(`{{ define "content" }}<p>Home Page</p><a href="{{ .BasePath }}/about">about</a>{{ end }}`)},
	"pages/about.html":      {Data: []byte(`{{ define "content" }}<p>About Page</p>{{ end }}`)},
	"pages/broken.html":     {Data: []byte(`{{ define "content" }}{{ .Missing {{ end }}`)},
}

var testPages = []web.PageDef{
	{Route: "/{$}", Template: "home.html", Title: "Home"},
	{Route: "/about", Template: "about.html", Title: "About"},
}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "pages", "/demo", testPages)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet(t *testing.T) {
	if ts := newTemplateSet(t); ts == nil {
		t.Fatal("NewTemplateSet() returned nil")
	}
}

func TestNewTemplateSetInvalidLayoutGlob(t *testing.T) {
	_, err := web.NewTemplateSet(testFS, testFS, "nonexistent/*.html", "pages", "", testPages)
	if err == nil {
		t.Error("NewTemplateSet() with invalid layout glob should return error")
	}
}

func TestNewTemplateSetMissingTemplate(t *testing.T) {
	pages := []web.PageDef{{Route: "/missing", Template: "nonexistent.html"}}
	_, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "pages", "", pages)
	if err == nil {
		t.Error("NewTemplateSet() with missing template should return error")
	}
}

func TestNewTemplateSetBrokenTemplate(t *testing.T) {
	pages := []web.PageDef{{Route: "/broken", Template: "broken.html"}}
	_, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "pages", "", pages)
	if err == nil {
		t.Error("NewTemplateSet() with unparsable template should return error")
	}
}

func TestRender(t *testing.T) {
	ts := newTemplateSet(t)
	w := httptest.NewRecorder()

	err := ts.Render(w, "fragment.html", "home.html", web.PageData{Title: "Test", BasePath: "/demo"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `data-title="Test"`) {
		t.Error("response does not contain title")
	}
	if !strings.Contains(body, "Home Page") {
		t.Error("response does not contain page content")
	}
	if !strings.Contains(body, `href="/demo/about"`) {
		t.Error("response does not contain basepath")
	}
}

func TestRenderNotFound(t *testing.T) {
	ts := newTemplateSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, "fragment.html", "nonexistent.html", web.PageData{}); err == nil {
		t.Error("Render() with nonexistent template should return error")
	}
}

func TestPageHandler(t *testing.T) {
	ts := newTemplateSet(t)
	handler := ts.PageHandler("fragment.html", testPages[1])

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "About Page") {
		t.Error("response does not contain page content")
	}
	if strings.Contains(body, "Home Page") {
		t.Error("pages should not share content blocks")
	}
}

func TestPageHandlerUnknownPage(t *testing.T) {
	ts := newTemplateSet(t)
	handler := ts.PageHandler("fragment.html", web.PageDef{Template: "unknown.html"})

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
