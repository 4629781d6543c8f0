package app_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/delivery-demo/internal/routes"
	"github.com/JaimeStill/delivery-demo/pkg/logging"
	"github.com/JaimeStill/delivery-demo/web/app"
)

func newMux(t *testing.T, basePath string) http.Handler {
	t.Helper()
	h, err := app.NewHandler(basePath)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	sys := routes.New(logging.Discard())
	sys.RegisterGroup(h.Routes())
	return sys.Build()
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPages(t *testing.T) {
	mux := newMux(t, "")

	tests := []struct {
		target   string
		contains []string
	}{
		{"/about", []string{"<h1>About</h1>", "continuous delivery"}},
		{"/details", []string{"<h1>Details</h1>", `href="/api/info"`}},
		{"/submit", []string{
			`<form method="post" action="/submit">`,
			`name="username"`,
			`name="email"`,
			`type="submit"`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(mux, tt.target)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
			}

			body := w.Body.String()
			if strings.Contains(body, "<html") || strings.Contains(body, "<!DOCTYPE") {
				t.Error("page should be a fragment, not a full document")
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

const aboutBody = `<section class="page" data-page="About">
<h1>About</h1>
<p>This small web application exists to exercise a continuous delivery pipeline.</p>
<p>Each change is built into a container image and rolled out by Argo CD from a Git repository, so the content served here shows which version is live.</p>
</section>`

const detailsBody = `<section class="page" data-page="Details">
<h1>Details</h1>
<p>Every route returns fixed content, which makes a deployment easy to verify from the outside.</p>
<ul>
  <li><a href="/">Greeting</a> returns plain text.</li>
  <li><a href="/api/info">API info</a> returns a JSON status object.</li>
  <li><a href="/submit">Submit</a> shows a form and echoes what you send.</li>
</ul>
</section>`

const submitBody = `<section class="page" data-page="Submit">
<h1>Submit</h1>
<form method="post" action="/submit">
  <label for="username">Username</label>
  <input type="text" id="username" name="username">
  <label for="email">Email</label>
  <input type="text" id="email" name="email">
  <input type="submit" value="Submit">
</form>
</section>`

func TestPages_ExactBody(t *testing.T) {
	mux := newMux(t, "")

	tests := []struct {
		target   string
		expected string
	}{
		{"/about", aboutBody},
		{"/details", detailsBody},
		{"/submit", submitBody},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := get(mux, tt.target).Body.String(); got != tt.expected {
				t.Errorf("body =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func TestPages_BasePath(t *testing.T) {
	w := get(newMux(t, "/demo"), "/submit")

	if !strings.Contains(w.Body.String(), `action="/demo/submit"`) {
		t.Errorf("form action should include base path: %s", w.Body.String())
	}
}

func TestPages_Idempotent(t *testing.T) {
	mux := newMux(t, "")

	for _, target := range []string{"/about", "/details", "/submit"} {
		first := get(mux, target).Body.Bytes()
		second := get(mux, target).Body.Bytes()
		if !bytes.Equal(first, second) {
			t.Errorf("%s: responses differ", target)
		}
	}
}

func TestPages_PostNotRouted(t *testing.T) {
	w := httptest.NewRecorder()
	newMux(t, "").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/about", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
