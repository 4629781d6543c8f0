package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/delivery-demo/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantLoc    string
	}{
		{"redirects get", http.MethodGet, "/about/", http.StatusMovedPermanently, "/about"},
		{"preserves query", http.MethodGet, "/about/?q=1", http.StatusMovedPermanently, "/about?q=1"},
		{"collapses repeated", http.MethodGet, "/details//", http.StatusMovedPermanently, "/details"},
		{"keeps method on post", http.MethodPost, "/submit/", http.StatusPermanentRedirect, "/submit"},
		{"all slashes", http.MethodGet, "///", http.StatusMovedPermanently, "/"},
		{"scheme relative host", http.MethodGet, "//evil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"many leading slashes", http.MethodGet, "////evil.example//", http.StatusMovedPermanently, "/evil.example"},
		{"leading backslash", http.MethodGet, "/%5Cevil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"preserves root", http.MethodGet, "/", http.StatusOK, ""},
		{"passes canonical", http.MethodGet, "/about", http.StatusOK, ""},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.TrimSlash()(handler)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if loc := w.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
			}
		})
	}
}
