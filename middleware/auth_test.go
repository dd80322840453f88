package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func handle() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAPIKeyDisabledWhenEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	APIKey("")(handle()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want pass-through", rec.Code)
	}
}

func TestAPIKeyRejectsMissingOrWrongKey(t *testing.T) {
	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		rec := httptest.NewRecorder()
		APIKey("secret")(handle()).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("key %q: status = %d, want 403", key, rec.Code)
		}
	}
}

func TestAPIKeyAcceptsMatchingKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	APIKey("secret")(handle()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
