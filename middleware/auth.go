package middleware

import "net/http"

// APIKey guards the API with a shared X-API-Key header check. The app is
// single-user and local by default, so an empty configured key disables the
// check entirely rather than locking the server out of the box.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" && r.Header.Get("X-API-Key") != key {
				http.Error(w, "Forbidden: Invalid API Key", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
