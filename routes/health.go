package routes

import (
	"encoding/json"
	"net/http"

	"github.com/pmehta/healthtrack/store"
)

// HealthCheck reports liveness plus whether the record store had to fall
// back to defaults because its file was unreadable or corrupt. Recovery
// keeps the app usable; this flag is how a deployment notices the data loss.
func HealthCheck(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":          "ok",
			"store_recovered": st.Recovered(),
		})
	}
}
