package middleware

import (
	"encoding/json"
	"net/http"
)

type envelope map[string]any

// errorResponse writes {"error": message}. The middleware layer only ever
// reports generic failures, so encoding errors fall back to a bare status.
func errorResponse(w http.ResponseWriter, status int, message string) {
	js, err := json.Marshal(envelope{"error": message})
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}
