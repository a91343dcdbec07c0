package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as a JSON response with the given status. A value that
// cannot be encoded yields a 500 with a JSON error body instead.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "encoding response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// WriteError writes a standardised JSON error response. Extra fields (for
// example an error kind) are merged into the body next to "error".
func WriteError(w http.ResponseWriter, status int, msg string, extra ...map[string]string) {
	body := map[string]string{
		"error": msg,
	}
	for _, m := range extra {
		for k, v := range m {
			if k != "error" {
				body[k] = v
			}
		}
	}
	WriteJSON(w, status, body)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
