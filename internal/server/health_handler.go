package server

import (
	"encoding/json"
	"net/http"
)

// ServeHealth handles the "/health" route
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(map[string]string{
		"status": "ok",
	})
}
