// File: internal/handlers/common.go

// Package handlers implements the HTTP surface of the history platform:
// JSON catalog endpoints, account endpoints and the chat stream.
package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON sends a response in the platform's unified envelope.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code": status,
		"msg":  "success",
		"data": data,
	})
}

// writeError sends a JSON error in the platform's unified envelope.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code": status,
		"msg":  message,
	})
}
