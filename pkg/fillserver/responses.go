package fillserver

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON encodes payload into the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] writing JSON response: %v", err)
	}
}

// errorDetail is the body of every failure response.
type errorDetail struct {
	Detail string `json:"detail"`
}

// writeError reports a failure with a human-readable detail message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorDetail{Detail: msg})
}
