package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for every non-2xx JSON response. Detail is
// a string for most failures and a list of field errors for validation
// failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail any) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}
