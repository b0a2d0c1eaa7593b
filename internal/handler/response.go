package handler

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the envelope shared by every endpoint: a success flag,
// a human-readable message, and operation-specific payload keys.
type apiResponse map[string]any

func successResponse(message string) apiResponse {
	return apiResponse{"success": true, "message": message}
}

func errorResponse(message string) apiResponse {
	return apiResponse{"success": false, "message": message}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; nothing more can be done here.
		return
	}
}
