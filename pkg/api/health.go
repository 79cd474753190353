package api

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Message string `json:"message"`
}

// HandleHealth handles GET requests to the health check endpoint. The
// response names the active store backend so operators can tell which
// persistence layer a deployment is running on.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Backend: h.store.String(),
		Message: "docdb is running",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
