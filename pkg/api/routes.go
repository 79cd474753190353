package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Collection operations
	router.HandleFunc("/collections/{coll}", h.HandleCreate).Methods("POST")

	// Batch operations
	router.HandleFunc("/collections/{coll}/batch", h.HandleBatchUpdate).Methods("PATCH")
	router.HandleFunc("/collections/{coll}/batch", h.HandleBatchDelete).Methods("DELETE")

	// Document operations (by ID)
	router.HandleFunc("/collections/{coll}/documents/{id}", h.HandleUpdateById).Methods("PATCH")
	router.HandleFunc("/collections/{coll}/documents/{id}", h.HandleDeleteById).Methods("DELETE")

	// Find with optional filtering (query parameters)
	router.HandleFunc("/collections/{coll}/find", h.HandleFind).Methods("GET")

	// Health check
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
}
