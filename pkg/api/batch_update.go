package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/localstore/docdb/pkg/domain"
)

// BatchUpdateRequest represents the request body for batch update operations.
// Each entry carries the target _id plus the fields to merge.
type BatchUpdateRequest struct {
	Entries []domain.Document `json:"entries"`
}

// BatchUpdateResponse represents the response for batch update operations
type BatchUpdateResponse struct {
	Updated    int    `json:"updated"`
	Collection string `json:"collection"`
}

// HandleBatchUpdate handles PATCH requests to update multiple documents.
// Entries are applied in order and the response sums the per-entry counts.
func (h *Handler) HandleBatchUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleBatchUpdate called for collection '%s'", collName)

	var req BatchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := h.repo(collName).UpdateMany(req.Entries)
	if err != nil {
		log.Printf("ERROR: Batch update failed for collection '%s': %v", collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("INFO: Batch updated %d document(s) in collection '%s'", count, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BatchUpdateResponse{Updated: count, Collection: collName})
}
