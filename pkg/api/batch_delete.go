package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// BatchDeleteRequest represents the request body for batch delete operations
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BatchDeleteResponse represents the response for batch delete operations
type BatchDeleteResponse struct {
	Deleted    int    `json:"deleted"`
	Collection string `json:"collection"`
}

// HandleBatchDelete handles DELETE requests to remove multiple documents by ID.
func (h *Handler) HandleBatchDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleBatchDelete called for collection '%s'", collName)

	var req BatchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := h.repo(collName).DeleteMany(req.IDs)
	if err != nil {
		log.Printf("ERROR: Batch delete failed for collection '%s': %v", collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("INFO: Batch deleted %d document(s) from collection '%s'", count, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BatchDeleteResponse{Deleted: count, Collection: collName})
}
