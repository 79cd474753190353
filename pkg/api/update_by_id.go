package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/localstore/docdb/pkg/domain"
)

// UpdateResponse reports how many documents an update touched.
type UpdateResponse struct {
	Updated    int    `json:"updated"`
	Collection string `json:"collection"`
}

// HandleUpdateById handles PATCH requests to merge fields into a document.
// An unknown id is not an error; the response carries a zero count.
func (h *Handler) HandleUpdateById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]
	docId := vars["id"]

	log.Printf("INFO: handleUpdateById called for collection '%s', document '%s'", collName, docId)

	var updates domain.Document
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := h.repo(collName).Update(docId, updates)
	if err != nil {
		log.Printf("ERROR: Update failed for document '%s' in collection '%s': %v", docId, collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("INFO: Updated %d document(s) in collection '%s'", count, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UpdateResponse{Updated: count, Collection: collName})
}
