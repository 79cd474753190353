package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// DeleteResponse reports how many documents a delete removed.
type DeleteResponse struct {
	Deleted    int    `json:"deleted"`
	Collection string `json:"collection"`
}

// HandleDeleteById handles DELETE requests to remove a specific document by ID.
// An unknown id is not an error; the response carries a zero count.
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]
	docId := vars["id"]

	log.Printf("INFO: handleDeleteById called for collection '%s', document '%s'", collName, docId)

	count, err := h.repo(collName).Delete(docId)
	if err != nil {
		log.Printf("ERROR: Delete failed for document '%s' in collection '%s': %v", docId, collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("INFO: Deleted %d document(s) from collection '%s'", count, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DeleteResponse{Deleted: count, Collection: collName})
}
