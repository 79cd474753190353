package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleFind handles GET requests to read documents with filter criteria.
// Query parameters become exact-match filter conditions on top-level fields.
func (h *Handler) HandleFind(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleFind called for collection '%s'", collName)

	filter := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0] // Take first value if multiple provided
		}
	}

	docs, err := h.repo(collName).Read(filter)
	if err != nil {
		log.Printf("ERROR: Read failed for collection '%s': %v", collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	if len(filter) == 0 {
		log.Printf("INFO: Found %d documents in collection '%s' (no filter)", len(docs), collName)
	} else {
		log.Printf("INFO: Found %d documents in collection '%s' with filter %v", len(docs), collName, filter)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}
