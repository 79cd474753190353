package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/localstore/docdb/pkg/domain"
)

// HandleCreate handles POST requests to create documents in a collection.
// The body may be a single JSON object or a JSON array of objects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleCreate called for collection '%s'", collName)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("ERROR: Reading body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	docs, err := decodeDocuments(body)
	if err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.repo(collName).Create(docs...)
	if err != nil {
		log.Printf("ERROR: Create failed for collection '%s': %v", collName, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("INFO: Created %d document(s) in collection '%s'", len(created), collName)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

var errNullDocument = errors.New("document must be a JSON object, not null")

// decodeDocuments accepts either one JSON object or an array of objects.
// JSON null unmarshals into a nil map without error, so it is rejected
// explicitly here.
func decodeDocuments(body []byte) ([]domain.Document, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []domain.Document
		if err := json.Unmarshal(body, &docs); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if doc == nil {
				return nil, errNullDocument
			}
		}
		return docs, nil
	}
	var doc domain.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errNullDocument
	}
	return []domain.Document{doc}, nil
}
