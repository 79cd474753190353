package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localstore/docdb/pkg/domain"
	"github.com/localstore/docdb/pkg/kv"
	"github.com/localstore/docdb/pkg/storage"
)

func TestServerEndToEnd(t *testing.T) {
	srv := NewServer(kv.NewMemoryStore())

	body := bytes.NewBufferString(`{"text":"hi"}`)
	req := httptest.NewRequest("POST", "/collections/notes", body)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/collections/notes/find", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var docs []domain.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "hi", docs[0]["text"])
	assert.NotEmpty(t, docs[0].ID())
}

func TestServerUnknownRoute(t *testing.T) {
	srv := NewServer(kv.NewMemoryStore())

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerSnapshotRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data"+storage.FileExtension)

	first := NewServer(kv.NewMemoryStore())
	req := httptest.NewRequest("POST", "/collections/notes", bytes.NewBufferString(`{"_id":"n1","text":"hi"}`))
	w := httptest.NewRecorder()
	first.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	first.SaveSnapshot(filename)

	second := NewServer(kv.NewMemoryStore())
	second.LoadSnapshot(filename)

	req = httptest.NewRequest("GET", "/collections/notes/find", nil)
	w = httptest.NewRecorder()
	second.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var docs []domain.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "n1", docs[0].ID())
}
