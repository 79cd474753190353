// Package repo implements a collection-scoped document repository over a
// key-value store. Each collection is one key whose value is a JSON array of
// documents, and every operation is a full-collection read-modify-write.
package repo

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/localstore/docdb/pkg/domain"
)

// Repository provides CRUD operations over one named collection.
//
// "Nothing matched" conditions (unknown or empty identifiers, empty batches)
// are reported through the returned count, never as an error. The only error
// class surfaced to callers is a failing store or a stored value that is not
// valid JSON; in both cases the operation aborts with no partial write.
type Repository struct {
	store   domain.Store
	name    string
	verbose bool
	newID   func() string

	// Serializes read-modify-write cycles so two writers on the same
	// Repository cannot lose each other's changes.
	mu sync.Mutex
}

// New creates a repository over the named collection in store.
func New(store domain.Store, collectionName string, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		name:  collectionName,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the collection name (the storage key).
func (r *Repository) Name() string {
	return r.name
}

// load reads and decodes the full collection. An absent key is an empty
// collection; a present but unparsable value aborts with ErrCorruptData.
func (r *Repository) load() ([]domain.Document, error) {
	raw, err := r.store.Get(r.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", r.name, err)
	}
	if raw == nil {
		return []domain.Document{}, nil
	}
	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("collection %s: %w: %v", r.name, domain.ErrCorruptData, err)
	}
	return docs, nil
}

// persist encodes and writes the full collection back to the store.
func (r *Repository) persist(docs []domain.Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", r.name, err)
	}
	if err := r.store.Set(r.name, raw); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", r.name, err)
	}
	return nil
}

// Read returns the documents in the collection, in stored order. If filter
// is non-empty, only documents where every filter key's value equals the
// document's value at that key are returned (conditions are ANDed).
func (r *Repository) Read(filter map[string]interface{}) ([]domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return docs, nil
	}
	matched := []domain.Document{}
	for _, doc := range docs {
		if MatchesFilter(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// Create appends the given documents to the collection and persists it.
// Documents without an identifier get a freshly generated random one;
// caller-supplied identifiers are preserved verbatim and are not checked
// for collisions. Returns the created documents with identifiers populated.
func (r *Repository) Create(docs ...domain.Document) ([]domain.Document, error) {
	if len(docs) == 0 {
		return []domain.Document{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load()
	if err != nil {
		return nil, err
	}
	created := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		stored := doc.Clone()
		if stored.ID() == "" {
			stored[domain.FieldID] = r.newID()
		}
		created = append(created, stored)
	}
	if err := r.persist(append(existing, created...)); err != nil {
		return nil, err
	}
	return created, nil
}

// Update merges the fields of updates into the document with the given
// identifier and persists the collection. An _id field inside updates is
// ignored; the identifier is immutable after creation. Returns the number
// of documents updated (0 or 1); an empty or unknown id is a no-op that
// leaves the stored value untouched.
func (r *Repository) Update(id string, updates domain.Document) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateLocked(id, updates)
}

func (r *Repository) updateLocked(id string, updates domain.Document) (int, error) {
	if id == "" {
		return 0, nil
	}
	if r.verbose {
		log.Printf("WARN: updating document '%s' in collection '%s'", id, r.name)
	}
	docs, err := r.load()
	if err != nil {
		return 0, err
	}
	for i, doc := range docs {
		if doc.ID() != id {
			continue
		}
		merged := doc.Clone()
		for key, value := range updates {
			if key == domain.FieldID {
				continue
			}
			merged[key] = value
		}
		docs[i] = merged
		if err := r.persist(docs); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

// UpdateMany applies Update once per entry, in input order, taking each
// entry's _id as the target and its remaining fields as the partial update.
// Returns the total number of documents updated. Not atomic: an error
// partway through leaves earlier updates persisted.
func (r *Repository) UpdateMany(entries []domain.Document) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for _, entry := range entries {
		n, err := r.updateLocked(entry.ID(), entry)
		if err != nil {
			return updated, err
		}
		updated += n
	}
	return updated, nil
}

// Delete removes the document with the given identifier and persists the
// collection. Returns the number of documents deleted (0 or 1); an empty
// or unknown id is a no-op.
func (r *Repository) Delete(id string) (int, error) {
	if id == "" {
		return 0, nil
	}
	return r.DeleteMany([]string{id})
}

// DeleteMany removes every document whose identifier is in ids and persists
// the collection once. Returns the number of documents deleted.
func (r *Repository) DeleteMany(ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			wanted[id] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return 0, err
	}
	kept := docs[:0]
	deleted := 0
	for _, doc := range docs {
		if _, ok := wanted[doc.ID()]; ok {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	if deleted == 0 {
		return 0, nil
	}
	if err := r.persist(kept); err != nil {
		return 0, err
	}
	return deleted, nil
}
