package api

import (
	"sync"

	"github.com/localstore/docdb/pkg/domain"
	"github.com/localstore/docdb/pkg/repo"
)

// Handler provides HTTP handlers for the repository API. Repositories are
// created per collection on first use and reused so concurrent requests on
// the same collection share one read-modify-write lock.
type Handler struct {
	store    domain.Store
	repoOpts []repo.Option

	mu    sync.Mutex
	repos map[string]*repo.Repository
}

// NewHandler creates a new API handler over the given store. The options
// are applied to every per-collection repository.
func NewHandler(store domain.Store, repoOpts ...repo.Option) *Handler {
	return &Handler{
		store:    store,
		repoOpts: repoOpts,
		repos:    make(map[string]*repo.Repository),
	}
}

func (h *Handler) repo(collName string) *repo.Repository {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.repos[collName]; ok {
		return r
	}
	r := repo.New(h.store, collName, h.repoOpts...)
	h.repos[collName] = r
	return r
}
