package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/localstore/docdb/pkg/api"
	"github.com/localstore/docdb/pkg/domain"
	"github.com/localstore/docdb/pkg/repo"
	"github.com/localstore/docdb/pkg/storage"
)

// Server wires the HTTP router to a key-value store.
type Server struct {
	router  *mux.Router
	store   domain.Store
	handler *api.Handler
}

// NewServer creates a new instance of Server over the given store. The
// repository options are applied to every collection the API touches.
func NewServer(store domain.Store, repoOpts ...repo.Option) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		store:   store,
		handler: api.NewHandler(store, repoOpts...),
	}
	s.handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// LoadSnapshot restores store contents from a snapshot file, if one exists.
func (s *Server) LoadSnapshot(filename string) {
	if err := storage.Load(s.store, filename); err != nil {
		log.Printf("ERROR: Could not load snapshot from file %s: %v", filename, err)
	} else {
		log.Printf("INFO: Loaded snapshot from file %s successfully", filename)
	}
}

// SaveSnapshot writes the current store contents to a snapshot file.
func (s *Server) SaveSnapshot(filename string) {
	if err := storage.Save(s.store, filename); err != nil {
		log.Printf("ERROR: Could not save snapshot to file %s: %v", filename, err)
	} else {
		log.Printf("INFO: Saved snapshot to file %s successfully", filename)
	}
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
