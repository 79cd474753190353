package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localstore/docdb/pkg/kv"
	"github.com/localstore/docdb/pkg/repo"
	"github.com/localstore/docdb/pkg/server"
	"github.com/localstore/docdb/pkg/storage"
)

func main() {
	// Command line flags
	var (
		port     = flag.String("port", "8080", "Server port")
		backend  = flag.String("backend", "file", "Store backend: memory, file, sqlite, badger")
		dataDir  = flag.String("data-dir", ".", "Data directory for storage")
		snapshot = flag.String("snapshot", "docdb_data"+storage.FileExtension, "Snapshot file path (memory backend only)")
		verbose  = flag.Bool("verbose", false, "Log a diagnostic for every update call")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocdb is a document repository over a local key-value store.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # File backend in the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -backend sqlite -data-dir /var/db # Single SQLite database\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -backend memory                   # Ephemeral, snapshot on shutdown\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSafety Note:\n")
		fmt.Fprintf(os.Stderr, "  With -backend memory, data is only saved to the snapshot file on\n")
		fmt.Fprintf(os.Stderr, "  graceful shutdown. Use a persistent backend for production data.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	store, err := kv.New(*backend, *dataDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("ERROR: Failed to close store: %v", err)
		}
	}()
	log.Printf("INFO: Using %s backend in %s", *backend, *dataDir)

	var repoOpts []repo.Option
	if *verbose {
		repoOpts = append(repoOpts, repo.WithVerboseLogging(true))
		log.Printf("INFO: Verbose update logging enabled")
	}

	srv := server.NewServer(store, repoOpts...)

	// The memory backend starts empty; restore the last snapshot if present.
	if *backend == "memory" {
		log.Printf("INFO: Loading snapshot from: %s", *snapshot)
		srv.LoadSnapshot(*snapshot)
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + *port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting docdb server on :%s", *port)
		log.Printf("API endpoints available at http://localhost:%s", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if *backend == "memory" {
		log.Printf("INFO: Saving snapshot to: %s", *snapshot)
		srv.SaveSnapshot(*snapshot)
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
