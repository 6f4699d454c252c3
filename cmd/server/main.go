// Package main runs the price history API server: it loads the SQL dump
// into an in-memory dataset store and serves the read-only JSON endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"metals-tracker/internal/api"
	"metals-tracker/internal/dataset"
	"metals-tracker/internal/observability"
	"metals-tracker/internal/query"
	"metals-tracker/internal/storage/sqlite"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := flag.String("addr", ":"+port, "HTTP listen address")
	dumpPath := flag.String("sql-dump", os.Getenv("SQL_DUMP_PATH"), "Path to the SQL dump (default: search known locations)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	// Open the in-memory dataset store
	db, err := sqlite.Open(sqlite.MemoryDSN("metals"))
	if err != nil {
		logger.Fatalf("Failed to open dataset store: %v", err)
	}
	defer db.Close()

	// Bootstrap the dataset. A missing or broken dump is recorded and
	// reported by /api/health instead of aborting startup.
	initErr := loadDataset(db, *dumpPath, logger)
	observability.SetDatasetLoaded(initErr == "")

	// Create stores and the query layer
	current := sqlite.NewCurrentPriceStore(db)
	queries := query.New(
		sqlite.NewHistoricalPriceStore(db),
		current,
		sqlite.NewWeeklyAggregateStore(db),
		sqlite.NewMarketCycleStore(db),
	)

	server := api.NewServer(api.Options{
		Queries:      queries,
		CurrentStore: current,
		InitError:    initErr,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Starting HTTP server on %s", *addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Fatalf("Graceful shutdown failed: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}

	logger.Println("Shutdown complete")
}

// loadDataset finds and executes the SQL dump. It returns an empty
// string on success and a description of the failure otherwise.
func loadDataset(db *sqlite.DB, dumpPath string, logger *log.Logger) string {
	path := dumpPath
	if path == "" {
		located, err := dataset.Locate()
		if err != nil {
			logger.Printf("Dataset bootstrap failed: %v", err)
			return err.Error()
		}
		path = located
	}

	start := time.Now()
	if err := dataset.Load(context.Background(), db, path); err != nil {
		logger.Printf("Dataset bootstrap failed: %v", err)
		return err.Error()
	}

	logger.Printf("Dataset loaded from %s in %v", path, time.Since(start))
	return ""
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
