package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"todoapi/internal/config"
	"todoapi/internal/handlers"
	"todoapi/internal/service"
	"todoapi/internal/store"
)

func main() {
	// Configuration
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize store
	s, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer s.Close()

	// Initialize service and handlers
	svc := service.New(s)
	h := handlers.New(svc)

	// Create router
	r := newRouter(h, cfg.AllowedOrigins)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openStore picks the backend: SQLite when a db path is configured, the
// in-memory store otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DBPath == "" {
		log.Printf("Using in-memory store")
		return store.NewMemoryStore(), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	log.Printf("Using SQLite store at %s", cfg.DBPath)
	return store.NewSQLiteStore(cfg.DBPath)
}

func newRouter(h *handlers.Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Todo API routes
	r.Get("/todos", h.ListTodos)
	r.Post("/todos", h.CreateTodo)
	r.Put("/todos/{id}", h.UpdateTodo)
	r.Delete("/todos/{id}", h.DeleteTodo)
	r.Put("/todos/{id}/toggle", h.ToggleTodo)
	r.Delete("/todos/completed", h.ClearCompleted)
	r.Get("/todos/count/active", h.CountActive)
	r.Get("/todos/count/total", h.CountTotal)

	r.Get("/health", h.HealthCheck)

	return r
}
