package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todoapi/internal/service"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	svc *service.Service
}

// New creates a new Handlers instance.
func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// parseID extracts and parses the integer id from URL parameters.
func parseID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	return strconv.ParseInt(idStr, 10, 64)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
