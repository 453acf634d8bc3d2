package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"todoapi/internal/models"
	"todoapi/internal/store"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message          string                   `json:"message"`
	Details          string                   `json:"details"`
	Status           int                      `json:"status"`
	Timestamp        string                   `json:"timestamp"`
	CorrelationID    string                   `json:"correlationId"`
	Path             string                   `json:"path"`
	ValidationErrors []models.ValidationError `json:"validationErrors"`
}

// respondError writes a structured error body. validationErrors stays
// null unless field-level detail exists.
func respondError(w http.ResponseWriter, r *http.Request, code int, message, details string, validationErrors []models.ValidationError) {
	respondJSON(w, code, ErrorResponse{
		Message:          message,
		Details:          details,
		Status:           code,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		CorrelationID:    middleware.GetReqID(r.Context()),
		Path:             r.URL.Path,
		ValidationErrors: validationErrors,
	})
}

// respondDomainError maps a service failure to an HTTP response. The id
// is used for the not-found message and is ignored otherwise.
func respondDomainError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, r, http.StatusBadRequest, "Validation failed", verr.Message,
			[]models.ValidationError{*verr})
	case errors.Is(err, store.ErrNotFound):
		respondError(w, r, http.StatusNotFound,
			fmt.Sprintf("Todo not found with id: %d", id), "", nil)
	default:
		log.Printf("internal server error: %v", err)
		respondError(w, r, http.StatusInternalServerError, "Internal server error", "", nil)
	}
}

// respondInvalidID handles a non-numeric path id.
func respondInvalidID(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusBadRequest, "Invalid todo id", "id must be an integer", nil)
}

// respondMalformedJSON handles an unparseable request body. No field
// detail is included since no field could be parsed.
func respondMalformedJSON(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusBadRequest, "Malformed request body", "request body must be valid JSON", nil)
}
