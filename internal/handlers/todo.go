package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"todoapi/internal/models"
)

// CreateTodoRequest is the body accepted by POST /todos.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest is the body accepted by PUT /todos/{id}. Omitted
// fields are left unchanged, so both are pointers.
type UpdateTodoRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ListTodos returns all todos.
func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		respondDomainError(w, r, 0, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	respondJSON(w, http.StatusOK, todos)
}

// CreateTodo creates a new todo.
func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMalformedJSON(w, r)
		return
	}

	todo, err := h.svc.CreateTodo(r.Context(), req.Title)
	if err != nil {
		respondDomainError(w, r, 0, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/todos/%d", todo.ID))
	respondJSON(w, http.StatusCreated, todo)
}

// UpdateTodo applies a partial update to a todo.
func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w, r)
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMalformedJSON(w, r)
		return
	}

	todo, err := h.svc.UpdateTodo(r.Context(), id, req.Title, req.Completed)
	if err != nil {
		respondDomainError(w, r, id, err)
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes a todo.
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w, r)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		respondDomainError(w, r, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTodo flips the completed flag of a todo.
func (h *Handlers) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w, r)
		return
	}

	todo, err := h.svc.ToggleTodo(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, id, err)
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

// ClearCompleted removes all completed todos.
func (h *Handlers) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.ClearCompleted(r.Context()); err != nil {
		respondDomainError(w, r, 0, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CountActive returns the number of active todos as a bare integer.
func (h *Handlers) CountActive(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountActive(r.Context())
	if err != nil {
		respondDomainError(w, r, 0, err)
		return
	}
	respondJSON(w, http.StatusOK, count)
}

// CountTotal returns the total number of todos as a bare integer.
func (h *Handlers) CountTotal(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountTotal(r.Context())
	if err != nil {
		respondDomainError(w, r, 0, err)
		return
	}
	respondJSON(w, http.StatusOK, count)
}

// HealthCheck reports service liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
