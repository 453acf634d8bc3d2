// Package service orchestrates title validation and todo storage. It is
// the only layer that talks to the store; handlers never reach past it.
package service

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/store"
)

// Service implements the todo operations on top of a Store.
type Service struct {
	store store.Store
}

// New creates a new Service backed by the given store.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// CreateTodo validates the title and creates a new todo.
func (s *Service) CreateTodo(ctx context.Context, title string) (*models.Todo, error) {
	trimmed, err := models.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	return s.store.CreateTodo(ctx, trimmed)
}

// ListTodos returns all todos in insertion order.
func (s *Service) ListTodos(ctx context.Context) ([]models.Todo, error) {
	return s.store.ListTodos(ctx)
}

// GetTodo retrieves a todo by id.
func (s *Service) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	return s.store.GetTodo(ctx, id)
}

// UpdateTodo applies a partial update. A nil field is left unchanged; a
// supplied title is validated first, so a blank title is a rejected
// update, never an implicit delete.
func (s *Service) UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*models.Todo, error) {
	if title != nil {
		trimmed, err := models.NormalizeTitle(*title)
		if err != nil {
			return nil, err
		}
		title = &trimmed
	}
	return s.store.UpdateTodo(ctx, id, title, completed)
}

// ToggleTodo flips the completed flag of a todo.
func (s *Service) ToggleTodo(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	flipped := !todo.Completed
	return s.store.UpdateTodo(ctx, id, nil, &flipped)
}

// DeleteTodo removes a todo by id.
func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	return s.store.DeleteTodo(ctx, id)
}

// ClearCompleted removes all completed todos and returns how many were
// removed. It never fails on an empty result.
func (s *Service) ClearCompleted(ctx context.Context) (int64, error) {
	return s.store.DeleteCompleted(ctx)
}

// CountActive returns the number of todos with completed=false.
func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.store.CountActive(ctx)
}

// CountTotal returns the number of todos.
func (s *Service) CountTotal(ctx context.Context) (int64, error) {
	return s.store.CountTotal(ctx)
}
