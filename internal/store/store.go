package store

import (
	"context"
	"errors"

	"todoapi/internal/models"
)

// ErrNotFound is returned when no todo exists with the requested id.
var ErrNotFound = errors.New("todo not found")

// Store defines the interface for todo persistence operations.
type Store interface {
	// CreateTodo inserts a new todo with the given title, assigns a
	// fresh id, and returns the created record.
	CreateTodo(ctx context.Context, title string) (*models.Todo, error)

	// GetTodo retrieves a todo by id.
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)

	// ListTodos returns all todos in insertion order.
	ListTodos(ctx context.Context) ([]models.Todo, error)

	// UpdateTodo applies the non-nil fields to the todo with the given
	// id and returns the updated record.
	UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*models.Todo, error)

	// DeleteTodo removes a todo by id.
	DeleteTodo(ctx context.Context, id int64) error

	// DeleteCompleted removes all completed todos and returns how many
	// were removed.
	DeleteCompleted(ctx context.Context) (int64, error)

	// Counts
	CountActive(ctx context.Context) (int64, error)
	CountTotal(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
}
