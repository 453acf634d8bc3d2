package store

import (
	"context"
	"sync"
	"time"

	"todoapi/internal/models"
)

// MemoryStore implements the Store interface with an in-process list.
// A single mutex serializes mutations; reads hand out copies so callers
// never hold a reference into the live collection. Ids come from a
// monotonic counter and are never reused, even after deletion.
type MemoryStore struct {
	mu     sync.Mutex
	todos  []models.Todo
	nextID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// CreateTodo inserts a new todo at the end of the list.
func (s *MemoryStore) CreateTodo(_ context.Context, title string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	todo := models.Todo{
		ID:        s.nextID,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.todos = append(s.todos, todo)

	created := todo
	return &created, nil
}

// GetTodo retrieves a todo by id.
func (s *MemoryStore) GetTodo(_ context.Context, id int64) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	todo := s.todos[i]
	return &todo, nil
}

// ListTodos returns a snapshot of all todos in insertion order.
func (s *MemoryStore) ListTodos(_ context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Todo, len(s.todos))
	copy(snapshot, s.todos)
	return snapshot, nil
}

// UpdateTodo applies the non-nil fields to an existing todo.
func (s *MemoryStore) UpdateTodo(_ context.Context, id int64, title *string, completed *bool) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	if title != nil {
		s.todos[i].Title = *title
	}
	if completed != nil {
		s.todos[i].Completed = *completed
	}
	s.todos[i].UpdatedAt = time.Now()

	updated := s.todos[i]
	return &updated, nil
}

// DeleteTodo removes a todo by id.
func (s *MemoryStore) DeleteTodo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return nil
}

// DeleteCompleted removes all completed todos, preserving the relative
// order of the remaining active ones.
func (s *MemoryStore) DeleteCompleted(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.todos[:0]
	var removed int64
	for _, todo := range s.todos {
		if todo.Completed {
			removed++
			continue
		}
		kept = append(kept, todo)
	}
	s.todos = kept
	return removed, nil
}

// CountActive returns the number of todos with completed=false.
func (s *MemoryStore) CountActive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, todo := range s.todos {
		if !todo.Completed {
			count++
		}
	}
	return count, nil
}

// CountTotal returns the number of todos.
func (s *MemoryStore) CountTotal(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.todos)), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// indexOf returns the position of the todo with the given id, or -1.
// Callers must hold the mutex.
func (s *MemoryStore) indexOf(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}
