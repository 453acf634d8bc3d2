package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/models"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given database path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	// AUTOINCREMENT keeps rowids monotonic so deleted ids are never
	// handed out again.
	schema := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTodo inserts a new todo and returns the created record.
func (s *SQLiteStore) CreateTodo(ctx context.Context, title string) (*models.Todo, error) {
	now := time.Now()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (title, completed, created_at, updated_at)
		VALUES (?, FALSE, ?, ?)
	`, title, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return &models.Todo{
		ID:        id,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetTodo retrieves a todo by id.
func (s *SQLiteStore) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	todo := &models.Todo{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos WHERE id = ?
	`, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// ListTodos retrieves all todos in insertion order.
func (s *SQLiteStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// UpdateTodo applies the non-nil fields to an existing todo.
func (s *SQLiteStore) UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		todo.Title = *title
	}
	if completed != nil {
		todo.Completed = *completed
	}
	todo.UpdatedAt = time.Now()

	_, err = s.db.ExecContext(ctx, `
		UPDATE todos SET title = ?, completed = ?, updated_at = ? WHERE id = ?
	`, todo.Title, todo.Completed, todo.UpdatedAt, todo.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo deletes a todo by id.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteCompleted removes all completed todos and returns how many were
// removed.
func (s *SQLiteStore) DeleteCompleted(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE completed = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed todos: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return removed, nil
}

// CountActive returns the number of todos with completed=false.
func (s *SQLiteStore) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE completed = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active todos: %w", err)
	}
	return count, nil
}

// CountTotal returns the number of todos.
func (s *SQLiteStore) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}
