package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todoapi/internal/models"
	"todoapi/internal/store"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	return New(store.NewMemoryStore())
}

func TestCreateTodo_Success(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "Learn Angular")
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	if todo.Title != "Learn Angular" {
		t.Errorf("expected title %q, got %q", "Learn Angular", todo.Title)
	}
	if todo.Completed {
		t.Error("expected new todo to be active")
	}
}

func TestCreateTodo_TrimsTitle(t *testing.T) {
	svc := setupTestService(t)

	todo, err := svc.CreateTodo(context.Background(), "  padded  ")
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if todo.Title != "padded" {
		t.Errorf("expected trimmed title, got %q", todo.Title)
	}
}

func TestCreateTodo_BlankTitleRejected(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTodo(ctx, "   ")

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != "NotBlank" {
		t.Errorf("expected code NotBlank, got %q", verr.Code)
	}

	// No record may be added on a rejected create.
	total, _ := svc.CountTotal(ctx)
	if total != 0 {
		t.Errorf("expected 0 todos after rejected create, got %d", total)
	}
}

func TestCreateTodo_OverlongTitleRejected(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.CreateTodo(context.Background(), strings.Repeat("a", 501))

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != "Size" {
		t.Errorf("expected code Size, got %q", verr.Code)
	}
}

func TestUpdateTodo_BlankTitleIsRejectedNotDeleted(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, "Keep me")

	blank := "   "
	_, err := svc.UpdateTodo(ctx, created.ID, &blank, nil)

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// The todo must survive a rejected update untouched.
	got, err := svc.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo failed: %v", err)
	}
	if got.Title != "Keep me" {
		t.Errorf("expected title to be unchanged, got %q", got.Title)
	}
}

func TestUpdateTodo_OmittedTitleUnchanged(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, "Original")

	completed := true
	updated, err := svc.UpdateTodo(ctx, created.ID, nil, &completed)
	if err != nil {
		t.Fatalf("UpdateTodo failed: %v", err)
	}
	if updated.Title != "Original" {
		t.Errorf("expected title to be unchanged, got %q", updated.Title)
	}
	if !updated.Completed {
		t.Error("expected todo to be completed")
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	svc := setupTestService(t)

	title := "Renamed"
	_, err := svc.UpdateTodo(context.Background(), 999, &title, nil)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleTodo_IsItsOwnInverse(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, "Flip me")

	once, err := svc.ToggleTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if !once.Completed {
		t.Error("expected todo to be completed after first toggle")
	}

	twice, err := svc.ToggleTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if twice.Completed != created.Completed {
		t.Error("expected two toggles to restore the original state")
	}
}

func TestToggleTodo_NotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.ToggleTodo(context.Background(), 999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTodo_ThenGetReportsNotFound(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, "Doomed")

	if err := svc.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	if _, err := svc.GetTodo(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestClearCompleted_NeverFails(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	removed, err := svc.ClearCompleted(ctx)
	if err != nil {
		t.Fatalf("ClearCompleted failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed from empty store, got %d", removed)
	}

	svc.CreateTodo(ctx, "A")
	b, _ := svc.CreateTodo(ctx, "B")
	svc.ToggleTodo(ctx, b.ID)

	removed, err = svc.ClearCompleted(ctx)
	if err != nil {
		t.Fatalf("ClearCompleted failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
}

func TestCounts_StayConsistent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	check := func(step string) {
		t.Helper()
		active, _ := svc.CountActive(ctx)
		total, _ := svc.CountTotal(ctx)
		todos, _ := svc.ListTodos(ctx)
		if total != int64(len(todos)) {
			t.Errorf("%s: total %d does not match list length %d", step, total, len(todos))
		}
		if active > total {
			t.Errorf("%s: active %d exceeds total %d", step, active, total)
		}
	}

	check("empty")
	a, _ := svc.CreateTodo(ctx, "A")
	svc.CreateTodo(ctx, "B")
	check("after creates")
	svc.ToggleTodo(ctx, a.ID)
	check("after toggle")
	svc.ClearCompleted(ctx)
	check("after clear")
	todos, _ := svc.ListTodos(ctx)
	for _, todo := range todos {
		svc.DeleteTodo(ctx, todo.ID)
	}
	check("after deletes")
}
