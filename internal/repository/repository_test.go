package repository

import (
	"context"
	"errors"
	"testing"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/testutil"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.SetupTestDB(t))

	user := &entity.User{Email: "a@x.com", PasswordHash: "hash"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID.IsZero() {
		t.Fatal("expected generated id")
	}

	t.Run("lookup by email", func(t *testing.T) {
		got, err := repo.GetUserByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if got.ID != user.ID || got.PasswordHash != "hash" {
			t.Fatalf("unexpected user %+v", got)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetUserByEmail(ctx, "nobody@x.com")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.CreateUser(ctx, &entity.User{Email: "a@x.com", PasswordHash: "other"})
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestBoardRepositoryOwnership(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardRepository(testutil.SetupTestDB(t))
	alice, bob := entity.NewID(), entity.NewID()

	work := &entity.Board{Title: "Work", OwnerID: alice}
	home := &entity.Board{Title: "Home", OwnerID: alice}
	for _, b := range []*entity.Board{work, home} {
		if err := repo.CreateBoard(ctx, b); err != nil {
			t.Fatalf("create board: %v", err)
		}
	}

	boards, err := repo.ListBoardsByOwner(ctx, alice)
	if err != nil {
		t.Fatalf("list boards: %v", err)
	}
	if len(boards) != 2 || boards[0].Title != "Work" || boards[1].Title != "Home" {
		t.Fatalf("expected boards in insertion order, got %+v", boards)
	}

	none, err := repo.ListBoardsByOwner(ctx, bob)
	if err != nil {
		t.Fatalf("list boards: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", none)
	}

	if _, err := repo.FindOwned(ctx, bob, work.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
	if got, err := repo.FindOwned(ctx, alice, work.ID); err != nil || got.Title != "Work" {
		t.Fatalf("find owned: %+v, %v", got, err)
	}

	if err := repo.DeleteOwned(ctx, bob, work.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting as non-owner, got %v", err)
	}
	if err := repo.DeleteOwned(ctx, alice, work.ID); err != nil {
		t.Fatalf("delete board: %v", err)
	}
	if err := repo.DeleteOwned(ctx, alice, work.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTodoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(testutil.SetupTestDB(t))
	boardID, otherBoard := entity.NewID(), entity.NewID()

	first := &entity.Todo{Content: "first", Status: entity.StatusPending, BoardID: boardID}
	second := &entity.Todo{Content: "second", Status: entity.StatusDone, BoardID: boardID}
	elsewhere := &entity.Todo{Content: "elsewhere", Status: entity.StatusPending, BoardID: otherBoard}
	for _, td := range []*entity.Todo{first, second, elsewhere} {
		if err := repo.CreateTodo(ctx, td); err != nil {
			t.Fatalf("create todo: %v", err)
		}
	}

	todos, err := repo.ListTodosByBoard(ctx, boardID)
	if err != nil {
		t.Fatalf("list todos: %v", err)
	}
	if len(todos) != 2 || todos[0].ID != first.ID || todos[1].ID != second.ID {
		t.Fatalf("unexpected todos %+v", todos)
	}

	first.Content = "edited"
	first.Status = entity.StatusInProgress
	if err := repo.UpdateTodo(ctx, first); err != nil {
		t.Fatalf("update todo: %v", err)
	}
	got, err := repo.GetTodoByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get todo: %v", err)
	}
	if got.Content != "edited" || got.Status != entity.StatusInProgress || got.BoardID != boardID {
		t.Fatalf("unexpected todo after update %+v", got)
	}

	n, err := repo.DeleteByBoard(ctx, boardID)
	if err != nil {
		t.Fatalf("delete by board: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
	if _, err := repo.GetTodoByID(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after cascade, got %v", err)
	}
	if _, err := repo.GetTodoByID(ctx, elsewhere.ID); err != nil {
		t.Fatalf("todo on other board should survive: %v", err)
	}

	if err := repo.DeleteTodo(ctx, elsewhere.ID); err != nil {
		t.Fatalf("delete todo: %v", err)
	}
	if err := repo.DeleteTodo(ctx, elsewhere.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := repo.UpdateTodo(ctx, elsewhere); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating deleted todo, got %v", err)
	}
}
