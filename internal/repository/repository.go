package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"taskboard-service/internal/entity"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository stores user accounts keyed by email.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// BoardRepository stores boards. Lookups that take an owner match on both id
// and owner, so a board owned by someone else is reported as ErrNotFound.
type BoardRepository interface {
	CreateBoard(ctx context.Context, board *entity.Board) error
	ListBoardsByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Board, error)
	FindOwned(ctx context.Context, ownerID, boardID entity.ID) (*entity.Board, error)
	DeleteOwned(ctx context.Context, ownerID, boardID entity.ID) error
}

// TodoRepository stores todos. It does no ownership checks of its own.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo *entity.Todo) error
	GetTodoByID(ctx context.Context, id entity.ID) (*entity.Todo, error)
	ListTodosByBoard(ctx context.Context, boardID entity.ID) ([]*entity.Todo, error)
	UpdateTodo(ctx context.Context, todo *entity.Todo) error
	DeleteTodo(ctx context.Context, id entity.ID) error
	DeleteByBoard(ctx context.Context, boardID entity.ID) (int64, error)
}

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func now() int64 {
	return time.Now().UTC().UnixNano()
}
