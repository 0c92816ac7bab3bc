package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard-service/internal/entity"
)

type TodoRepo struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepo {
	return &TodoRepo{db}
}

func (r *TodoRepo) CreateTodo(ctx context.Context, todo *entity.Todo) error {
	if todo.ID.IsZero() {
		todo.ID = entity.NewID()
	}
	query := `INSERT INTO todos (id, content, status, board_id, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, todo.ID, todo.Content, string(todo.Status), todo.BoardID, now())
	return err
}

func (r *TodoRepo) GetTodoByID(ctx context.Context, id entity.ID) (*entity.Todo, error) {
	query := `SELECT id, content, status, board_id FROM todos WHERE id = ?`
	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return todo, nil
}

func (r *TodoRepo) ListTodosByBoard(ctx context.Context, boardID entity.ID) ([]*entity.Todo, error) {
	query := `SELECT id, content, status, board_id FROM todos WHERE board_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []*entity.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// UpdateTodo writes content and status. The board reference never changes.
func (r *TodoRepo) UpdateTodo(ctx context.Context, todo *entity.Todo) error {
	query := `UPDATE todos SET content = ?, status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, todo.Content, string(todo.Status), todo.ID)
	if err != nil {
		return err
	}
	return expectRow(res, "todo", todo.ID)
}

func (r *TodoRepo) DeleteTodo(ctx context.Context, id entity.ID) error {
	query := `DELETE FROM todos WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectRow(res, "todo", id)
}

// DeleteByBoard removes every todo of boardID and reports how many went.
func (r *TodoRepo) DeleteByBoard(ctx context.Context, boardID entity.ID) (int64, error) {
	query := `DELETE FROM todos WHERE board_id = ?`
	res, err := r.db.ExecContext(ctx, query, boardID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*entity.Todo, error) {
	var todo entity.Todo
	var status string
	if err := row.Scan(&todo.ID, &todo.Content, &status, &todo.BoardID); err != nil {
		return nil, err
	}
	todo.Status = entity.Status(status)
	return &todo, nil
}

func expectRow(res sql.Result, kind string, id entity.ID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
