package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard-service/internal/entity"
)

type BoardRepo struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) *BoardRepo {
	return &BoardRepo{db}
}

func (r *BoardRepo) CreateBoard(ctx context.Context, board *entity.Board) error {
	if board.ID.IsZero() {
		board.ID = entity.NewID()
	}
	query := `INSERT INTO boards (id, title, owner_id, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, board.ID, board.Title, board.OwnerID, now())
	return err
}

func (r *BoardRepo) ListBoardsByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Board, error) {
	query := `SELECT id, title, owner_id FROM boards WHERE owner_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := []*entity.Board{}
	for rows.Next() {
		var board entity.Board
		if err := rows.Scan(&board.ID, &board.Title, &board.OwnerID); err != nil {
			return nil, err
		}
		boards = append(boards, &board)
	}
	return boards, rows.Err()
}

func (r *BoardRepo) FindOwned(ctx context.Context, ownerID, boardID entity.ID) (*entity.Board, error) {
	var board entity.Board
	query := `SELECT id, title, owner_id FROM boards WHERE id = ? AND owner_id = ?`
	err := r.db.QueryRowContext(ctx, query, boardID, ownerID).Scan(&board.ID, &board.Title, &board.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("board %s: %w", boardID, ErrNotFound)
		}
		return nil, err
	}
	return &board, nil
}

// DeleteOwned removes the board only. Its todos are left for the caller.
func (r *BoardRepo) DeleteOwned(ctx context.Context, ownerID, boardID entity.ID) error {
	query := `DELETE FROM boards WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, query, boardID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("board %s: %w", boardID, ErrNotFound)
	}
	return nil
}
