package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard-service/internal/entity"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db}
}

// CreateUser inserts user, assigning an ID when it has none.
func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = entity.NewID()
	}
	query := `INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, now())
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, email, password_hash FROM users WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}
