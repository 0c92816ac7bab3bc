package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// The DDL below is accepted by both MySQL and SQLite.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS boards (
		id VARCHAR(36) PRIMARY KEY,
		title TEXT NOT NULL,
		owner_id VARCHAR(36) NOT NULL,
		created_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id VARCHAR(36) PRIMARY KEY,
		content TEXT NOT NULL,
		status VARCHAR(20) NOT NULL,
		board_id VARCHAR(36) NOT NULL,
		created_at BIGINT NOT NULL
	)`,
	`CREATE INDEX idx_boards_owner ON boards (owner_id, created_at)`,
	`CREATE INDEX idx_todos_board ON todos (board_id, created_at)`,
}

// RetryDelay is the pause between attempts of a failing statement.
var RetryDelay = time.Second

// AutoMigrate creates the users, boards and todos tables if they do not exist.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, stmt := range statements {
		var err error
		for i := 0; i <= retries; i++ {
			if i > 0 {
				time.Sleep(RetryDelay)
			}
			_, err = db.Exec(stmt)
			if err == nil || isAlreadyExists(err) {
				err = nil
				break
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// isAlreadyExists reports whether err means an index is already in place.
// Neither dialect shares an IF NOT EXISTS form for CREATE INDEX.
func isAlreadyExists(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1061 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}
