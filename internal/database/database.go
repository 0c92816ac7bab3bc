package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// RetryDelay is the pause between connection attempts.
var RetryDelay = 3 * time.Second

// Open connects to the store and pings it, retrying up to retries times.
// The caller owns the returned handle and must Close it on shutdown.
func Open(ctx context.Context, driver, dsn string, retries int) (*sql.DB, error) {
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		db, err := connect(ctx, driver, dsn)
		if err == nil {
			log.Info().Str("driver", driver).Msg("connected to database")
			return db, nil
		}
		lastErr = err
		log.Warn().Err(err).Str("driver", driver).Msgf("retry %d: failed to connect to database", i+1)

		if i == retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(RetryDelay):
		}
	}
	return nil, fmt.Errorf("connect to %s after %d attempts: %w", driver, retries, lastErr)
}

func connect(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if driver == "sqlite" {
		dsn = sqliteDSN(dsn)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// sqlite allows a single writer; one pooled connection serializes writes.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDSN adds the pragmas to the DSN so every pooled connection gets them.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
