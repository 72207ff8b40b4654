package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// Open crea la connessione Postgres e la valida con un ping.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		slog.Error("DB_DSN mancante")
		return nil, errors.New("DB_DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Fallisce subito se il database non è raggiungibile.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		slog.Error("ping database fallito", "error", err)
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// ExecSQLFile esegue un file SQL in una singola transazione.
func ExecSQLFile(ctx context.Context, db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ExecSQL(ctx, db, string(content))
}

// ExecSQL esegue uno script SQL in una singola transazione.
func ExecSQL(ctx context.Context, db *sql.DB, script string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
