package database

import (
	"context"
	"database/sql"
	"fmt"

	"clinic/internal/config"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/lib/pq"
)

type Repository struct {
	Db *sql.DB
}

// Connect opens a pool with the configured driver ("postgres" for lib/pq,
// "pgx" for pgx) and checks that the server answers.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Repository, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgresql: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgresql: %w", err)
	}

	return &Repository{Db: db}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.Db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.Db.Close()
}

func (r *Repository) migrate(ctx context.Context, table, ddl string) error {
	if _, err := r.Db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create %s table: %w", table, err)
	}
	return nil
}
