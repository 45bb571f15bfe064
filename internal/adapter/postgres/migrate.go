package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql; goose needs *sql.DB
	"github.com/pressly/goose/v3"

	"github.com/akarpov/journal-backend/internal/adapter/postgres/migrations"
)

// Migrate applies all pending goose migrations from the embedded FS.
// It opens a short-lived database/sql connection because goose does not
// speak the pgx native protocol.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
