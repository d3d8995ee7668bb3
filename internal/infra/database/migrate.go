package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration. A nil logger silences goose.
func Migrate(ctx context.Context, db *sql.DB, log goose.Logger) error {
	goose.SetBaseFS(embedMigrations)
	if log == nil {
		log = goose.NopLogger()
	}
	goose.SetLogger(log)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
