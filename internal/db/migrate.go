package db

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/Spok95/lms-desktop/internal/db/migrations"
)

func Migrate(ctx context.Context, database *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, ".")
}
