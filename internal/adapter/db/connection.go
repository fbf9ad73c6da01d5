package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"todo/internal/config"
	"todo/internal/core/domain"
)

const driverName = "sqlite3"

//go:embed migrations/*.up.sql
var migrations embed.FS

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driverName, conf.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreConnection, err)
	}

	// SQLite allows a single writer; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	return db, nil
}

// Migrate applies the embedded schema files in name order. Every statement is
// idempotent so it runs on each startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrations.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", file, err)
		}
		zap.L().Debug("applied migration", zap.String("file", file))
	}

	return nil
}
