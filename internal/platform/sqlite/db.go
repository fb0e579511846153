package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"github.com/pressly/goose/v3"

	"taskboard-api/internal/config"
	"taskboard-api/migrations"
)

// DB wraps the SQLite connection pool together with the keep-alive
// connection that holds the shared-cache in-memory database open for the
// lifetime of the process. It is created on application start and closed
// on shutdown; nothing else owns connection lifecycle.
type DB struct {
	*sqlx.DB

	keepAlive *sql.Conn
	logger    *slog.Logger
}

// Open opens the database described by cfg and pins one connection for
// the process lifetime. A shared-cache in-memory SQLite database is
// dropped as soon as its last connection closes, so the pin must outlive
// every request.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqlx.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after keep-alive failure",
				slog.String("error", closeErr.Error()))
		}
		return nil, fmt.Errorf("failed to pin keep-alive connection: %w", err)
	}

	logger.Info("database opened", slog.String("dsn", cfg.DSN))

	return &DB{
		DB:        db,
		keepAlive: conn,
		logger:    logger.With(slog.String("component", "sqlite")),
	}, nil
}

// Migrate applies the embedded goose migrations, creating the schema on
// first run.
func (d *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, d.DB.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	d.logger.Info("migrations applied")
	return nil
}

// Seed populates an empty board with two starter categories. It is a
// no-op when any category already exists.
func (d *DB) Seed(ctx context.Context) error {
	var count int
	if err := d.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	const insert = `
		INSERT INTO categories (category_name, created, created_by, last_modified, last_modified_by)
		VALUES (?, CURRENT_TIMESTAMP, 'seed', CURRENT_TIMESTAMP, 'seed')
	`
	for _, name := range []string{"Backlog", "In Progress"} {
		if _, err := d.ExecContext(ctx, insert, name); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	d.logger.Info("seeded starter categories")
	return nil
}

// Close releases the keep-alive connection and then the pool. After
// Close, an in-memory database's contents are gone.
func (d *DB) Close() error {
	if d.keepAlive != nil {
		if err := d.keepAlive.Close(); err != nil {
			d.logger.Error("failed to close keep-alive connection",
				slog.String("error", err.Error()))
		}
		d.keepAlive = nil
	}
	return d.DB.Close()
}
