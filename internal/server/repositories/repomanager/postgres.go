package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/blogd-io/blogd/internal/server/migrations"
	"github.com/blogd-io/blogd/internal/server/repositories/comments"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

type PostgresManager struct {
	db       *sql.DB
	users    *users.PostgresRepository
	posts    *posts.PostgresRepository
	comments *comments.PostgresRepository
}

// NewPostgresManager opens a pgx-backed connection pool, verifies it, and
// applies the embedded goose migrations.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		posts:    posts.NewPostgresRepository(db),
		comments: comments.NewPostgresRepository(db),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (m *PostgresManager) Users() users.Repository       { return m.users }
func (m *PostgresManager) Posts() posts.Repository       { return m.posts }
func (m *PostgresManager) Comments() comments.Repository { return m.comments }

func (m *PostgresManager) Close(ctx context.Context) error {
	return m.db.Close()
}
