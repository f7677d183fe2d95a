package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/dbx"
	"github.com/blogd-io/blogd/internal/server/models"
)

const pgUniqueViolation = "23505"

// PostgresRepository persists accounts in two tables: users for the scalar
// fields and refresh_tokens for the session-state set. Save rewrites the
// token set inside a transaction so the account still updates as a single
// unit.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, user_name, password_hash, created_at
	          FROM users WHERE ` + where

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.UserName, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	tokens, err := r.loadRefreshTokens(ctx, r.db, user.ID)
	if err != nil {
		return nil, err
	}
	user.RefreshTokens = tokens

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *PostgresRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	return r.findOne(ctx, "user_name = $1", userName)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (id, first_name, last_name, email, user_name, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email,
		user.UserName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `UPDATE users
		          SET first_name = $2, last_name = $3, email = $4, user_name = $5, password_hash = $6
		          WHERE id = $1`

		res, err := tx.ExecContext(ctx, query,
			user.ID, user.FirstName, user.LastName, user.Email,
			user.UserName, user.PasswordHash)
		if err != nil {
			if dup := mapUniqueViolation(err); dup != nil {
				return dup
			}
			return fmt.Errorf("db error: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, user.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		for _, token := range user.RefreshTokens {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2)`,
				user.ID, token); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}

		return nil
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) loadRefreshTokens(ctx context.Context, q dbx.DBTX, userID string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT token FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tokens, nil
}

// mapUniqueViolation translates a Postgres unique-constraint violation into
// the typed conflict sentinel, or returns nil for other errors.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "user_name") {
		return common.ErrDuplicateUserName
	}
	return common.ErrDuplicateEmail
}
