package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const selectUserPattern = `(?s)^SELECT\s+id,\s*first_name,\s*last_name,\s*email,\s*user_name,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+`

func userRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "user_name", "password_hash", "created_at"}).
		AddRow("u-1", "Ada", "Lovelace", "ada@x.com", "ada", "$2a$hash", time.Now())
}

func tokenRows(tokens ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"token"})
	for _, tk := range tokens {
		rows.AddRow(tk)
	}
	return rows
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserPattern + `email\s*=\s*\$1`).
		WithArgs("ada@x.com").
		WillReturnRows(userRow())
	mock.ExpectQuery(`SELECT\s+token\s+FROM\s+refresh_tokens`).
		WithArgs("u-1").
		WillReturnRows(tokenRows("tok-a", "tok-b"))

	got, err := repo.FindByEmail(context.Background(), "ada@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.UserName != "ada" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(got.RefreshTokens) != 2 {
		t.Fatalf("expected 2 refresh tokens, got %v", got.RefreshTokens)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserPattern + `email\s*=\s*\$1`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserPattern + `id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+users\s*\(`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", UserName: "ada", PasswordHash: "h"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatal("Create must assign an identifier")
	}
}

func TestSave_RewritesTokenSetInTx(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+refresh_tokens`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+refresh_tokens`).
		WithArgs("u-1", "tok-new").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u := &models.User{ID: "u-1", Email: "ada@x.com", UserName: "ada", RefreshTokens: []string{"tok-new"}}
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSave_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), &models.User{ID: "ghost"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+users`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
