package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

func newPgRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{"id", "email", "username", "first_name", "last_name", "phone_number", "password_hash", "created_at", "updated_at"}

func testUser() *User {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &User{
		ID:              "u-1",
		Email:           "Alice@example.com",
		NormalizedEmail: "alice@example.com",
		Username:        "alice",
		FirstName:       "Alice",
		PasswordHash:    "hash",
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

func TestPostgresCreate(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	u := testUser()
	q := `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,.*VALUES\s*\(\$1,.*\$9\)`
	mock.ExpectExec(q).
		WithArgs(u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PhoneNumber, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_idx"})

	err := repo.Create(context.Background(), testUser())
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), testUser())
	require.ErrorContains(t, err, "db error: db down")
	require.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestPostgresFindByEmail_CaseInsensitive(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	u := testUser()
	rows := sqlmock.NewRows(userColumns).
		AddRow(u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PhoneNumber, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+LOWER\(email\)\s*=\s*\$1$`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "  ALICE@example.com ")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
	require.Equal(t, "alice@example.com", got.NormalizedEmail)
}

func TestPostgresFindByID_NotFound(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE id = \$1`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "ghost")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgresUpdatePassword(t *testing.T) {
	repo, mock, db := newPgRepoWithMock(t)
	defer db.Close()

	at := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	q := `(?s)^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2,\s*updated_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1`

	mock.ExpectExec(q).WithArgs("u-1", "new-hash", at).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdatePassword(context.Background(), "u-1", "new-hash", at))

	mock.ExpectExec(q).WithArgs("ghost", "new-hash", at).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdatePassword(context.Background(), "ghost", "new-hash", at)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
