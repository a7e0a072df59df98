package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"compliancedesk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func TestAddUser_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := models.User{
		ID:       "u1",
		Login:    "alice",
		PassHash: []byte("hash"),
		IsAdmin:  false,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users(id, login, pass_hash, is_admin) VALUES($1, $2, $3, $4)`)).
		WithArgs(user.ID, user.Login, user.PassHash, user.IsAdmin).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUser_DuplicateLogin(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := models.User{ID: "u1", Login: "alice", PassHash: []byte("hash")}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users(id, login, pass_hash, is_admin) VALUES($1, $2, $3, $4)`)).
		WithArgs(user.ID, user.Login, user.PassHash, user.IsAdmin).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_login_key"})

	err := repo.AddUser(context.Background(), user)

	var uniqueErr *models.UniqueConstraintError
	assert.ErrorAs(t, err, &uniqueErr)
	assert.Equal(t, "users_login_key", uniqueErr.Constraint)
	assert.ErrorIs(t, err, models.ErrUNIQUEConstraintFailed)
}

func TestAddUser_OtherError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := models.User{ID: "u1", Login: "alice"}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.AddUser(context.Background(), user)

	assert.Error(t, err)
	var uniqueErr *models.UniqueConstraintError
	assert.False(t, errors.As(err, &uniqueErr))
}

func TestUserByID_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "login", "pass_hash", "is_admin"}).
		AddRow("u1", "alice", []byte("hash"), true)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users u`)).
		WithArgs("u1").
		WillReturnRows(rows)

	user, err := repo.UserByID(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.True(t, user.IsAdmin)
}

func TestUserByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users u`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UserByID(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserByLogin_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users u`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UserByLogin(context.Background(), "ghost")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
