// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/users/auth"
)

func TestPostgresUserRepository_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, email, name, passwordhash, createdat FROM users.account WHERE email = \$1`).
		WithArgs("reader@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "passwordhash", "createdat"}).
			AddRow("0190f1d2-0000-7000-8000-000000000001", "reader@example.com", "Reader", "$2a$hash", createdAt))

	repository := auth.NewUserRepository(mock)
	user, err := repository.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Reader", user.Name)
	assert.Equal(t, "$2a$hash", user.PasswordHash)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users.account WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = auth.NewUserRepository(mock).FindByID(context.Background(), "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := &auth.User{ID: "id-1", Email: "dup@example.com", Name: "Dup", PasswordHash: "h"}
	mock.ExpectExec(`INSERT INTO users.account`).
		WithArgs(user.ID, user.Email, user.Name, user.PasswordHash, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_account_email"})

	err = auth.NewUserRepository(mock).Create(context.Background(), user)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := &auth.User{ID: "id-2", Email: "new@example.com", Name: "New", PasswordHash: "h"}
	mock.ExpectExec(`INSERT INTO users.account`).
		WithArgs(user.ID, user.Email, user.Name, user.PasswordHash, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, auth.NewUserRepository(mock).Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}
