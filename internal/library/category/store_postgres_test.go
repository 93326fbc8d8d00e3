// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/library/category"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

func TestPostgresRepository_Create_UniqueViolationIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := &category.Category{ID: "c-1", UserID: alice, Name: "Fiction", Color: "#6366F1", CreatedAt: time.Now()}
	mock.ExpectExec(`INSERT INTO library.category \(id, userid, name, color, createdat\)`).
		WithArgs(c.ID, c.UserID, c.Name, c.Color, c.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_category_user_name"})

	err = category.NewRepository(mock).Create(context.Background(), c)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM library.category WHERE id = \$1 AND userid = \$2`).
		WithArgs("c-1", alice).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM library.category`).
		WithArgs("c-1", bob).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repository := category.NewRepository(mock)
	assert.NoError(t, repository.Delete(context.Background(), alice, "c-1"))
	assert.True(t, apperr.HasCode(repository.Delete(context.Background(), bob, "c-1"), apperr.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, userid, name, color, createdat FROM library.category WHERE userid = \$1 ORDER BY name`).
		WithArgs(alice).
		WillReturnRows(pgxmock.NewRows([]string{"id", "userid", "name", "color", "createdat"}).
			AddRow("c-1", alice, "Art", "#10B981", createdAt).
			AddRow("c-2", alice, "Fiction", "#6366F1", createdAt))

	listed, err := category.NewRepository(mock).ListByUser(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Art", listed[0].Name)
	assert.Equal(t, "#6366F1", listed[1].Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}
