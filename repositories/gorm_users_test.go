package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board/models"
)

func TestGormUserRepository_Create(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormUserRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	u := &models.User{Name: "kim", Email: "kim@example.com"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(5), u.ID)
}

func TestGormUserRepository_Create_Duplicate(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormUserRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_users_email"})

	err := repo.Create(context.Background(), &models.User{Name: "kim", Email: "kim@example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGormUserRepository_FindByID(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormUserRepository(gdb)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email"}).
			AddRow(5, now, now, "kim", "kim@example.com"))

	u, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "kim", u.Name)
}

func TestGormUserRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormUserRepository(gdb)

	mock.ExpectQuery(`FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
