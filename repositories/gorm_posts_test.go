package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"board/dto"
	"board/models"
)

var joinedPostColumns = []string{
	"id", "created_at", "updated_at", "title", "content", "user_id",
	"User__id", "User__created_at", "User__updated_at", "User__name", "User__email",
}

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestGormPostRepository_Create(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "posts"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "title", "content", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	p := &models.Post{Title: "title", Content: "content", UserID: 1, User: &models.User{ID: 1}}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Create_UnknownAuthor(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_user_id_fkey"})

	err := repo.Create(context.Background(), &models.Post{Title: "t", Content: "c", UserID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormPostRepository_FindByID(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows(joinedPostColumns).
		AddRow(3, now, now, "title", "content", 1, 1, now, now, "kim", "kim@example.com")
	mock.ExpectQuery(`(?s)SELECT .* FROM "posts" INNER JOIN "users" "User" ON "posts"\."user_id" = "User"\."id" WHERE posts\.id = \$1`).
		WillReturnRows(rows)

	p, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "title", p.Title)
	require.NotNil(t, p.User)
	assert.Equal(t, "kim", p.User.Name)
	assert.Equal(t, "kim@example.com", p.User.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectQuery(`FROM "posts" INNER JOIN "users"`).
		WillReturnRows(sqlmock.NewRows(joinedPostColumns))

	p, err := repo.FindByID(context.Background(), 3)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormPostRepository_FindByID_DBError(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectQuery(`FROM "posts"`).WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestGormPostRepository_List(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows(joinedPostColumns).
		AddRow(1, now, now, "a", "aa", 1, 1, now, now, "kim", "kim@example.com").
		AddRow(2, now, now, "b", "bb", 2, 2, now, now, "lee", "lee@example.com")
	mock.ExpectQuery(`(?s)FROM "posts" INNER JOIN "users" "User" .* ORDER BY posts\.id LIMIT`).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background(), dto.PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "lee", posts[1].User.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_List_Empty(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectQuery(`FROM "posts"`).WillReturnRows(sqlmock.NewRows(joinedPostColumns))

	posts, err := repo.List(context.Background(), dto.PageRequest{Page: 3, Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGormPostRepository_Update(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Post{ID: 3, Title: "new", Content: "body", UserID: 1}
	require.NoError(t, repo.Update(context.Background(), p))
	assert.False(t, p.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Update_NoRows(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewGormPostRepository(gdb)

	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Post{ID: 3, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotFound)
}
