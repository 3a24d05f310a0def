package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"board/dto"
	"board/models"
)

func postDoc(id int64, title string, userID int64, name string) bson.D {
	now := time.Now()
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
		{Key: "title", Value: title},
		{Key: "content", Value: title + " content"},
		{Key: "user_id", Value: userID},
		{Key: "user", Value: bson.D{
			{Key: "_id", Value: userID},
			{Key: "name", Value: name},
			{Key: "email", Value: name + "@example.com"},
		}},
	}
}

func TestMongoPostRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns sequence id", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: "posts"},
				{Key: "seq", Value: int64(7)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		p := &models.Post{Title: "t", Content: "c", UserID: 1}
		require.NoError(mt, repo.Create(context.Background(), p))
		assert.Equal(mt, int64(7), p.ID)
		assert.False(mt, p.CreatedAt.IsZero())
	})

	mt.Run("find by id loads author", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "board.posts", mtest.FirstBatch,
			postDoc(3, "hello", 1, "kim")))

		p, err := repo.FindByID(context.Background(), 3)
		require.NoError(mt, err)
		assert.Equal(mt, "hello", p.Title)
		require.NotNil(mt, p.User)
		assert.Equal(mt, "kim@example.com", p.User.Email)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "board.posts", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), 3)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "board.posts", mtest.FirstBatch,
			postDoc(1, "a", 1, "kim"),
			postDoc(2, "b", 2, "lee"),
		))

		posts, err := repo.List(context.Background(), dto.PageRequest{Page: 0, Size: 20})
		require.NoError(mt, err)
		require.Len(mt, posts, 2)
		assert.Equal(mt, "lee", posts[1].User.Name)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "board.posts", mtest.FirstBatch))

		posts, err := repo.List(context.Background(), dto.PageRequest{Page: 0, Size: 20})
		require.NoError(mt, err)
		assert.NotNil(mt, posts)
		assert.Empty(mt, posts)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, repo.Update(context.Background(), &models.Post{ID: 3, Title: "t", Content: "c"}))
	})

	mt.Run("update missing post", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Update(context.Background(), &models.Post{ID: 3, Title: "t", Content: "c"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
