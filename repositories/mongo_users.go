package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"board/models"
)

type MongoUserRepository struct {
	col *mongo.Collection
	seq *Sequence
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users"), seq: NewSequence(db)}
}

// Create inserts a user; a taken email surfaces as ErrDuplicate.
func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) error {
	id, err := r.seq.Next(ctx, "users")
	if err != nil {
		return err
	}
	now := time.Now()
	u.ID = id
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, "uniq_email")
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}
