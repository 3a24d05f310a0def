package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"board/dto"
	"board/models"
)

type MongoPostRepository struct {
	col *mongo.Collection
	seq *Sequence
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{col: db.Collection("posts"), seq: NewSequence(db)}
}

// Create stores a new post document. The author is kept as user_id only.
func (r *MongoPostRepository) Create(ctx context.Context, p *models.Post) error {
	id, err := r.seq.Next(ctx, "posts")
	if err != nil {
		return err
	}
	now := time.Now()
	p.ID = id
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	doc := *p
	doc.User = nil
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update sets title, content and updated_at
func (r *MongoPostRepository) Update(ctx context.Context, p *models.Post) error {
	p.UpdatedAt = time.Now()
	res, err := r.col.UpdateByID(ctx, p.ID, bson.M{
		"$set": bson.M{
			"title":      p.Title,
			"content":    p.Content,
			"updated_at": p.UpdatedAt,
		},
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// authorLookup joins users into each post as "user"; posts without an author drop out.
func authorLookup() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
	}
}

// FindByID returns a post with its author in one aggregate round trip
func (r *MongoPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}, authorLookup()...)

	results, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &results[0], nil
}

// List returns posts sorted by _id with skip/limit, each with its author.
func (r *MongoPostRepository) List(ctx context.Context, page dto.PageRequest) ([]models.Post, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(page.Offset())}},
		{{Key: "$limit", Value: int64(page.Limit())}},
	}, authorLookup()...)

	return r.aggregate(ctx, pipeline)
}

func (r *MongoPostRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.Post, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	results := []models.Post{}
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}

func (r *MongoPostRepository) Ping(ctx context.Context) error {
	return r.col.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
