package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Set bundles the repositories of one backing store.
type Set struct {
	Posts  PostRepository
	Users  UserRepository
	Pinger Pinger
}

func NewGormSet(db *gorm.DB) Set {
	posts := NewGormPostRepository(db)
	return Set{Posts: posts, Users: NewGormUserRepository(db), Pinger: posts}
}

func NewMongoSet(db *mongo.Database) Set {
	posts := NewMongoPostRepository(db)
	return Set{Posts: posts, Users: NewMongoUserRepository(db), Pinger: posts}
}
