package models

import "time"

// User represents a post author
// Table / collection: users
type User struct {
	ID        int64     `gorm:"primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Name      string    `gorm:"not null" bson:"name" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" bson:"email" json:"email"`
}
