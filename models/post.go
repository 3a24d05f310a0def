package models

import "time"

// TitleMaxLength is the exclusive upper bound on a post title, in characters.
const TitleMaxLength = 100

// Post represents a board entry written by exactly one User
// Table / collection: posts
//
// User 는 저장소가 eager load 한 작성자다. 조회 결과에서는 항상 채워져 있으며,
// 저장 시에는 UserID 만 사용한다.
type Post struct {
	ID        int64     `gorm:"primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Title     string    `gorm:"size:99;not null" bson:"title" json:"title"`
	Content   string    `gorm:"not null" bson:"content" json:"content"`
	UserID    int64     `gorm:"not null;index" bson:"user_id" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" bson:"user,omitempty" json:"user,omitempty"`
}

// IsWrittenBy reports whether userID is the post's author.
func (p *Post) IsWrittenBy(userID int64) bool {
	return p.UserID == userID
}
