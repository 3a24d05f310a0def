package repositories

import (
	"context"
	"errors"

	"board/dto"
	"board/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)

// PostRepository persists posts. FindByID and List always eager load Post.User.
type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, page dto.PageRequest) ([]models.Post, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
