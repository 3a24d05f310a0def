package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board/dto"
	"board/models"
)

type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create inserts the post row only; the author is referenced by UserID.
func (r *GormPostRepository) Create(ctx context.Context, p *models.Post) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update writes title and content. The author column is never touched.
func (r *GormPostRepository) Update(ctx context.Context, p *models.Post) error {
	p.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Post{ID: p.ID}).
		Updates(map[string]any{
			"title":      p.Title,
			"content":    p.Content,
			"updated_at": p.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID loads a post and its author with a single INNER JOIN.
func (r *GormPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	err := r.db.WithContext(ctx).
		InnerJoins("User").
		Where("posts.id = ?", id).
		Take(&p).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

// List returns one page of posts ordered by id, each with its author joined.
func (r *GormPostRepository) List(ctx context.Context, page dto.PageRequest) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.WithContext(ctx).
		InnerJoins("User").
		Order("posts.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&posts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

func (r *GormPostRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
