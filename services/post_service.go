package services

import (
	"context"
	"errors"
	"fmt"

	"board/dto"
	"board/errs"
	"board/internal/logger"
	"board/models"
	"board/repositories"
	"board/validation"
)

// PostService encapsulates business logic for posts and DTO mapping
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// AddPost stores a new post written by authorID, who must exist.
func (s *PostService) AddPost(ctx context.Context, authorID int64, req dto.PostRequest) (*models.Post, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := validation.PositiveID("userId", authorID); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, repoError(err, "user %d not found", authorID)
	}

	p := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  author.ID,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, repoError(err, "user %d not found", authorID)
	}
	p.User = author

	logger.InfoWithFields("post created", logger.WithRequest(ctx, logger.Fields{
		"post_id": p.ID,
		"user_id": p.UserID,
	}))
	return p, nil
}

// UpdatePost changes title and content. requesterID must be the post's author;
// it is never used to reassign authorship.
func (s *PostService) UpdatePost(ctx context.Context, requesterID, postID int64, req dto.PostRequest) (*models.Post, error) {
	if err := validation.PositiveID("id", postID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, repoError(err, "post %d not found", postID)
	}
	if !p.IsWrittenBy(requesterID) {
		logger.WarnWithFields("post update forbidden", logger.WithRequest(ctx, logger.Fields{
			"post_id":      postID,
			"requester_id": requesterID,
		}))
		return nil, errs.Forbidden("user %d is not the author of post %d", requesterID, postID)
	}

	p.Title = req.Title
	p.Content = req.Content
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, repoError(err, "post %d not found", postID)
	}

	logger.InfoWithFields("post updated", logger.WithRequest(ctx, logger.Fields{
		"post_id": p.ID,
		"user_id": p.UserID,
	}))
	return p, nil
}

// GetOne loads a post with its author and converts it to the response shape.
func (s *PostService) GetOne(ctx context.Context, postID int64) (dto.PostResponse, error) {
	if err := validation.PositiveID("id", postID); err != nil {
		return dto.PostResponse{}, err
	}
	p, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return dto.PostResponse{}, repoError(err, "post %d not found", postID)
	}
	resp, err := dto.NewPostResponse(*p)
	if err != nil {
		return dto.PostResponse{}, fmt.Errorf("convert post %d: %w", postID, err)
	}
	return resp, nil
}

// GetAll returns one page of posts; an empty page is an empty slice.
func (s *PostService) GetAll(ctx context.Context, page dto.PageRequest) ([]dto.PostResponse, error) {
	if err := validation.Struct(page); err != nil {
		return nil, err
	}
	if err := validation.PageInRange(page.Page, page.Size); err != nil {
		return nil, err
	}
	items, err := s.posts.List(ctx, page)
	if err != nil {
		return nil, errs.Store(err)
	}
	out, err := dto.NewPostResponses(items)
	if err != nil {
		return nil, fmt.Errorf("convert posts: %w", err)
	}
	return out, nil
}

// repoError maps repository sentinels onto the shared error kinds.
func repoError(err error, notFoundFormat string, args ...any) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return errs.NotFound(notFoundFormat, args...)
	case errors.Is(err, repositories.ErrDuplicate):
		return errs.Conflict("%s", err.Error())
	default:
		return errs.Store(err)
	}
}
