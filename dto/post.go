package dto

import (
	"errors"

	"board/models"
)

// ErrAuthorNotLoaded is returned when a post reaches the converter without its author.
// Repositories always eager load the author, so this is a programming error.
var ErrAuthorNotLoaded = errors.New("post author is not loaded")

// PostRequest is the body of both create and update calls.
// On update UserID only identifies the requester; it never reassigns the author.
type PostRequest struct {
	Title   string `json:"title" validate:"notblank,max=99" example:"첫 번째 글"`
	Content string `json:"content" validate:"notblank" example:"게시물 내용"`
	UserID  int64  `json:"userId" validate:"required,gt=0" example:"1"`
}

// PostResponse is the read projection of a post, flattened with its author
type PostResponse struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type PostIDResponse struct {
	ID int64 `json:"id" example:"1"`
}

// NewPostResponse constructs PostResponse from models.Post
func NewPostResponse(p models.Post) (PostResponse, error) {
	if p.User == nil {
		return PostResponse{}, ErrAuthorNotLoaded
	}
	return PostResponse{
		Title:     p.Title,
		Content:   p.Content,
		UserName:  p.User.Name,
		UserEmail: p.User.Email,
	}, nil
}

// NewPostResponses converts a page of posts, keeping the empty page as an empty array.
func NewPostResponses(posts []models.Post) ([]PostResponse, error) {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		r, err := NewPostResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
