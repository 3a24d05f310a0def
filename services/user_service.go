package services

import (
	"context"

	"board/dto"
	"board/internal/logger"
	"board/models"
	"board/repositories"
	"board/validation"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// AddUser 는 게시물 작성자가 될 사용자를 생성한다. 이메일은 중복될 수 없다.
func (s *UserService) AddUser(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	u := &models.User{Name: req.Name, Email: req.Email}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, repoError(err, "user not found")
	}
	logger.InfoWithFields("user created", logger.WithRequest(ctx, logger.Fields{"user_id": u.ID}))
	return u, nil
}

// GetUser 는 사용자를 조회한다.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if err := validation.PositiveID("id", id); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "user %d not found", id)
	}
	return u, nil
}
