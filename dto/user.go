package dto

import "board/models"

type UserRequest struct {
	Name  string `json:"name" validate:"notblank,max=50" example:"홍길동"`
	Email string `json:"email" validate:"required,email" example:"gildong@example.com"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
