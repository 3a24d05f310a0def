package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"board/dto"
	"board/services"
	"board/validation"
)

// AddUserHandler godoc
// @Summary      사용자 생성
// @Description  Create a user who can author posts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UserRequest  true  "name, email"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /users [post]
func AddUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UserRequest
		if !bindJSON(c, &req) {
			return
		}
		user, err := svc.AddUser(c.Request.Context(), req)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/api/v1/users/%d", user.ID))
		c.JSON(http.StatusCreated, dto.NewUserResponse(*user))
	}
}

// GetUserHandler godoc
// @Summary      Get user by id
// @Tags         users
// @Param        id   path   int  true  "User ID (>0)"
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/{id} [get]
func GetUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.ParseID("id", c.Param("id"))
		if err != nil {
			RespondError(c, err)
			return
		}
		user, err := svc.GetUser(c.Request.Context(), id)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewUserResponse(*user))
	}
}
