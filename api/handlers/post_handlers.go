package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"board/config"
	"board/dto"
	"board/errs"
	"board/services"
	"board/validation"
)

// AddPostHandler godoc
// @Summary      게시물 작성
// @Description  Create a post written by userId
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PostRequest  true  "title, content, userId"
// @Success      201   {object}  dto.PostIDResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /posts [post]
func AddPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequest
		if !bindJSON(c, &req) {
			return
		}
		post, err := svc.AddPost(c.Request.Context(), req.UserID, req)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/api/v1/posts/%d", post.ID))
		c.JSON(http.StatusCreated, dto.PostIDResponse{ID: post.ID})
	}
}

// UpdatePostHandler godoc
// @Summary      게시물 수정
// @Description  Update title and content. userId must be the post's author.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Post ID (>0)"
// @Param        body  body      dto.PostRequest  true  "title, content, userId"
// @Success      200   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      403   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, idErr := validation.ParseID("id", c.Param("id"))
		var req dto.PostRequest
		bodyErr := decodeJSON(c, &req)
		if bodyErr == nil {
			bodyErr = validation.Struct(req)
		}
		if err := mergeViolations(idErr, bodyErr); err != nil {
			RespondError(c, err)
			return
		}
		post, err := svc.UpdatePost(c.Request.Context(), req.UserID, id, req)
		if err != nil {
			RespondError(c, err)
			return
		}
		resp, err := dto.NewPostResponse(*post)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single post with its author name and email
// @Tags         posts
// @Param        id   path   int  true  "Post ID (>0)"
// @Produce      json
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.ParseID("id", c.Param("id"))
		if err != nil {
			RespondError(c, err)
			return
		}
		post, err := svc.GetOne(c.Request.Context(), id)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with 0-based pagination
// @Tags         posts
// @Param        page  query  int  false  "Page number (0-based)"
// @Param        size  query  int  false  "Page size (capped by server max)"
// @Produce      json
// @Success      200  {array}   dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService, paging config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageErr := strconv.Atoi(c.DefaultQuery("page", "0"))
		size, sizeErr := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(paging.DefaultSize)))
		var bad []errs.FieldViolation
		if pageErr != nil {
			bad = append(bad, errs.FieldViolation{Field: "page", Rule: "numeric"})
		}
		if sizeErr != nil {
			bad = append(bad, errs.FieldViolation{Field: "size", Rule: "numeric"})
		}
		if len(bad) > 0 {
			RespondError(c, errs.Validation(bad...))
			return
		}

		items, err := svc.GetAll(c.Request.Context(), dto.NewPageRequest(page, size, paging.MaxSize))
		if err != nil {
			RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
