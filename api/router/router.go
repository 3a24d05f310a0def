package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"board/api/handlers"
	"board/api/middleware"
	"board/config"
	_ "board/docs"
	"board/repositories"
	"board/services"
)

func New(cfg config.AppConfig, repos repositories.Set) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := repos.Pinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": cfg.Storage.Driver, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		postsSvc := services.NewPostService(repos.Posts, repos.Users)
		api.POST("/posts", handlers.AddPostHandler(postsSvc))
		api.GET("/posts", handlers.ListPostsHandler(postsSvc, cfg.Pagination))
		api.GET("/posts/:id", handlers.GetPostHandler(postsSvc))
		api.PUT("/posts/:id", handlers.UpdatePostHandler(postsSvc))

		usersSvc := services.NewUserService(repos.Users)
		api.POST("/users", handlers.AddUserHandler(usersSvc))
		api.GET("/users/:id", handlers.GetUserHandler(usersSvc))
	}

	return r
}
