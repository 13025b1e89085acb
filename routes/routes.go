package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"inkwell-api/config"
	"inkwell-api/controllers"
	"inkwell-api/middleware"
	"inkwell-api/repositories"
	"inkwell-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cacheService *services.CacheService, emailService *services.EmailService) {
	// Repositories
	postRepo := repositories.NewPostRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	userRepo := repositories.NewUserRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followRepo := repositories.NewFollowRepository(db)

	// Controllers
	authController := controllers.NewAuthController(userRepo, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postRepo, groupRepo, userRepo, commentRepo, followRepo, cacheService, cfg.PageSize)
	commentController := controllers.NewCommentController(postRepo, commentRepo)
	followController := controllers.NewFollowController(postRepo, userRepo, followRepo, cfg.PageSize)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth collaborator
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/login", authController.LoginForm)
	}

	// Public pages
	r.GET("/", postController.Index)
	r.GET("/group/:slug", postController.GroupPosts)
	r.GET("/profile/:username", middleware.AuthOptional(cfg.JWTSecret), postController.Profile)
	r.GET("/posts/:id", postController.Detail)

	// Authenticated pages; unauthenticated requests are redirected to the
	// login collaborator
	authed := r.Group("/")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authed.GET("/create", postController.CreateForm)
		authed.POST("/create", postController.Create)
		authed.GET("/posts/:id/edit", postController.EditForm)
		authed.POST("/posts/:id/edit", postController.Edit)
		authed.POST("/posts/:id/comment", commentController.Create)
		authed.GET("/follow", followController.Feed)
		authed.GET("/profile/:username/follow", followController.Follow)
		authed.GET("/profile/:username/unfollow", followController.Unfollow)
	}
}
