package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell-api/config"
	"inkwell-api/database"
	"inkwell-api/middleware"
	"inkwell-api/models"
	"inkwell-api/repositories"
	"inkwell-api/services"
)

const (
	testSecret   = "test-secret"
	testPageSize = 10
	testCacheTTL = 50 * time.Millisecond
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cache  *services.CacheService
}

// newTestEnv wires the full route table over an in-memory database, with a
// short cache window so expiry is testable.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named shared in-memory database keeps gorm's connection pool on
	// the same data while isolating parallel tests from each other
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cache := services.NewCacheService(testCacheTTL)

	postRepo := repositories.NewPostRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	userRepo := repositories.NewUserRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followRepo := repositories.NewFollowRepository(db)

	authController := NewAuthController(userRepo, testSecret, services.NewEmailService(&config.Config{}))
	postController := NewPostController(postRepo, groupRepo, userRepo, commentRepo, followRepo, cache, testPageSize)
	commentController := NewCommentController(postRepo, commentRepo)
	followController := NewFollowController(postRepo, userRepo, followRepo, testPageSize)

	r := gin.New()

	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.GET("/login", authController.LoginForm)

	r.GET("/", postController.Index)
	r.GET("/group/:slug", postController.GroupPosts)
	r.GET("/profile/:username", middleware.AuthOptional(testSecret), postController.Profile)
	r.GET("/posts/:id", postController.Detail)

	authed := r.Group("/")
	authed.Use(middleware.AuthRequired(testSecret))
	authed.GET("/create", postController.CreateForm)
	authed.POST("/create", postController.Create)
	authed.GET("/posts/:id/edit", postController.EditForm)
	authed.POST("/posts/:id/edit", postController.Edit)
	authed.POST("/posts/:id/comment", commentController.Create)
	authed.GET("/follow", followController.Feed)
	authed.GET("/profile/:username/follow", followController.Follow)
	authed.GET("/profile/:username/unfollow", followController.Unfollow)

	return &testEnv{router: r, db: db, cache: cache}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func (e *testEnv) createGroup(t *testing.T, slug string) *models.Group {
	t.Helper()
	group := &models.Group{
		ID:    uuid.New().String(),
		Title: slug,
		Slug:  slug,
	}
	if err := e.db.Create(group).Error; err != nil {
		t.Fatalf("create group %s: %v", slug, err)
	}
	return group
}

func (e *testEnv) createPost(t *testing.T, author *models.User, group *models.Group, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:       uuid.New().String(),
		Text:     text,
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := e.db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func (e *testEnv) follow(t *testing.T, user, author *models.User) {
	t.Helper()
	if err := e.db.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error; err != nil {
		t.Fatalf("create follow: %v", err)
	}
}

func (e *testEnv) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path, token string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postCount(t *testing.T) int64 {
	t.Helper()
	var total int64
	if err := e.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	return total
}

func (e *testEnv) commentCount(t *testing.T) int64 {
	t.Helper()
	var total int64
	if err := e.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	return total
}

func (e *testEnv) followCount(t *testing.T) int64 {
	t.Helper()
	var total int64
	if err := e.db.Model(&models.Follow{}).Count(&total).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	return total
}
