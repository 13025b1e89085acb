package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"inkwell-api/forms"
	"inkwell-api/models"
	"inkwell-api/repositories"
	"inkwell-api/services"
	"inkwell-api/utils"
)

type PostController struct {
	posts    *repositories.PostRepository
	groups   *repositories.GroupRepository
	users    *repositories.UserRepository
	comments *repositories.CommentRepository
	follows  *repositories.FollowRepository
	cache    *services.CacheService
	pageSize int
}

func NewPostController(
	posts *repositories.PostRepository,
	groups *repositories.GroupRepository,
	users *repositories.UserRepository,
	comments *repositories.CommentRepository,
	follows *repositories.FollowRepository,
	cache *services.CacheService,
	pageSize int,
) *PostController {
	return &PostController{
		posts:    posts,
		groups:   groups,
		users:    users,
		comments: comments,
		follows:  follows,
		cache:    cache,
		pageSize: pageSize,
	}
}

// paginate resolves the page query parameter against the total. Invalid
// pages clamp to 1, past-the-end pages clamp to the last page, and an
// empty set serves an empty page 1.
func paginate(c *gin.Context, total int64, limit int) (page, totalPages, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	totalPages = int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset = (page - 1) * limit
	return page, totalPages, offset
}

func (pc *PostController) buildPage(c *gin.Context, total int64, list func(offset, limit int) ([]models.Post, error)) (*models.PostPage, error) {
	page, totalPages, offset := paginate(c, total, pc.pageSize)

	posts, err := list(offset, pc.pageSize)
	if err != nil {
		return nil, err
	}

	return &models.PostPage{
		Posts: lo.Map(posts, func(p models.Post, _ int) models.PostView {
			return p.View()
		}),
		Page:       page,
		Limit:      pc.pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// Index serves the all-posts listing. The serialized payload is cached per
// requested page for the configured TTL; writes elsewhere do not
// invalidate it early, so readers may see content up to one window stale.
func (pc *PostController) Index(c *gin.Context) {
	key := "index:page=" + c.DefaultQuery("page", "1")
	if payload, ok := pc.cache.Get(key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	total, err := pc.posts.CountAll()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	response, err := pc.buildPage(c, total, pc.posts.ListAll)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	pc.cache.Set(key, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (pc *PostController) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")
	if !utils.IsValidSlug(slug) {
		utils.SendNotFound(c, "Group")
		return
	}

	group, err := pc.groups.FindBySlug(slug)
	if err != nil {
		utils.SendNotFound(c, "Group")
		return
	}

	total, err := pc.posts.CountByGroup(group.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch group posts")
		return
	}

	response, err := pc.buildPage(c, total, func(offset, limit int) ([]models.Post, error) {
		return pc.posts.ListByGroup(group.ID, offset, limit)
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch group posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": gin.H{
			"slug":        group.Slug,
			"title":       group.Title,
			"description": group.Description,
		},
		"posts": response,
	})
}

// Profile lists an author's posts and tells the viewer whether they
// already follow the author. The page is public; the flag is false for
// anonymous viewers.
func (pc *PostController) Profile(c *gin.Context) {
	author, err := pc.users.FindByUsername(c.Param("username"))
	if err != nil {
		utils.SendNotFound(c, "User")
		return
	}

	total, err := pc.posts.CountByAuthor(author.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	response, err := pc.buildPage(c, total, func(offset, limit int) ([]models.Post, error) {
		return pc.posts.ListByAuthor(author.ID, offset, limit)
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	following := false
	if viewerID := c.GetString("user_id"); viewerID != "" && viewerID != author.ID {
		following = pc.follows.Exists(viewerID, author.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"author":    author.View(),
		"following": following,
		"posts":     response,
	})
}

func (pc *PostController) Detail(c *gin.Context) {
	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		utils.SendNotFound(c, "Post")
		return
	}

	comments, err := pc.comments.ListByPost(post.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post.View(),
		"comments": lo.Map(comments, func(cm models.Comment, _ int) models.CommentView {
			return cm.View()
		}),
		"form": gin.H{"text": "", "errors": gin.H{}},
	})
}

func (pc *PostController) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{
			"text":      "",
			"group_id":  "",
			"image_url": "",
			"errors":    gin.H{},
		},
	})
}

func (pc *PostController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var form forms.PostForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(pc.groups.Exists); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	post := models.Post{
		ID:       uuid.New().String(),
		Text:     form.Text,
		AuthorID: userID,
	}
	if form.GroupID != "" {
		post.GroupID = &form.GroupID
	}
	if form.ImageURL != "" {
		post.ImageURL = &form.ImageURL
	}

	if err := pc.posts.Create(&post); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	author, err := pc.users.FindByID(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

func (pc *PostController) EditForm(c *gin.Context) {
	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		utils.SendNotFound(c, "Post")
		return
	}

	// Non-authors are bounced to the detail view, no error surfaced
	if post.AuthorID != c.GetString("user_id") {
		c.Redirect(http.StatusFound, "/posts/"+post.ID)
		return
	}

	groupID := ""
	if post.GroupID != nil {
		groupID = *post.GroupID
	}
	imageURL := ""
	if post.ImageURL != nil {
		imageURL = *post.ImageURL
	}

	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{
			"text":      post.Text,
			"group_id":  groupID,
			"image_url": imageURL,
			"errors":    gin.H{},
		},
		"is_edit": true,
	})
}

// Edit updates a post in place. Only the author may edit; authorship
// itself is never reassigned.
func (pc *PostController) Edit(c *gin.Context) {
	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		utils.SendNotFound(c, "Post")
		return
	}

	if post.AuthorID != c.GetString("user_id") {
		c.Redirect(http.StatusFound, "/posts/"+post.ID)
		return
	}

	var form forms.PostForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(pc.groups.Exists); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	var groupID, imageURL *string
	if form.GroupID != "" {
		groupID = &form.GroupID
	}
	if form.ImageURL != "" {
		imageURL = &form.ImageURL
	}

	if err := pc.posts.Update(post, form.Text, groupID, imageURL); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+post.ID)
}
