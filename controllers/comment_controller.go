package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inkwell-api/forms"
	"inkwell-api/models"
	"inkwell-api/repositories"
	"inkwell-api/utils"
)

type CommentController struct {
	posts    *repositories.PostRepository
	comments *repositories.CommentRepository
}

func NewCommentController(posts *repositories.PostRepository, comments *repositories.CommentRepository) *CommentController {
	return &CommentController{
		posts:    posts,
		comments: comments,
	}
}

// Create attaches a comment to a post and sends the author back to the
// detail page. Invalid submissions get their field errors back instead of
// a silent redirect.
func (cc *CommentController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	post, err := cc.posts.FindByID(c.Param("id"))
	if err != nil {
		utils.SendNotFound(c, "Post")
		return
	}

	var form forms.CommentForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		PostID:   post.ID,
		AuthorID: userID,
		Text:     form.Text,
	}

	if err := cc.comments.Create(&comment); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+post.ID)
}
