package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-api/models"
	"inkwell-api/repositories"
	"inkwell-api/utils"
)

type FollowController struct {
	posts    *repositories.PostRepository
	users    *repositories.UserRepository
	follows  *repositories.FollowRepository
	pageSize int
}

func NewFollowController(
	posts *repositories.PostRepository,
	users *repositories.UserRepository,
	follows *repositories.FollowRepository,
	pageSize int,
) *FollowController {
	return &FollowController{
		posts:    posts,
		users:    users,
		follows:  follows,
		pageSize: pageSize,
	}
}

// Feed lists posts authored by anyone the viewer follows, computed at
// read time by joining posts against the viewer's follow edges.
func (fc *FollowController) Feed(c *gin.Context) {
	userID := c.GetString("user_id")

	total, err := fc.posts.CountFeed(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}

	page, totalPages, offset := paginate(c, total, fc.pageSize)

	posts, err := fc.posts.ListFeed(userID, offset, fc.pageSize)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View())
	}

	c.JSON(http.StatusOK, models.PostPage{
		Posts:      views,
		Page:       page,
		Limit:      fc.pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	})
}

// Follow creates the subscription edge. It is idempotent, and a
// self-follow attempt is a no-op: both cases still redirect to the
// profile as if they succeeded.
func (fc *FollowController) Follow(c *gin.Context) {
	userID := c.GetString("user_id")

	author, err := fc.users.FindByUsername(c.Param("username"))
	if err != nil {
		utils.SendNotFound(c, "User")
		return
	}

	if author.ID != userID && !fc.follows.Exists(userID, author.ID) {
		if err := fc.follows.Create(userID, author.ID); err != nil {
			// A concurrent duplicate loses to the unique index; the edge
			// exists either way
			log.Printf("follow %s -> %s: %v", userID, author.ID, err)
		}
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// Unfollow removes the edge if present and redirects to the profile
// either way.
func (fc *FollowController) Unfollow(c *gin.Context) {
	userID := c.GetString("user_id")

	author, err := fc.users.FindByUsername(c.Param("username"))
	if err != nil {
		utils.SendNotFound(c, "User")
		return
	}

	if err := fc.follows.Delete(userID, author.ID); err != nil {
		log.Printf("unfollow %s -> %s: %v", userID, author.ID, err)
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
