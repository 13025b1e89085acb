package repositories

import (
	"gorm.io/gorm"

	"inkwell-api/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByPost returns the post's comments in creation order.
func (r *CommentRepository) ListByPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) CountByPost(postID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error
	return total, err
}
