package repositories

import (
	"gorm.io/gorm"

	"inkwell-api/models"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Exists(userID, authorID string) bool {
	var count int64
	r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}

func (r *FollowRepository) Create(userID, authorID string) error {
	return r.db.Create(&models.Follow{UserID: userID, AuthorID: authorID}).Error
}

func (r *FollowRepository) Delete(userID, authorID string) error {
	return r.db.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

func (r *FollowRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Follow{}).Count(&total).Error
	return total, err
}
