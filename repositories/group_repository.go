package repositories

import (
	"gorm.io/gorm"

	"inkwell-api/models"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) FindBySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) Exists(id string) bool {
	var count int64
	r.db.Model(&models.Group{}).Where("id = ?", id).Count(&count)
	return count > 0
}
