package repositories

import (
	"gorm.io/gorm"

	"inkwell-api/models"
)

// PostRepository holds every post query. Listings eager-load Author and
// Group so rendering a page never fans out into per-row lookups.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) listing() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC")
}

func (r *PostRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Count(&total).Error
	return total, err
}

func (r *PostRepository) ListAll(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByGroup(groupID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&total).Error
	return total, err
}

func (r *PostRepository) ListByGroup(groupID string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Where("group_id = ?", groupID).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByAuthor(authorID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&total).Error
	return total, err
}

func (r *PostRepository) ListByAuthor(authorID string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Where("author_id = ?", authorID).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// Feed queries join posts against the viewer's follow edges at read time;
// there is no fan-out on write.
func (r *PostRepository) CountFeed(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *PostRepository) ListFeed(userID string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update rewrites the mutable fields in place. AuthorID and CreatedAt are
// deliberately not part of the update set.
func (r *PostRepository) Update(post *models.Post, text string, groupID, imageURL *string) error {
	return r.db.Model(post).Updates(map[string]interface{}{
		"text":      text,
		"group_id":  groupID,
		"image_url": imageURL,
	}).Error
}
