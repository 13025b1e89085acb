package models

import (
	"time"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	AuthorID  string    `json:"author_id" gorm:"not null;size:191;index"`
	GroupID   *string   `json:"group_id" gorm:"size:191;index"`
	ImageURL  *string   `json:"image_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author   User      `json:"author" gorm:"foreignKey:AuthorID"`
	Group    *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

// PostView is the listing/detail representation with author and group
// flattened to their public shapes.
type PostView struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	ImageURL  *string    `json:"image_url"`
	CreatedAt time.Time  `json:"created_at"`
	Author    UserView   `json:"author"`
	Group     *GroupView `json:"group"`
}

func (p Post) View() PostView {
	view := PostView{
		ID:        p.ID,
		Text:      p.Text,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		Author:    p.Author.View(),
	}
	if p.Group != nil {
		gv := p.Group.View()
		view.Group = &gv
	}
	return view
}

// PostPage is the paginated listing response with pagination metadata.
type PostPage struct {
	Posts      []PostView `json:"posts"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
	HasMore    bool       `json:"has_more"`
}
