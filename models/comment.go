package models

import (
	"time"
)

// Comment is immutable once created; there are no edit or delete
// endpoints for it.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;index"`
	AuthorID  string    `json:"author_id" gorm:"not null;size:191;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

type CommentView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Author    UserView  `json:"author"`
}

func (c Comment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author:    c.Author.View(),
	}
}
