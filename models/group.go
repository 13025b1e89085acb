package models

import (
	"time"
)

// Group is a topical community. The slug is its stable identity and is
// never changed once created; groups are created by seed/admin inserts
// only and have no mutation endpoints.
type Group struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:GroupID"`
}

type GroupView struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func (g Group) View() GroupView {
	return GroupView{Slug: g.Slug, Title: g.Title}
}
