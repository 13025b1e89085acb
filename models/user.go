package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
}

// Follow is a directed subscription edge: UserID follows AuthorID.
// The composite unique index backs the one-edge-per-pair invariant; the
// no-self-follow CHECK is added in database.Migrate since gorm tags
// cannot express it.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_follows_user_author"`
	AuthorID  string    `json:"author_id" gorm:"not null;size:191;uniqueIndex:uk_follows_user_author"`
	CreatedAt time.Time `json:"created_at"`

	User   User `json:"user" gorm:"foreignKey:UserID"`
	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

// UserView is the public author representation embedded in listings.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Username: u.Username}
}
