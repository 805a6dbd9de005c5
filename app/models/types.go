package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	// SortNewestFirst orders posts by descending creation time (the default).
	SortNewestFirst = "new"
	// SortOldestFirst orders posts by ascending creation time.
	SortOldestFirst = "old"
)

// User represents a registered account. Password always holds the bcrypt
// hash; plaintext never reaches the repositories.
type User struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Password  string    `json:"password,omitempty" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Post represents an article with its embedded comment sequence.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=30"`
	UserID    string    `json:"user" validate:"required"`
	Content   string    `json:"content" validate:"max=200"`
	Comments  []Comment `json:"comments" validate:"-"`
	Likes     int       `json:"likes" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment is a sub-record embedded in a Post. It is only ever persisted as
// part of its parent document.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"user" validate:"required"`
	Content   string    `json:"content" validate:"required,max=100"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
