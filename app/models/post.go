package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title must contain at least 1 character")
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	p.Likes = 0
}

// AddComment appends a comment to the end of the post's comment sequence
func (p *Post) AddComment(comment Comment) {
	p.Comments = append(p.Comments, comment)
}

// FindComment returns the comment with the given ID, or false if absent
func (p *Post) FindComment(commentID string) (Comment, bool) {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment, true
		}
	}
	return Comment{}, false
}

// RemoveComment removes a comment from the post, preserving the order of
// the remaining comments
func (p *Post) RemoveComment(commentID string) error {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}
