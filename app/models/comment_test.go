package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validComment() *Comment {
	comment := &Comment{
		UserID:  "user-1",
		Content: "A comment",
	}
	comment.BeforeCreate()
	return comment
}

func TestCommentValidation(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		comment := validComment()
		assert.NoError(t, comment.Validate())
	})

	t.Run("empty content", func(t *testing.T) {
		comment := validComment()
		comment.Content = ""
		assert.Error(t, comment.Validate())
	})

	t.Run("content at 100 characters", func(t *testing.T) {
		comment := validComment()
		comment.Content = strings.Repeat("a", 100)
		assert.NoError(t, comment.Validate())
	})

	t.Run("content at 101 characters", func(t *testing.T) {
		comment := validComment()
		comment.Content = strings.Repeat("a", 101)
		assert.Error(t, comment.Validate())
	})

	t.Run("missing author", func(t *testing.T) {
		comment := validComment()
		comment.UserID = ""
		assert.Error(t, comment.Validate())
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{UserID: "user-1", Content: "hi"}
	comment.BeforeCreate()

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.False(t, comment.UpdatedAt.IsZero())

	// IDs are unique within a parent
	other := &Comment{UserID: "user-1", Content: "hi again"}
	other.BeforeCreate()
	assert.NotEqual(t, comment.ID, other.ID)
}
