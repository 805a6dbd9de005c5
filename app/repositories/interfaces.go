package repositories

import "github.com/haeun0228/powerBoost/app/models"

// PostRepository defines the interface for post document access. Comments
// live inside the post document, so comment changes go through Update.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	IncrementLikes(id string) (int, error)
}

// UserRepository defines the interface for user document access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUserID(userID string) (*models.User, error)
}
