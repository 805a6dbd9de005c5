// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"sync"

	"github.com/haeun0228/powerBoost/app/models"
	"github.com/haeun0228/powerBoost/app/repositories"
)

// PostRepository is an in-memory repositories.PostRepository. Reads return
// copies so callers cannot mutate stored state without going through Update.
type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

// UserRepository is an in-memory repositories.UserRepository.
type UserRepository struct {
	users   map[string]*models.User
	byLogin map[string]string
	mutex   sync.RWMutex
}

// NewPostRepository creates an empty in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*models.User),
		byLogin: make(map[string]string),
	}
}

func clonePost(post *models.Post) *models.Post {
	clone := *post
	clone.Comments = append([]models.Comment{}, post.Comments...)
	return &clone
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts[post.ID] = clonePost(post)
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, id := range m.order {
		posts = append(posts, clonePost(m.posts[id]))
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *PostRepository) IncrementLikes(id string) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	post.Likes++
	return post.Likes, nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.byLogin[user.UserID]; exists {
		return repositories.ErrDuplicate
	}
	clone := *user
	m.users[user.ID] = &clone
	m.byLogin[user.UserID] = user.ID
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *UserRepository) GetByUserID(userID string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byLogin[userID]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *m.users[id]
	return &clone, nil
}
