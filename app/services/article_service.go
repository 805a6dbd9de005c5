package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/haeun0228/powerBoost/app/apperrors"
	"github.com/haeun0228/powerBoost/app/models"
	"github.com/haeun0228/powerBoost/app/repositories"
)

// CreatePostInput carries the caller-supplied fields for a new post.
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostPatch carries the fields an owner may change on a post. Absent fields
// are left unchanged; nothing else is patchable.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ArticleService owns post and comment business rules: validation, ownership
// checks, and classification of persistence failures. Every error it returns
// is a classified outcome.
type ArticleService struct {
	posts repositories.PostRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(posts repositories.PostRepository) *ArticleService {
	return &ArticleService{posts: posts}
}

// List returns all posts ordered by creation time. Newest-first is the
// default; models.SortOldestFirst reverses the order.
func (s *ArticleService) List(sortOrder string) ([]*models.Post, error) {
	posts, err := s.posts.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to list posts")
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if sortOrder == models.SortOldestFirst {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt)
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

// Get retrieves a post by ID with its embedded comments
func (s *ArticleService) Get(postID string) (*models.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, apperrors.New(apperrors.MalformedRef, "post not found")
	}

	post, err := s.posts.GetByID(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "post not found")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to get post")
	}
	return post, nil
}

// Create validates and persists a new post owned by ownerID
func (s *ArticleService) Create(ownerID string, input CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:   input.Title,
		UserID:  ownerID,
		Content: input.Content,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.Validation, err, "invalid post")
	}

	if err := s.posts.Create(post); err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to create post")
	}
	return post, nil
}

// AddComment appends a comment to the end of the post's comment sequence and
// persists the whole post atomically. The validation failure path leaves the
// stored post untouched.
func (s *ArticleService) AddComment(postID, authorID, content string) (*models.Comment, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		UserID:  authorID,
		Content: content,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.Validation, err, "invalid comment")
	}

	post.AddComment(comment)
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(post); err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to save comment")
	}
	return &comment, nil
}

// Like increments the post's like count by exactly 1 and returns the new
// count. There is no per-user dedup; liking twice counts twice.
func (s *ArticleService) Like(postID string) (int, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return 0, apperrors.New(apperrors.MalformedRef, "post not found")
	}

	likes, err := s.posts.IncrementLikes(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		return 0, apperrors.New(apperrors.NotFound, "post not found")
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.Storage, err, "failed to like post")
	}
	return likes, nil
}

// Update merges the patch into the post after checking that the actor owns
// it. Denial happens before any field is touched.
func (s *ArticleService) Update(postID, actorID string, patch PostPatch) (*models.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}

	if !CanModify(actorID, post.UserID) {
		return nil, apperrors.New(apperrors.Forbidden, "you can only edit your own post")
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	post.UpdatedAt = time.Now()

	if err := post.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.Validation, err, "invalid post")
	}

	if err := s.posts.Update(post); err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to update post")
	}
	return post, nil
}

// Delete removes the post and its embedded comments, owner only
func (s *ArticleService) Delete(postID, actorID string) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}

	if !CanModify(actorID, post.UserID) {
		return apperrors.New(apperrors.Forbidden, "you can only delete your own post")
	}

	if err := s.posts.Delete(postID); err != nil {
		return apperrors.Wrap(apperrors.Storage, err, "failed to delete post")
	}
	return nil
}

// DeleteComment removes a comment from the post's sequence and persists the
// parent. Ownership is checked against the comment's author, not the post's
// owner.
func (s *ArticleService) DeleteComment(postID, commentID, actorID string) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}

	comment, found := post.FindComment(commentID)
	if !found {
		return apperrors.New(apperrors.NotFound, "comment not found")
	}

	if !CanModify(actorID, comment.UserID) {
		return apperrors.New(apperrors.Forbidden, "you can only delete your own comments")
	}

	if err := post.RemoveComment(commentID); err != nil {
		return apperrors.New(apperrors.NotFound, "comment not found")
	}
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(post); err != nil {
		return apperrors.Wrap(apperrors.Storage, err, "failed to delete comment")
	}
	return nil
}
