// Package seed loads a small fixture data set for local development.
package seed

import (
	"time"

	"github.com/haeun0228/powerBoost/app/models"
	"github.com/haeun0228/powerBoost/app/repositories"
	"github.com/haeun0228/powerBoost/app/services"
)

type mockPost struct {
	title    string
	content  string
	likes    int
	comments []string
}

var mockPosts = []mockPost{
	{
		title:    "First post",
		content:  "Welcome to the board.",
		likes:    3,
		comments: []string{"Nice to be here!", "Hello everyone"},
	},
	{
		title:   "Badger notes",
		content: "Embedded documents keep comment writes atomic.",
		likes:   1,
	},
	{
		title:    "Open thread",
		comments: []string{"First!"},
	},
}

// Load creates a seed user and the mock posts. Posts get staggered creation
// times so list ordering is visible in development.
func Load(posts repositories.PostRepository, users repositories.UserRepository) error {
	seedUser := &models.User{UserID: "seed"}
	seedUser.BeforeCreate()
	if err := seedUser.SetPassword("seed-password"); err != nil {
		return err
	}
	if err := users.Create(seedUser); err != nil {
		return err
	}

	articles := services.NewArticleService(posts)
	base := time.Now().Add(-time.Duration(len(mockPosts)) * time.Hour)

	for i, mp := range mockPosts {
		post, err := articles.Create(seedUser.ID, services.CreatePostInput{
			Title:   mp.title,
			Content: mp.content,
		})
		if err != nil {
			return err
		}

		post.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		post.UpdatedAt = post.CreatedAt
		if err := posts.Update(post); err != nil {
			return err
		}

		for _, content := range mp.comments {
			if _, err := articles.AddComment(post.ID, seedUser.ID, content); err != nil {
				return err
			}
		}
		for j := 0; j < mp.likes; j++ {
			if _, err := articles.Like(post.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
