package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun0228/powerBoost/app/repositories/mock"
)

func TestLoad(t *testing.T) {
	posts := mock.NewPostRepository()
	users := mock.NewUserRepository()

	require.NoError(t, Load(posts, users))

	seedUser, err := users.GetByUserID("seed")
	assert.NoError(t, err)
	assert.True(t, seedUser.MatchPassword("seed-password"))

	loaded, err := posts.List()
	require.NoError(t, err)
	require.Len(t, loaded, len(mockPosts))

	byTitle := map[string]int{}
	for i, post := range loaded {
		byTitle[post.Title] = i
		assert.Equal(t, seedUser.ID, post.UserID)
	}

	first := loaded[byTitle["First post"]]
	assert.Equal(t, 3, first.Likes)
	assert.Len(t, first.Comments, 2)

	t.Run("loading twice fails on the seed user", func(t *testing.T) {
		assert.Error(t, Load(posts, users))
	})
}
