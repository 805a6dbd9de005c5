package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun0228/powerBoost/app/apperrors"
	"github.com/haeun0228/powerBoost/app/auth"
	"github.com/haeun0228/powerBoost/app/repositories/mock"
)

func newUserService() *UserService {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewUserService(mock.NewUserRepository(), tokens)
}

func TestRegister(t *testing.T) {
	svc := newUserService()

	t.Run("creates account and issues token", func(t *testing.T) {
		resp, err := svc.Register(Credentials{UserID: "hae", Password: "pw"})
		assert.NoError(t, err)
		assert.Equal(t, "hae", resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("token resolves back to the user", func(t *testing.T) {
		resp, err := svc.Register(Credentials{UserID: "resolver", Password: "pw"})
		require.NoError(t, err)

		user, err := svc.Resolve(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "resolver", user.UserID)
	})

	t.Run("duplicate user id", func(t *testing.T) {
		_, err := svc.Register(Credentials{UserID: "hae", Password: "pw"})
		assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(Credentials{UserID: "", Password: "pw"})
		assert.Equal(t, apperrors.Validation, apperrors.KindOf(err))

		_, err = svc.Register(Credentials{UserID: "nopw", Password: ""})
		assert.Equal(t, apperrors.Validation, apperrors.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	svc := newUserService()
	_, err := svc.Register(Credentials{UserID: "hae", Password: "pw"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(Credentials{UserID: "hae", Password: "pw"})
		assert.NoError(t, err)
		assert.Equal(t, "hae", resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(Credentials{UserID: "hae", Password: "wrong"})
		assert.Equal(t, apperrors.Unauthorized, apperrors.KindOf(err))
	})

	t.Run("unknown user gets the same outcome", func(t *testing.T) {
		_, err := svc.Login(Credentials{UserID: "ghost", Password: "pw"})
		assert.Equal(t, apperrors.Unauthorized, apperrors.KindOf(err))
	})
}

func TestResolve(t *testing.T) {
	svc := newUserService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Resolve("garbage")
		assert.Equal(t, apperrors.Unauthorized, apperrors.KindOf(err))
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		tokens := auth.NewTokenIssuer("test-secret", time.Hour)
		orphan := NewUserService(mock.NewUserRepository(), tokens)
		token, err := tokens.Sign("no-such-user")
		require.NoError(t, err)

		_, err = orphan.Resolve(token)
		assert.Equal(t, apperrors.Unauthorized, apperrors.KindOf(err))
	})
}

func TestCanModify(t *testing.T) {
	assert.True(t, CanModify("user-a", "user-a"))
	assert.False(t, CanModify("user-a", "user-b"))
	assert.False(t, CanModify("", ""))
	assert.False(t, CanModify("", "user-a"))
}
