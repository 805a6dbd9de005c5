package services

import (
	"errors"
	"strings"

	"github.com/haeun0228/powerBoost/app/apperrors"
	"github.com/haeun0228/powerBoost/app/auth"
	"github.com/haeun0228/powerBoost/app/models"
	"github.com/haeun0228/powerBoost/app/repositories"
)

// Credentials is the register/login request body.
type Credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// AuthResponse is what register and login return to the client.
type AuthResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// UserService handles registration and login.
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.TokenIssuer
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, tokens *auth.TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a new account with a hashed password and issues a token
func (s *UserService) Register(creds Credentials) (*AuthResponse, error) {
	creds.UserID = strings.TrimSpace(creds.UserID)
	if creds.UserID == "" || creds.Password == "" {
		return nil, apperrors.New(apperrors.Validation, "userId and password are required")
	}

	user := &models.User{UserID: creds.UserID}
	user.BeforeCreate()
	if err := user.SetPassword(creds.Password); err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to hash password")
	}

	err := s.users.Create(user)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, apperrors.New(apperrors.Conflict, "user ID is already taken")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to create user")
	}

	return s.respond(user)
}

// Login verifies credentials and issues a token. Unknown user and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(creds Credentials) (*AuthResponse, error) {
	user, err := s.users.GetByUserID(strings.TrimSpace(creds.UserID))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.New(apperrors.Unauthorized, "invalid ID or password")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to load user")
	}

	if !user.MatchPassword(creds.Password) {
		return nil, apperrors.New(apperrors.Unauthorized, "invalid ID or password")
	}

	return s.respond(user)
}

// Resolve returns the user an issued token belongs to, for the auth gate
func (s *UserService) Resolve(token string) (*models.User, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unauthorized, err, "invalid token")
	}

	user, err := s.users.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.New(apperrors.Unauthorized, "invalid token")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to load user")
	}
	return user, nil
}

func (s *UserService) respond(user *models.User) (*AuthResponse, error) {
	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Storage, err, "failed to sign token")
	}
	return &AuthResponse{UserID: user.UserID, Token: token}, nil
}
