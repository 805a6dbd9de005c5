package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/haeun0228/powerBoost/app/auth"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
}

// SetPassword hashes the plaintext and stores the hash. Hashing happens here
// and nowhere else, so a save that does not change the password never
// re-hashes an already hashed value.
func (u *User) SetPassword(plain string) error {
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// MatchPassword reports whether the plaintext matches the stored hash
func (u *User) MatchPassword(plain string) bool {
	return auth.CheckPassword(plain, u.Password)
}
