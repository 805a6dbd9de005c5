package repositories

import (
	"github.com/dgraph-io/badger/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/haeun0228/powerBoost/app/models"
)

// BadgerUserRepository implements UserRepository using BadgerDB. The user
// document is keyed by its generated ID; a secondary login key maps the
// unique user-chosen ID to it.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func userKey(id string) []byte {
	return []byte(UserKeyPrefix + id)
}

func loginKey(userID string) []byte {
	return []byte(LoginKeyPrefix + userID)
}

// Create persists a new user. Returns ErrDuplicate when the login user ID is
// already taken; the uniqueness check and both writes share one transaction.
func (r *BadgerUserRepository) Create(user *models.User) error {
	data, err := marshalEntity(user)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(loginKey(user.UserID))
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return pkgerrors.Wrap(err, "check login key")
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(loginKey(user.UserID), []byte(user.ID))
	})
}

// GetByID retrieves a user by its generated ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return pkgerrors.Wrap(err, "get user")
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUserID retrieves a user by its unique login user ID
func (r *BadgerUserRepository) GetByUserID(userID string) (*models.User, error) {
	var id string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(loginKey(userID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return pkgerrors.Wrap(err, "get login key")
		}

		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}
