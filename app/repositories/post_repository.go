package repositories

import (
	"github.com/dgraph-io/badger/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/haeun0228/powerBoost/app/models"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Each post is
// one document embedding its full comment sequence, so every operation is a
// single-document transaction.
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// Create persists a new post document
func (r *BadgerPostRepository) Create(post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post document by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return pkgerrors.Wrap(err, "get post")
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all post documents in key order. Callers sort by creation
// time themselves.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update replaces an existing post document
func (r *BadgerPostRepository) Update(post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return pkgerrors.Wrap(err, "update post")
		}

		return txn.Set(key, data)
	})
}

// Delete deletes a post document (and with it the embedded comments)
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return pkgerrors.Wrap(err, "delete post")
		}

		return txn.Delete(key)
	})
}

// IncrementLikes atomically increments a post's like count by 1 and returns
// the new count. The read and write happen inside one transaction; a
// conflicting concurrent increment fails the commit and is retried, so N
// concurrent calls always land as +N.
func (r *BadgerPostRepository) IncrementLikes(id string) (int, error) {
	for {
		var likes int
		err := r.db.Update(func(txn *badger.Txn) error {
			key := postKey(id)
			item, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			if err != nil {
				return pkgerrors.Wrap(err, "increment likes")
			}

			var post models.Post
			if err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			}); err != nil {
				return err
			}

			post.Likes++
			likes = post.Likes

			data, err := marshalEntity(&post)
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})
		if err == badger.ErrConflict {
			continue
		}
		if err != nil {
			return 0, err
		}
		return likes, nil
	}
}
