package repositories

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix  = "post:"
	UserKeyPrefix  = "user:"
	LoginKeyPrefix = "login:"
)

// Open opens (or creates) a Badger database at the given path
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open badger db")
	}
	return db, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "marshal entity")
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return pkgerrors.Wrap(err, "unmarshal entity")
	}
	return nil
}
