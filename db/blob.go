package db

import (
	"encoding/json"

	"github.com/feedbook/feedbook-be/store"
)

// loadCollection hydrates one persisted collection. A missing blob and a blob
// that no longer parses both hydrate to an empty collection: the store is a
// cache of last-written state, not a source of truth worth failing over.
func loadCollection[T any](s store.Store, key string) ([]T, error) {
	blob, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// saveCollection serializes the full collection and overwrites the blob.
func saveCollection[T any](s store.Store, key string, records []T) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Set(key, blob)
}
