// Package store persists named string blobs. Implementations are pure
// passthrough: they never inspect or validate blob contents, and writes
// overwrite the named blob wholesale.
package store

type Store interface {
	// Get returns the blob stored under key. ok is false when no blob
	// exists; that is not an error.
	Get(key string) (blob []byte, ok bool, err error)

	// Set overwrites the blob stored under key.
	Set(key string, blob []byte) error

	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(key string) error
}
