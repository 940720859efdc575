// Package kvstore adapts a gocloud.dev blob bucket into the flat key-value
// string store the repositories persist into. Production uses an on-disk
// bucket, tests an in-memory one; both behave identically.
package kvstore

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store exposes get/set/remove for named keys. Operations are individually
// atomic but there is no atomicity across keys.
type Store struct {
	bucket *blob.Bucket
}

// NewFileStore opens an on-disk store rooted at path, creating the
// directory if needed.
func NewFileStore(path string) (*Store, error) {
	bucket, err := fileblob.OpenBucket(path, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open file bucket at %s", path)
	}

	return &Store{bucket: bucket}, nil
}

// NewMemStore opens an in-memory store. Used by tests.
func NewMemStore() *Store {
	return &Store{bucket: memblob.OpenBucket(nil)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", ErrKeyNotFound
		}

		return "", pkgerrors.Wrapf(err, "read key %s", key)
	}

	return string(data), nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return pkgerrors.Wrapf(err, "write key %s", key)
	}

	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return pkgerrors.Wrapf(err, "delete key %s", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return pkgerrors.WithStack(s.bucket.Close())
}
