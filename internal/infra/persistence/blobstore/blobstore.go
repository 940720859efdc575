// Package blobstore implements the domain repositories on top of the
// key-value store. Each collection lives whole under one key as a JSON
// document; every operation is a synchronous read-modify-write guarded by a
// per-repository mutex, so a single process never interleaves writers.
package blobstore

import (
	"context"
	"encoding/json"

	"suq/internal/errors"
	"suq/internal/infra/kvstore"
)

// Region keys. Four independent named regions, one per collection.
const (
	productsKey = "products.json"
	ordersKey   = "orders.json"
	usersKey    = "users.json"
	sessionKey  = "session.json"
)

// readRegion loads and parses a stored JSON region into out. An absent or
// malformed region reads as "no data yet": out is left at its zero value
// and ok is false. Storage corruption never propagates to the caller.
func readRegion[T any](ctx context.Context, store *kvstore.Store, key string, out *T) (ok bool, err error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "load region %s", key)
	}

	if json.Unmarshal([]byte(raw), out) != nil {
		// Malformed stored JSON is equivalent to an empty region.
		var zero T
		*out = zero

		return false, nil
	}

	return true, nil
}

// writeRegion serializes value and stores it under key.
func writeRegion[T any](ctx context.Context, store *kvstore.Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode region %s", key)
	}

	if err := store.Set(ctx, key, string(data)); err != nil {
		return errors.Wrapf(err, "store region %s", key)
	}

	return nil
}
