package prefs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/umputun/themer/app/store"
)

//go:generate moq -out mocks/kvstore.go -pkg mocks -skip-ensure -fmt goimports . KVStore

// VisitorCookie holds the id scoping a visitor's keys in KVStorage.
const VisitorCookie = "aio-visitor"

// KVStore is the part of the key-value store used by KVStorage.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// KVStorage keeps values in the server-side key-value store, scoped per visitor.
// The visitor id travels in a cookie and is issued on the first write.
type KVStorage struct {
	ctx     context.Context
	kv      KVStore
	cookies *CookieStorage
	visitor string
}

// NewKVStorage makes a storage for one request/response pair.
func NewKVStorage(w http.ResponseWriter, r *http.Request, kv KVStore, path string) *KVStorage {
	res := &KVStorage{ctx: r.Context(), kv: kv, cookies: NewCookieStorage(w, r, path)}
	if v, err := res.cookies.Get(VisitorCookie); err == nil {
		if id, perr := uuid.Parse(v); perr == nil {
			res.visitor = id.String()
		}
	}
	return res
}

// Visitor returns the visitor id, empty if none was issued yet.
func (k *KVStorage) Visitor() string {
	return k.visitor
}

// Get reads the visitor's value. Unknown visitors and missing keys give ErrNoValue.
func (k *KVStorage) Get(key string) (string, error) {
	if k.visitor == "" {
		return "", ErrNoValue
	}
	val, err := k.kv.Get(k.ctx, k.scoped(key))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", fmt.Errorf("get %s for visitor %s: %w", key, k.visitor, err)
	}
	return string(val), nil
}

// Set writes the visitor's value, issuing a visitor id first if needed.
func (k *KVStorage) Set(key, value string) error {
	if k.visitor == "" {
		id := uuid.NewString()
		if err := k.cookies.Set(VisitorCookie, id); err != nil {
			return fmt.Errorf("issue visitor id: %w", err)
		}
		k.visitor = id
	}
	if err := k.kv.Set(k.ctx, k.scoped(key), []byte(value)); err != nil {
		return fmt.Errorf("set %s for visitor %s: %w", key, k.visitor, err)
	}
	return nil
}

func (k *KVStorage) scoped(key string) string {
	return k.visitor + "/" + key
}
