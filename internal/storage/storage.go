package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound dikembalikan ketika key tidak ada di store.
var ErrNotFound = errors.New("storage: key not found")

// Store adalah port key-value untuk state milik storefront:
// cart tamu, snapshot checkout, dan catatan order. Implementasi
// production memakai Redis, test memakai Memory.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// Key helpers. Semua state di-scope per session.
func CartKey(sessionID string) string      { return "cart:" + sessionID }
func SelectionKey(sessionID string) string { return "selection:" + sessionID }
func CheckoutKey(sessionID string) string  { return "checkout:" + sessionID }
func ProfileKey(sessionID string) string   { return "profile:" + sessionID }
func NotesKey(sessionID string) string     { return "notes:" + sessionID }
