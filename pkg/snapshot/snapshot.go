// Package snapshot provides autosave snapshot storage for documents.
//
// Snapshots are opaque byte payloads keyed by document identity. The
// file-backed store keeps them under the user's data directory with an
// optional expiry so abandoned autosaves age out on their own.
package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is the snapshot storage contract.
// Implementations must treat a missing key as a miss, not an error.
type Store interface {
	// Get retrieves a snapshot. The second return value reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a snapshot. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a snapshot. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Key derives a stable snapshot key from a document's file identity.
// Untitled documents share the empty identity and therefore one slot.
func Key(fileName string) string {
	hash := sha256.Sum256([]byte(fileName))
	return hex.EncodeToString(hash[:])
}
