package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore keeps snapshots as files in a directory.
// Entries are sharded by the first two characters of the key to avoid
// piling everything into a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
// The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// entry wraps snapshot data with metadata.
type entry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (e *entry) expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Get retrieves a snapshot, treating corrupt or expired entries as misses.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.expired() {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Data, true, nil
}

// Set stores a snapshot. A ttl of zero means the entry never expires.
func (s *FileStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{
		Key:     key,
		Data:    data,
		SavedAt: time.Now(),
	}
	if ttl > 0 {
		e.ExpiresAt = e.SavedAt.Add(ttl)
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0644)
}

// Delete removes a snapshot.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for a file store.
func (s *FileStore) Close() error {
	return nil
}

// Info describes a stored snapshot for listing.
type Info struct {
	Key       string
	Size      int
	SavedAt   time.Time
	ExpiresAt time.Time
}

// List returns metadata for every unexpired snapshot in the store.
func (s *FileStore) List() ([]Info, error) {
	var infos []Info
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil || e.expired() {
			return nil
		}
		infos = append(infos, Info{
			Key:       e.Key,
			Size:      len(e.Data),
			SavedAt:   e.SavedAt,
			ExpiresAt: e.ExpiresAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Clear removes every snapshot, expired or not.
func (s *FileStore) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	return os.MkdirAll(s.dir, 0755)
}

// path converts a key to a sharded file path.
func (s *FileStore) path(key string) string {
	hash := Key(key)
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
