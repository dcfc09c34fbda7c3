package snapshot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestFileStoreRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"version":1}`)
	if err := s.Set(ctx, "doc.heimer", payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := s.Get(ctx, "doc.heimer")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss for a stored key")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get = %q, want %q", got, payload)
	}
}

func TestFileStoreMiss(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get(context.Background(), "never-stored")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported a hit for a missing key")
	}
}

func TestFileStoreExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "soon-gone", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, ok, err := s.Get(ctx, "soon-gone")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expired entry still returned")
	}
}

func TestFileStoreDeleteMissingKey(t *testing.T) {
	s := newTestStore(t)
	if err := s.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileStoreCorruptEntryIsMiss(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "doc", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := os.WriteFile(s.path("doc"), []byte("not json"), 0644); err != nil {
		t.Fatalf("corrupting entry: %v", err)
	}

	_, ok, err := s.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("corrupt entry returned as a hit")
	}
}

func TestFileStoreListAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"a.heimer", "b.heimer"} {
		if err := s.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set(%q): %v", key, err)
		}
	}

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(infos))
	}
	for _, info := range infos {
		if info.SavedAt.IsZero() {
			t.Errorf("entry %q has zero SavedAt", info.Key)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	infos, err = s.List()
	if err != nil {
		t.Fatalf("List after Clear: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("List after Clear returned %d entries", len(infos))
	}
}

func TestFileStoreSharding(t *testing.T) {
	s := newTestStore(t)
	path := s.path("doc.heimer")

	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		t.Fatalf("Rel: %v", err)
	}
	dir := filepath.Dir(rel)
	if len(dir) != 2 {
		t.Errorf("shard directory = %q, want two characters", dir)
	}
}

func TestNullStore(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("null store returned a hit")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
