package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("Load = %+v, want defaults", s)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.toml")

	want := Settings{
		RecentPath:   "/home/me/maps/plan.heimer",
		Language:     "fi",
		WindowWidth:  100,
		WindowHeight: 30,
		UndoLimit:    64,
		Autosave: Autosave{
			Enabled: true,
			TTL:     time.Hour,
		},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "window_width = -5\nwindow_height = 0\nundo_limit = 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.WindowWidth != DefaultWindowWidth {
		t.Errorf("WindowWidth = %d, want %d", s.WindowWidth, DefaultWindowWidth)
	}
	if s.WindowHeight != DefaultWindowHeight {
		t.Errorf("WindowHeight = %d, want %d", s.WindowHeight, DefaultWindowHeight)
	}
	if s.UndoLimit != DefaultUndoLimit {
		t.Errorf("UndoLimit = %d, want %d", s.UndoLimit, DefaultUndoLimit)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("recent_path = [unclosed"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted a malformed file")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "settings.toml" {
		t.Errorf("directory contents = %v, want only settings.toml", entries)
	}
}
