// Package settings persists user preferences between sessions.
//
// Settings live in a single TOML file under the user's config directory.
// A missing file yields the defaults; unknown keys are ignored so older
// binaries can read files written by newer ones.
package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied when the settings file is absent or a field is unset.
const (
	DefaultWindowWidth  = 120
	DefaultWindowHeight = 40
	DefaultUndoLimit    = 128
	DefaultAutosaveTTL  = 7 * 24 * time.Hour
)

// Autosave controls snapshot writes on edit.
type Autosave struct {
	Enabled bool          `toml:"enabled"`
	TTL     time.Duration `toml:"ttl"`
}

// Settings is the persisted preference set.
type Settings struct {
	RecentPath   string   `toml:"recent_path"`
	Language     string   `toml:"language"`
	WindowWidth  int      `toml:"window_width"`
	WindowHeight int      `toml:"window_height"`
	UndoLimit    int      `toml:"undo_limit"`
	Autosave     Autosave `toml:"autosave"`
}

// Default returns the settings used when nothing has been persisted.
func Default() Settings {
	return Settings{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		UndoLimit:    DefaultUndoLimit,
		Autosave: Autosave{
			Enabled: true,
			TTL:     DefaultAutosaveTTL,
		},
	}
}

// Load reads settings from path. A missing file is not an error and
// yields the defaults; a malformed file is.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	s.normalize()
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
// The file is written whole via a temp file and rename so a crash never
// leaves a half-written settings file behind.
func Save(path string, s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// DefaultPath returns the conventional settings location for the user.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mindloom", "settings.toml"), nil
}

// SnapshotDir returns the conventional autosave snapshot location.
func SnapshotDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mindloom", "snapshots"), nil
}

// normalize clamps persisted values back into their valid ranges.
func (s *Settings) normalize() {
	if s.WindowWidth <= 0 {
		s.WindowWidth = DefaultWindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = DefaultWindowHeight
	}
	if s.UndoLimit <= 0 {
		s.UndoLimit = DefaultUndoLimit
	}
	if s.Autosave.TTL <= 0 {
		s.Autosave.TTL = DefaultAutosaveTTL
	}
}
