// Package document owns the persisted identity of a mind map: file name,
// modification flag, and graph content.
//
// Load and save are all-or-nothing. Loading decodes and validates into a
// fresh model and only then replaces the current content, so a failed load
// never leaves a partially read document observable. Saving serializes to
// memory first and then writes through a temp-file rename, so a failed
// save leaves both the on-disk file and the modification flag untouched.
//
// The modification flag is driven exclusively by the edit stream: it turns
// true when the mediator applies an edit and false exactly when a save
// succeeds. The document never guesses it from content comparison.
package document

import (
	"path/filepath"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// DefaultExtension is appended to a chosen save path that has no
// extension at all. Paths that already carry one are kept verbatim.
const DefaultExtension = ".heimer"

// Document is one open mind map with its file identity.
//
// The zero value is not usable; use [New].
type Document struct {
	fileName string
	modified bool
	content  *mindmap.MindMap
}

// New creates an untitled, unmodified document with empty content.
func New() *Document {
	return &Document{content: mindmap.New()}
}

// Content returns the live mind map. Mutating it does not toggle the
// modification flag; that is the caller's responsibility via SetModified.
func (d *Document) Content() *mindmap.MindMap { return d.content }

// FileName returns the document's file path, or "" for an untitled
// document.
func (d *Document) FileName() string { return d.fileName }

// HasFileName reports whether the document has been saved to or loaded
// from a file.
func (d *Document) HasFileName() bool { return d.fileName != "" }

// IsModified reports whether unsaved edits exist.
func (d *Document) IsModified() bool { return d.modified }

// SetModified records that the edit stream changed (or, after undo,
// restored) the persisted state.
func (d *Document) SetModified(modified bool) { d.modified = modified }

// Reset replaces the content with an empty map and clears the file
// identity and modification flag. Used for File > New.
func (d *Document) Reset() {
	d.fileName = ""
	d.modified = false
	d.content = mindmap.New()
}

// Load reads the document at path and replaces the current content on
// success only. On failure the document is unchanged.
func (d *Document) Load(path string) error {
	content, err := ReadFile(path)
	if err != nil {
		return err
	}
	d.content = content
	d.fileName = path
	d.modified = false
	return nil
}

// Save writes the document to its current file. The modification flag is
// cleared on success only.
func (d *Document) Save() error {
	if err := WriteFile(d.content, d.fileName); err != nil {
		return err
	}
	d.modified = false
	return nil
}

// SaveAs writes the document to path and adopts it as the file identity on
// success. A path without any extension gets [DefaultExtension] appended;
// the effective path can be read back via FileName.
func (d *Document) SaveAs(path string) error {
	path = NormalizePath(path)
	if err := WriteFile(d.content, path); err != nil {
		return err
	}
	d.fileName = path
	d.modified = false
	return nil
}

// NormalizePath appends [DefaultExtension] when path carries no extension.
func NormalizePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExtension
	}
	return path
}
