package editor

import "github.com/mindloom/mindloom/pkg/undo"

// record is an undo history entry built from a pair of closures bound to
// the document content. Redo must reproduce exactly what the original
// edit did; Undo must reverse it completely.
type record struct {
	undo func()
	redo func()
}

func (r record) Undo() { r.undo() }
func (r record) Redo() { r.redo() }

var _ undo.Record = record{}
