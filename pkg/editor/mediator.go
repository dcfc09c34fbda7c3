// Package editor is the facade over the document, its undo history, and
// the current selection. Everything the shell does to a document goes
// through the Mediator so edits, undo points, and the modified flag stay
// in lockstep.
package editor

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/mindloom/mindloom/pkg/document"
	"github.com/mindloom/mindloom/pkg/errors"
	"github.com/mindloom/mindloom/pkg/export"
	"github.com/mindloom/mindloom/pkg/lifecycle"
	"github.com/mindloom/mindloom/pkg/mindmap"
	"github.com/mindloom/mindloom/pkg/observability"
	"github.com/mindloom/mindloom/pkg/snapshot"
	"github.com/mindloom/mindloom/pkg/undo"
)

// Horizontal offset for children created next to their parent.
const childOffsetX = 160.0

// Mediator coordinates the document, the undo history, and the selection.
// It is not safe for concurrent use; the dispatcher's single-threaded
// model is assumed.
type Mediator struct {
	doc     *document.Document
	history *undo.History

	// selected is the reference node of the selection group: the one
	// most recently selected, used as the anchor for group moves and
	// child creation. It is always a member of selection when set.
	selected  uuid.UUID
	selection map[uuid.UUID]struct{}

	store       snapshot.Store
	snapshotTTL time.Duration
	autosave    bool
}

// NewMediator creates a mediator over a fresh untitled document.
// undoLimit bounds the history; values below one select the default.
func NewMediator(undoLimit int) *Mediator {
	return &Mediator{
		doc:       document.New(),
		history:   undo.NewHistory(undoLimit),
		selection: make(map[uuid.UUID]struct{}),
		store:     snapshot.NewNullStore(),
	}
}

// SetSnapshotStore enables autosave snapshots on every undo point.
// A nil store disables them again.
func (m *Mediator) SetSnapshotStore(store snapshot.Store, ttl time.Duration) {
	if store == nil {
		m.store = snapshot.NewNullStore()
		m.snapshotTTL = 0
		m.autosave = false
		return
	}
	m.store = store
	m.snapshotTTL = ttl
	m.autosave = true
}

// IsModified reports whether the document has unsaved edits.
func (m *Mediator) IsModified() bool { return m.doc.IsModified() }

// HasFileName reports whether the document has a file identity.
func (m *Mediator) HasFileName() bool { return m.doc.HasFileName() }

// Ensure the mediator satisfies the controller's guard interface.
var _ lifecycle.Status = (*Mediator)(nil)

// FileName returns the document's file identity, empty when untitled.
func (m *Mediator) FileName() string { return m.doc.FileName() }

// Content exposes the document content for rendering.
func (m *Mediator) Content() *mindmap.MindMap { return m.doc.Content() }

// CanSave reports whether saving makes sense: there is something to
// save, or the document already has a file to save into.
func (m *Mediator) CanSave() bool {
	return !m.doc.Content().IsEmpty() || m.doc.HasFileName()
}

// InitializeNew replaces the document with a fresh untitled one and
// drops the history and selection.
func (m *Mediator) InitializeNew() {
	m.doc.Reset()
	m.history.Clear()
	m.ClearSelection()
}

// OpenDocument loads the file at path into the document. On failure the
// current document, history, and selection are untouched.
func (m *Mediator) OpenDocument(path string) error {
	err := m.doc.Load(path)
	observability.Document().OnOpen(path, err)
	if err != nil {
		return err
	}
	m.history.Clear()
	m.ClearSelection()
	return nil
}

// SaveDocument writes the document to its current file identity.
func (m *Mediator) SaveDocument() error {
	err := m.doc.Save()
	observability.Document().OnSave(m.doc.FileName(), err)
	return err
}

// SaveDocumentAs writes the document to path and adopts it as the new
// file identity. The default extension is appended when path has none.
func (m *Mediator) SaveDocumentAs(path string) error {
	path = document.NormalizePath(path)
	err := m.doc.SaveAs(path)
	observability.Document().OnSave(path, err)
	return err
}

// IsUndoable reports whether Undo would do anything.
func (m *Mediator) IsUndoable() bool { return m.history.CanUndo() }

// IsRedoable reports whether Redo would do anything.
func (m *Mediator) IsRedoable() bool { return m.history.CanRedo() }

// Undo reverses the most recent edit. A no-op when nothing is undoable;
// otherwise the document counts as modified again.
func (m *Mediator) Undo() {
	if !m.history.CanUndo() {
		return
	}
	m.history.Undo()
	m.doc.SetModified(true)
}

// Redo reapplies the most recently undone edit.
func (m *Mediator) Redo() {
	if !m.history.CanRedo() {
		return
	}
	m.history.Redo()
	m.doc.SetModified(true)
}

// CreateNode adds a node at the given position and returns its ID.
func (m *Mediator) CreateNode(text string, x, y float64) (uuid.UUID, error) {
	node := mindmap.Node{ID: uuid.New(), Text: text, X: x, Y: y, Color: mindmap.White}
	if err := m.doc.Content().AddNode(node); err != nil {
		return uuid.Nil, err
	}

	m.saveUndoPoint(record{
		undo: func() { _, _ = m.doc.Content().RemoveNode(node.ID) },
		redo: func() { _ = m.doc.Content().AddNode(node) },
	})
	return node.ID, nil
}

// CreateChildNode adds a node next to its parent together with the
// connecting edge. The node and the edge form a single undo point.
func (m *Mediator) CreateChildNode(parentID uuid.UUID, text string) (uuid.UUID, error) {
	parent := m.doc.Content().Node(parentID)
	if parent == nil {
		return uuid.Nil, mindmap.ErrUnknownNode
	}

	node := mindmap.Node{
		ID:    uuid.New(),
		Text:  text,
		X:     parent.X + childOffsetX,
		Y:     parent.Y,
		Color: mindmap.White,
	}
	edge := mindmap.Edge{From: parentID, To: node.ID}

	if err := m.doc.Content().AddNode(node); err != nil {
		return uuid.Nil, err
	}
	if err := m.doc.Content().AddEdge(edge); err != nil {
		_, _ = m.doc.Content().RemoveNode(node.ID)
		return uuid.Nil, err
	}

	m.saveUndoPoint(record{
		undo: func() { _, _ = m.doc.Content().RemoveNode(node.ID) },
		redo: func() {
			_ = m.doc.Content().AddNode(node)
			_ = m.doc.Content().AddEdge(edge)
		},
	})
	return node.ID, nil
}

// DeleteNode removes a node and every edge attached to it. One undo
// point restores the node and all of its edges.
func (m *Mediator) DeleteNode(id uuid.UUID) error {
	node := m.doc.Content().Node(id)
	if node == nil {
		return mindmap.ErrUnknownNode
	}
	removed := *node

	edges, err := m.doc.Content().RemoveNode(id)
	if err != nil {
		return err
	}
	if m.IsSelected(id) {
		m.deselect(id)
	}

	m.saveUndoPoint(record{
		undo: func() {
			_ = m.doc.Content().AddNode(removed)
			for _, e := range edges {
				_ = m.doc.Content().AddEdge(e)
			}
		},
		redo: func() { _, _ = m.doc.Content().RemoveNode(id) },
	})
	return nil
}

// SetNodeText replaces a node's text.
func (m *Mediator) SetNodeText(id uuid.UUID, text string) error {
	node := m.doc.Content().Node(id)
	if node == nil {
		return mindmap.ErrUnknownNode
	}
	old := node.Text
	if old == text {
		return nil
	}

	if err := m.doc.Content().SetNodeText(id, text); err != nil {
		return err
	}
	m.saveUndoPoint(record{
		undo: func() { _ = m.doc.Content().SetNodeText(id, old) },
		redo: func() { _ = m.doc.Content().SetNodeText(id, text) },
	})
	return nil
}

// SetNodePosition moves a node.
func (m *Mediator) SetNodePosition(id uuid.UUID, x, y float64) error {
	node := m.doc.Content().Node(id)
	if node == nil {
		return mindmap.ErrUnknownNode
	}
	oldX, oldY := node.X, node.Y

	if err := m.doc.Content().SetNodePosition(id, x, y); err != nil {
		return err
	}
	m.saveUndoPoint(record{
		undo: func() { _ = m.doc.Content().SetNodePosition(id, oldX, oldY) },
		redo: func() { _ = m.doc.Content().SetNodePosition(id, x, y) },
	})
	return nil
}

// SetBackgroundColor changes the map background as an undoable edit.
func (m *Mediator) SetBackgroundColor(c mindmap.Color) {
	old := m.doc.Content().Background()
	if old == c {
		return
	}

	m.doc.Content().SetBackground(c)
	m.saveUndoPoint(record{
		undo: func() { m.doc.Content().SetBackground(old) },
		redo: func() { m.doc.Content().SetBackground(c) },
	})
}

// SelectNode replaces the selection group with a single node.
func (m *Mediator) SelectNode(id uuid.UUID) error {
	if m.doc.Content().Node(id) == nil {
		return mindmap.ErrUnknownNode
	}
	clear(m.selection)
	m.selection[id] = struct{}{}
	m.selected = id
	return nil
}

// ToggleSelect adds a node to the selection group, or removes it when
// already a member. The most recently added node becomes the reference.
func (m *Mediator) ToggleSelect(id uuid.UUID) error {
	if m.doc.Content().Node(id) == nil {
		return mindmap.ErrUnknownNode
	}
	if _, ok := m.selection[id]; ok {
		m.deselect(id)
		return nil
	}
	m.selection[id] = struct{}{}
	m.selected = id
	return nil
}

// IsSelected reports whether a node is in the selection group.
func (m *Mediator) IsSelected(id uuid.UUID) bool {
	_, ok := m.selection[id]
	return ok
}

// ClearSelection drops the whole selection group.
func (m *Mediator) ClearSelection() {
	clear(m.selection)
	m.selected = uuid.Nil
}

// SelectedNode returns the reference node's ID, if any.
func (m *Mediator) SelectedNode() (uuid.UUID, bool) {
	return m.selected, m.selected != uuid.Nil
}

// SelectedNodes returns the members of the selection group sorted by ID.
func (m *Mediator) SelectedNodes() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.selection))
	for id := range m.selection {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// SelectionSize returns the number of nodes in the selection group.
func (m *Mediator) SelectionSize() int { return len(m.selection) }

// MoveSelection moves the reference node to the given position and the
// rest of the selection group with it, preserving relative offsets.
// The whole group move is one undo record.
func (m *Mediator) MoveSelection(x, y float64) error {
	ref := m.doc.Content().Node(m.selected)
	if ref == nil {
		return mindmap.ErrUnknownNode
	}

	dx, dy := x-ref.X, y-ref.Y
	if dx == 0 && dy == 0 {
		return nil
	}

	type placement struct {
		id   uuid.UUID
		x, y float64
	}
	before := make([]placement, 0, len(m.selection))
	after := make([]placement, 0, len(m.selection))
	for id := range m.selection {
		node := m.doc.Content().Node(id)
		if node == nil {
			continue
		}
		before = append(before, placement{id, node.X, node.Y})
		after = append(after, placement{id, node.X + dx, node.Y + dy})
	}

	for _, p := range after {
		if err := m.doc.Content().SetNodePosition(p.id, p.x, p.y); err != nil {
			return err
		}
	}

	m.saveUndoPoint(record{
		undo: func() {
			for _, p := range before {
				_ = m.doc.Content().SetNodePosition(p.id, p.x, p.y)
			}
		},
		redo: func() {
			for _, p := range after {
				_ = m.doc.Content().SetNodePosition(p.id, p.x, p.y)
			}
		},
	})
	return nil
}

// deselect removes a node from the group and, when it was the
// reference, promotes another member.
func (m *Mediator) deselect(id uuid.UUID) {
	delete(m.selection, id)
	if m.selected != id {
		return
	}
	m.selected = uuid.Nil
	for other := range m.selection {
		m.selected = other
		break
	}
}

// CopySelectedText puts the selected node's text on the system clipboard.
func (m *Mediator) CopySelectedText() error {
	if m.selected == uuid.Nil {
		return mindmap.ErrUnknownNode
	}
	node := m.doc.Content().Node(m.selected)
	if node == nil {
		return mindmap.ErrUnknownNode
	}
	return clipboard.WriteAll(node.Text)
}

// ExportSize returns the natural export dimensions of the scene.
func (m *Mediator) ExportSize() (export.Size, error) {
	return export.SceneSize(m.doc.Content())
}

// ExportPNG renders the document to a PNG file.
func (m *Mediator) ExportPNG(path string, opts export.Options) error {
	err := export.WritePNG(path, m.doc.Content(), opts)
	observability.Document().OnExport(path, "png", err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "exporting %s", path)
	}
	return nil
}

// ExportSVG renders the document to an SVG file.
func (m *Mediator) ExportSVG(path string) error {
	err := export.WriteSVG(path, m.doc.Content())
	observability.Document().OnExport(path, "svg", err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "exporting %s", path)
	}
	return nil
}

// saveUndoPoint records an edit, marks the document modified, and
// writes an autosave snapshot when a store is configured.
func (m *Mediator) saveUndoPoint(r record) {
	m.history.Push(r)
	m.doc.SetModified(true)

	if !m.autosave {
		return
	}
	key := snapshot.Key(m.doc.FileName())
	data, err := document.Marshal(m.doc.Content())
	if err != nil {
		observability.Document().OnSnapshot(key, 0, errors.Wrap(errors.ErrCodeSnapshotFailed, err, "encoding snapshot"))
		return
	}
	setErr := m.store.Set(context.Background(), key, data, m.snapshotTTL)
	if setErr != nil {
		setErr = errors.Wrap(errors.ErrCodeSnapshotFailed, setErr, "writing snapshot %s", key)
	}
	observability.Document().OnSnapshot(key, len(data), setErr)
}
