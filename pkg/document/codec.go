package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mindloom/mindloom/pkg/errors"
	"github.com/mindloom/mindloom/pkg/mindmap"
)

// FormatVersion is written into every saved document. Readers accept
// documents up to and including this version.
const FormatVersion = 1

// wire format: nodes sorted by ID for deterministic output.

type fileFormat struct {
	Version    int           `json:"version"`
	Background mindmap.Color `json:"background"`
	Nodes      []fileNode    `json:"nodes"`
	Edges      []fileEdge    `json:"edges"`
}

type fileNode struct {
	ID    string        `json:"id"`
	Text  string        `json:"text"`
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	Color mindmap.Color `json:"color"`
}

type fileEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Marshal converts a mind map to JSON bytes.
func Marshal(m *mindmap.MindMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a mind map as indented JSON to w.
func Write(m *mindmap.MindMap, w io.Writer) error {
	out := fileFormat{
		Version:    FormatVersion,
		Background: m.Background(),
		Nodes:      make([]fileNode, 0, m.NodeCount()),
		Edges:      make([]fileEdge, 0, m.EdgeCount()),
	}
	for _, n := range m.Nodes() {
		out.Nodes = append(out.Nodes, fileNode{
			ID:    n.ID.String(),
			Text:  n.Text,
			X:     n.X,
			Y:     n.Y,
			Color: n.Color,
		})
	}
	for _, e := range m.Edges() {
		out.Edges = append(out.Edges, fileEdge{From: e.From.String(), To: e.To.String()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a mind map from r. The result is fully validated: node IDs
// must parse as UUIDs and edges must reference declared nodes. Any failure
// returns before a mind map is produced, so callers get all-or-nothing
// semantics for free.
func Read(r io.Reader) (*mindmap.MindMap, error) {
	var data fileFormat
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Version > FormatVersion {
		return nil, fmt.Errorf("unsupported format version %d", data.Version)
	}

	m := mindmap.New()
	m.SetBackground(data.Background)

	for _, n := range data.Nodes {
		id, err := uuid.Parse(n.ID)
		if err != nil {
			return nil, fmt.Errorf("node ID %q: %w", n.ID, err)
		}
		if err := m.AddNode(mindmap.Node{ID: id, Text: n.Text, X: n.X, Y: n.Y, Color: n.Color}); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		from, err := uuid.Parse(e.From)
		if err != nil {
			return nil, fmt.Errorf("edge endpoint %q: %w", e.From, err)
		}
		to, err := uuid.Parse(e.To)
		if err != nil {
			return nil, fmt.Errorf("edge endpoint %q: %w", e.To, err)
		}
		if err := m.AddEdge(mindmap.Edge{From: from, To: to}); err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return m, nil
}

// ReadFile reads and validates the document at path.
func ReadFile(path string) (*mindmap.MindMap, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "empty document path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOpenFailed, err, "open %s", path)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOpenFailed, err, "read %s", path)
	}
	return m, nil
}

// WriteFile writes a mind map to path through a temp file in the same
// directory followed by a rename, so an interrupted save never clobbers
// the previous on-disk document.
func WriteFile(m *mindmap.MindMap, path string) error {
	if path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "empty document path")
	}

	data, err := Marshal(m)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "serialize %s", path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "close %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "rename temp file to %s", path)
	}
	return nil
}
