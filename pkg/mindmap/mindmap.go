// Package mindmap holds the editable content of a mind map document:
// nodes, the edges connecting them, and the canvas background color.
//
// The model is purely in-memory and knows nothing about files, undo
// history, or presentation. Node identity is a UUID so that undo records
// and serialized documents can reference nodes stably across deletions
// and re-insertions.
//
// MindMap is not safe for concurrent use; the editor runs single-threaded
// by design.
package mindmap

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	// ErrNilNodeID is returned when an operation references the zero UUID.
	ErrNilNodeID = errors.New("node ID must not be nil")

	// ErrDuplicateNode is returned by [MindMap.AddNode] when a node with
	// the same ID already exists.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrUnknownNode is returned when an operation references a node that
	// is not part of the map.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateEdge is returned by [MindMap.AddEdge] when the two nodes
	// are already connected in either direction.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrUnknownEdge is returned by [MindMap.RemoveEdge] when no edge
	// connects the given nodes.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrSelfEdge is returned by [MindMap.AddEdge] when both endpoints are
	// the same node.
	ErrSelfEdge = errors.New("edge endpoints must differ")
)

// Color is an RGB color with an 8-bit channel depth. The zero value is
// black; the default canvas background is [White].
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// White is the default background color of a new mind map.
var White = Color{R: 255, G: 255, B: 255}

// Node is a single idea box on the canvas. X and Y are scene coordinates
// of the node center; Color fills the node box when rendered.
type Node struct {
	ID    uuid.UUID
	Text  string
	X, Y  float64
	Color Color
}

// Edge is an undirected connection between two nodes. Edges are stored
// with the endpoints in insertion order but compare equal regardless of
// direction.
type Edge struct {
	From uuid.UUID
	To   uuid.UUID
}

// connects reports whether the edge links a and b in either direction.
func (e Edge) connects(a, b uuid.UUID) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// MindMap is the graph content of one document.
//
// The zero value is not usable; use [New].
type MindMap struct {
	nodes      map[uuid.UUID]*Node
	edges      []Edge
	background Color
}

// New creates an empty mind map with a white background.
func New() *MindMap {
	return &MindMap{
		nodes:      make(map[uuid.UUID]*Node),
		background: White,
	}
}

// AddNode inserts a node. The ID must be non-nil and unique within the
// map; all other fields are taken as given.
func (m *MindMap) AddNode(n Node) error {
	if n.ID == uuid.Nil {
		return ErrNilNodeID
	}
	if _, exists := m.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	node := n
	m.nodes[node.ID] = &node
	return nil
}

// RemoveNode deletes a node and every edge attached to it. The removed
// edges are returned so callers can rebuild them on undo. Returns
// ErrUnknownNode if the node does not exist.
func (m *MindMap) RemoveNode(id uuid.UUID) ([]Edge, error) {
	if _, exists := m.nodes[id]; !exists {
		return nil, ErrUnknownNode
	}
	delete(m.nodes, id)

	var removed []Edge
	kept := m.edges[:0]
	for _, e := range m.edges {
		if e.From == id || e.To == id {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	m.edges = kept
	return removed, nil
}

// Node returns the node with the given ID, or nil if absent.
func (m *MindMap) Node(id uuid.UUID) *Node {
	return m.nodes[id]
}

// SetNodeText updates a node's text. Returns ErrUnknownNode if absent.
func (m *MindMap) SetNodeText(id uuid.UUID, text string) error {
	n, exists := m.nodes[id]
	if !exists {
		return ErrUnknownNode
	}
	n.Text = text
	return nil
}

// SetNodePosition moves a node to new scene coordinates.
func (m *MindMap) SetNodePosition(id uuid.UUID, x, y float64) error {
	n, exists := m.nodes[id]
	if !exists {
		return ErrUnknownNode
	}
	n.X, n.Y = x, y
	return nil
}

// AddEdge connects two existing nodes. Endpoints must differ, both must
// exist, and the pair must not already be connected in either direction.
func (m *MindMap) AddEdge(e Edge) error {
	if e.From == uuid.Nil || e.To == uuid.Nil {
		return ErrNilNodeID
	}
	if e.From == e.To {
		return ErrSelfEdge
	}
	if _, exists := m.nodes[e.From]; !exists {
		return ErrUnknownNode
	}
	if _, exists := m.nodes[e.To]; !exists {
		return ErrUnknownNode
	}
	for _, existing := range m.edges {
		if existing.connects(e.From, e.To) {
			return ErrDuplicateEdge
		}
	}
	m.edges = append(m.edges, e)
	return nil
}

// RemoveEdge deletes the edge connecting the two nodes, matching either
// direction. Returns ErrUnknownEdge when no such edge exists.
func (m *MindMap) RemoveEdge(from, to uuid.UUID) error {
	for i, e := range m.edges {
		if e.connects(from, to) {
			m.edges = append(m.edges[:i], m.edges[i+1:]...)
			return nil
		}
	}
	return ErrUnknownEdge
}

// Nodes returns all nodes sorted by ID for deterministic iteration.
// The returned slice is a fresh copy; the pointed-to nodes are live.
func (m *MindMap) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Edges returns a copy of the edge list in insertion order.
func (m *MindMap) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// Neighbors returns the IDs of all nodes directly connected to id,
// sorted for deterministic iteration.
func (m *MindMap) Neighbors(id uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for _, e := range m.edges {
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// NodeCount returns the number of nodes.
func (m *MindMap) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of edges.
func (m *MindMap) EdgeCount() int { return len(m.edges) }

// IsEmpty reports whether the map has no nodes.
func (m *MindMap) IsEmpty() bool { return len(m.nodes) == 0 }

// Background returns the canvas background color.
func (m *MindMap) Background() Color { return m.background }

// SetBackground updates the canvas background color.
func (m *MindMap) SetBackground(c Color) { m.background = c }

// Bounds returns the scene bounding box enclosing all node centers.
// The second return value is false for an empty map.
func (m *MindMap) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, n := range m.nodes {
		if first {
			minX, maxX = n.X, n.X
			minY, maxY = n.Y, n.Y
			first = false
			continue
		}
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	return minX, minY, maxX, maxY, !first
}
