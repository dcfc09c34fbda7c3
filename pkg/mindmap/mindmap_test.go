package mindmap

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAddNode(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(m *MindMap)
		node    Node
		wantErr error
	}{
		{
			name: "Valid",
			node: Node{ID: id, Text: "root"},
		},
		{
			name:    "NilID",
			node:    Node{Text: "no id"},
			wantErr: ErrNilNodeID,
		},
		{
			name: "Duplicate",
			setup: func(m *MindMap) {
				m.AddNode(Node{ID: id, Text: "first"})
			},
			node:    Node{ID: id, Text: "second"},
			wantErr: ErrDuplicateNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if tt.setup != nil {
				tt.setup(m)
			}
			err := m.AddNode(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddNode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	m := New()
	m.AddNode(Node{ID: a})
	m.AddNode(Node{ID: b})

	if err := m.AddEdge(Edge{From: a, To: b}); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := m.AddEdge(Edge{From: b, To: a}); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("reversed duplicate error = %v, want ErrDuplicateEdge", err)
	}
	if err := m.AddEdge(Edge{From: a, To: a}); !errors.Is(err, ErrSelfEdge) {
		t.Errorf("self edge error = %v, want ErrSelfEdge", err)
	}
	if err := m.AddEdge(Edge{From: a, To: c}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown target error = %v, want ErrUnknownNode", err)
	}
	if got := m.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestRemoveNodeDetachesEdges(t *testing.T) {
	root, left, right := uuid.New(), uuid.New(), uuid.New()

	m := New()
	for _, id := range []uuid.UUID{root, left, right} {
		m.AddNode(Node{ID: id})
	}
	m.AddEdge(Edge{From: root, To: left})
	m.AddEdge(Edge{From: root, To: right})
	m.AddEdge(Edge{From: left, To: right})

	removed, err := m.RemoveNode(root)
	if err != nil {
		t.Fatalf("RemoveNode() error = %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("removed %d edges, want 2", len(removed))
	}
	if got := m.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
	if m.Node(root) != nil {
		t.Error("removed node still present")
	}

	if _, err := m.RemoveNode(root); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("second removal error = %v, want ErrUnknownNode", err)
	}
}

func TestNeighbors(t *testing.T) {
	root, a, b := uuid.New(), uuid.New(), uuid.New()

	m := New()
	for _, id := range []uuid.UUID{root, a, b} {
		m.AddNode(Node{ID: id})
	}
	m.AddEdge(Edge{From: root, To: a})
	m.AddEdge(Edge{From: b, To: root})

	got := m.Neighbors(root)
	if len(got) != 2 {
		t.Fatalf("Neighbors() returned %d IDs, want 2", len(got))
	}
	// Sorted output regardless of edge direction.
	if got[0].String() > got[1].String() {
		t.Error("Neighbors() not sorted")
	}
}

func TestBounds(t *testing.T) {
	m := New()
	if _, _, _, _, ok := m.Bounds(); ok {
		t.Fatal("Bounds() ok = true for empty map")
	}

	m.AddNode(Node{ID: uuid.New(), X: -10, Y: 5})
	m.AddNode(Node{ID: uuid.New(), X: 40, Y: -3})

	minX, minY, maxX, maxY, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if minX != -10 || maxX != 40 || minY != -3 || maxY != 5 {
		t.Errorf("Bounds() = (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
}
