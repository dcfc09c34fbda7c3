package cli

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

func TestRenderOutlineEmptyMap(t *testing.T) {
	out := renderOutline(mindmap.New(), uuid.Nil)
	if !strings.Contains(out, "empty map") {
		t.Errorf("renderOutline = %q, want empty-map placeholder", out)
	}
}

func TestRenderOutlineTree(t *testing.T) {
	m := mindmap.New()
	root := uuid.New()
	child := uuid.New()
	island := uuid.New()

	for _, n := range []mindmap.Node{
		{ID: root, Text: "trunk"},
		{ID: child, Text: "branch"},
		{ID: island, Text: "island"},
	} {
		if err := m.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if err := m.AddEdge(mindmap.Edge{From: root, To: child}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	out := renderOutline(m, uuid.Nil)

	for _, want := range []string{"trunk", "branch", "island"} {
		if strings.Count(out, want) != 1 {
			t.Errorf("outline shows %q %d times, want once:\n%s", want, strings.Count(out, want), out)
		}
	}
}

func TestRenderOutlineMarksSelection(t *testing.T) {
	m := mindmap.New()
	id := uuid.New()
	if err := m.AddNode(mindmap.Node{ID: id, Text: "chosen"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	out := renderOutline(m, id)
	if !strings.Contains(out, "▸ chosen") {
		t.Errorf("selection not marked:\n%s", out)
	}
}

func TestRenderOutlineCycleTerminates(t *testing.T) {
	m := mindmap.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	for _, n := range []mindmap.Node{{ID: a, Text: "a"}, {ID: b, Text: "b"}, {ID: c, Text: "c"}} {
		if err := m.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	for _, e := range []mindmap.Edge{{From: a, To: b}, {From: b, To: c}, {From: c, To: a}} {
		if err := m.AddEdge(e); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	out := renderOutline(m, uuid.Nil)
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q:\n%s", want, out)
		}
	}
}

func TestTitleLine(t *testing.T) {
	t.Run("Untitled", func(t *testing.T) {
		if got := titleLine("", false); !strings.Contains(got, "untitled") {
			t.Errorf("titleLine = %q", got)
		}
	})

	t.Run("Modified", func(t *testing.T) {
		if got := titleLine("plan.heimer", true); !strings.Contains(got, "●") {
			t.Errorf("titleLine without modified marker: %q", got)
		}
	})
}
