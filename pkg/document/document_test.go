package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/mindloom/mindloom/pkg/errors"
	"github.com/mindloom/mindloom/pkg/mindmap"
)

func buildMap(t *testing.T) (*mindmap.MindMap, uuid.UUID, uuid.UUID) {
	t.Helper()
	root, child := uuid.New(), uuid.New()
	m := mindmap.New()
	m.SetBackground(mindmap.Color{R: 10, G: 20, B: 30})
	if err := m.AddNode(mindmap.Node{ID: root, Text: "root", X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNode(mindmap.Node{ID: child, Text: "child", X: 3, Y: 4}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddEdge(mindmap.Edge{From: root, To: child}); err != nil {
		t.Fatal(err)
	}
	return m, root, child
}

func TestSaveAsAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.heimer")

	content, root, _ := buildMap(t)
	d := New()
	d.content = content
	d.SetModified(true)

	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if d.IsModified() {
		t.Error("IsModified() = true after successful save")
	}
	if d.FileName() != path {
		t.Errorf("FileName() = %q, want %q", d.FileName(), path)
	}

	reloaded := New()
	if err := reloaded.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := reloaded.Content()
	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("reloaded %d nodes / %d edges, want 2 / 1", got.NodeCount(), got.EdgeCount())
	}
	if got.Node(root) == nil || got.Node(root).Text != "root" {
		t.Error("root node text lost in roundtrip")
	}
	if got.Background() != (mindmap.Color{R: 10, G: 20, B: 30}) {
		t.Errorf("background = %+v", got.Background())
	}
}

func TestSaveAsAppendsExtensionOnlyWithoutOne(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "BareName", in: "notes", want: "notes" + DefaultExtension},
		{name: "NativeExtension", in: "map.heimer", want: "map.heimer"},
		{name: "ForeignExtension", in: "map.json", want: "map.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			if err := d.SaveAs(filepath.Join(dir, tt.in)); err != nil {
				t.Fatalf("SaveAs() error = %v", err)
			}
			if got := filepath.Base(d.FileName()); got != tt.want {
				t.Errorf("FileName() base = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFailureLeavesDocumentUnchanged(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "broken.heimer")
	if err := os.WriteFile(badPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	d := New()
	content, root, _ := buildMap(t)
	d.content = content
	d.fileName = "previous.heimer"
	d.SetModified(true)

	err := d.Load(badPath)
	if err == nil {
		t.Fatal("Load() succeeded on malformed file")
	}
	if !apperrors.Is(err, apperrors.ErrCodeOpenFailed) {
		t.Errorf("Load() error code = %q, want OPEN_FAILED", apperrors.GetCode(err))
	}
	if d.FileName() != "previous.heimer" {
		t.Error("file identity changed after failed load")
	}
	if !d.IsModified() {
		t.Error("modification flag changed after failed load")
	}
	if d.Content().Node(root) == nil {
		t.Error("content changed after failed load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	d := New()
	err := d.Load(filepath.Join(t.TempDir(), "absent.heimer"))
	if !apperrors.Is(err, apperrors.ErrCodeOpenFailed) {
		t.Errorf("error code = %q, want OPEN_FAILED", apperrors.GetCode(err))
	}
}

func TestSaveFailureKeepsModifiedFlag(t *testing.T) {
	d := New()
	content, _, _ := buildMap(t)
	d.content = content
	d.fileName = filepath.Join(t.TempDir(), "no", "such", "dir", "map.heimer")
	d.SetModified(true)

	if err := d.Save(); err == nil {
		t.Fatal("Save() succeeded into a missing directory")
	}
	if !d.IsModified() {
		t.Error("modification flag cleared by failed save")
	}
}

func TestReadRejectsDanglingEdge(t *testing.T) {
	in := `{"version":1,"background":{"r":255,"g":255,"b":255},
	        "nodes":[{"id":"` + uuid.New().String() + `","text":"a","x":0,"y":0,"color":{"r":0,"g":0,"b":0}}],
	        "edges":[{"from":"` + uuid.New().String() + `","to":"` + uuid.New().String() + `"}]}`

	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("Read() accepted an edge with undeclared endpoints")
	}
}

func TestReadRejectsNewerVersion(t *testing.T) {
	in := `{"version":99,"background":{"r":0,"g":0,"b":0},"nodes":[],"edges":[]}`
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("Read() accepted a newer format version")
	}
}

func TestReset(t *testing.T) {
	d := New()
	content, _, _ := buildMap(t)
	d.content = content
	d.fileName = "old.heimer"
	d.SetModified(true)

	d.Reset()
	if d.HasFileName() || d.IsModified() || !d.Content().IsEmpty() {
		t.Error("Reset() did not produce a pristine untitled document")
	}
}
