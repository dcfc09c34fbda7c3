package export

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// ToDOT converts a mind map to Graphviz DOT format.
// Edges are undirected, matching the model.
func ToDOT(m *mindmap.MindMap) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", hexColor(m.Background()))
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"monospace\", margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range m.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, pos=\"%.0f,%.0f\"];\n",
			n.ID.String(), n.Text, hexColor(n.Color), n.X, -n.Y)
	}

	buf.WriteString("\n")
	for _, e := range m.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From.String(), e.To.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a mind map to SVG bytes using Graphviz.
func RenderSVG(m *mindmap.MindMap) ([]byte, error) {
	if m.IsEmpty() {
		return nil, ErrEmptyMap
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(m)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDOT saves a mind map's DOT source to path.
func WriteDOT(path string, m *mindmap.MindMap) error {
	if m.IsEmpty() {
		return ErrEmptyMap
	}
	return os.WriteFile(path, []byte(ToDOT(m)), 0644)
}

// WriteSVG renders a mind map and saves it to path.
func WriteSVG(path string, m *mindmap.MindMap) error {
	svg, err := RenderSVG(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, svg, 0644)
}

func hexColor(c mindmap.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
