package cli

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// renderOutline renders the mind map as an indented outline, one
// component at a time. selected highlights the current selection;
// uuid.Nil means no selection.
func renderOutline(m *mindmap.MindMap, selected uuid.UUID) string {
	if m.IsEmpty() {
		return StyleDim.Render("(empty map)") + "\n"
	}

	var b strings.Builder
	visited := make(map[uuid.UUID]bool, m.NodeCount())

	for _, n := range m.Nodes() {
		if visited[n.ID] {
			continue
		}
		renderSubtree(&b, m, n.ID, uuid.Nil, selected, 0, visited)
	}
	return b.String()
}

// renderSubtree walks one component depth-first. Cycles are cut by the
// visited set, so shared nodes appear once under their first parent.
func renderSubtree(b *strings.Builder, m *mindmap.MindMap, id, parent, selected uuid.UUID, depth int, visited map[uuid.UUID]bool) {
	visited[id] = true
	node := m.Node(id)
	if node == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	branch := ""
	if depth > 0 {
		branch = styleBranch.Render("└ ")
	}

	label := node.Text
	if label == "" {
		label = "(untitled)"
	}
	style := styleNode
	if id == selected {
		style = styleSelected
		label = "▸ " + label
	}
	b.WriteString(indent + branch + style.Render(label) + "\n")

	for _, next := range m.Neighbors(id) {
		if next == parent || visited[next] {
			continue
		}
		renderSubtree(b, m, next, id, selected, depth+1, visited)
	}
}

// titleLine formats the window title: file name plus a modified marker.
func titleLine(fileName string, modified bool) string {
	name := fileName
	if name == "" {
		name = "untitled"
	}
	line := StyleTitle.Render("mindloom") + " " + StyleValue.Render(name)
	if modified {
		line += " " + styleModified.Render("●")
	}
	return line
}
