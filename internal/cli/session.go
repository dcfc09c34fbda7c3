package cli

import (
	"context"
	"fmt"

	"github.com/mindloom/mindloom/pkg/app"
	"github.com/mindloom/mindloom/pkg/editor"
	"github.com/mindloom/mindloom/pkg/lifecycle"
	"github.com/mindloom/mindloom/pkg/settings"
	"github.com/mindloom/mindloom/pkg/snapshot"
)

// Menu entries for the edit loop, in display order.
var sessionMenu = []string{
	"Add node",
	"Add child to selection",
	"Edit selection text",
	"Delete selection",
	"Select node",
	"Toggle select node",
	"Move selection",
	"Copy selection text",
	"Undo",
	"Redo",
	"Background color",
	"New",
	"Open",
	"Save",
	"Save as",
	"Export",
	"Close",
	"Exit",
}

// runSession drives one interactive editing session until the window
// closes. Returns whether the user asked to exit the whole application.
func runSession(ctx context.Context, docPath string, prefs settings.Settings, prefsPath string) (bool, error) {
	logger := loggerFromContext(ctx)

	mediator := editor.NewMediator(prefs.UndoLimit)
	if prefs.Autosave.Enabled {
		dir, err := settings.SnapshotDir()
		if err == nil {
			store, serr := snapshot.NewFileStore(dir)
			if serr == nil {
				mediator.SetSnapshotStore(store, prefs.Autosave.TTL)
				defer store.Close()
			} else {
				logger.Warn("autosave disabled", "err", serr)
			}
		}
	}

	presenter := &terminalPresenter{recentPath: prefs.RecentPath}
	a := app.New(mediator, presenter, prefs, prefsPath, logger)

	if docPath != "" {
		a.OpenStartupDocument(docPath)
	}

	for !a.Closed() {
		fmt.Println(titleLine(mediator.FileName(), mediator.IsModified()))
		selected, _ := mediator.SelectedNode()
		fmt.Print(renderOutline(mediator.Content(), selected))
		fmt.Println()

		switch runChoice("Menu", sessionMenu) {
		case 0:
			addNode(mediator)
		case 1:
			addChild(mediator)
		case 2:
			editText(mediator)
		case 3:
			deleteSelection(mediator)
		case 4:
			selectNode(mediator)
		case 5:
			toggleSelectNode(mediator)
		case 6:
			moveSelection(mediator)
		case 7:
			copySelection(mediator)
		case 8:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventUndoRequested})
		case 9:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventRedoRequested})
		case 10:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventBackgroundColorRequested})
		case 11:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventNewRequested})
		case 12:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventOpenRequested})
		case 13:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventSaveRequested})
		case 14:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventSaveAsRequested})
		case 15:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventExportRequested})
		case 16, -1:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventCloseRequested})
		case 17:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventExitRequested})
		}
	}

	return a.Exiting(), nil
}

func addNode(m *editor.Mediator) {
	text, ok := runInput("Node text", "")
	if !ok {
		return
	}
	x, y := nextPosition(m)
	id, err := m.CreateNode(text, x, y)
	if err != nil {
		printError("%v", err)
		return
	}
	_ = m.SelectNode(id)
}

func addChild(m *editor.Mediator) {
	parent, ok := m.SelectedNode()
	if !ok {
		printError("no node selected")
		return
	}
	text, inputOK := runInput("Child text", "")
	if !inputOK {
		return
	}
	id, err := m.CreateChildNode(parent, text)
	if err != nil {
		printError("%v", err)
		return
	}
	_ = m.SelectNode(id)
}

func editText(m *editor.Mediator) {
	id, ok := m.SelectedNode()
	if !ok {
		printError("no node selected")
		return
	}
	node := m.Content().Node(id)
	if node == nil {
		return
	}
	text, inputOK := runInput("Node text", node.Text)
	if !inputOK {
		return
	}
	if err := m.SetNodeText(id, text); err != nil {
		printError("%v", err)
	}
}

func deleteSelection(m *editor.Mediator) {
	id, ok := m.SelectedNode()
	if !ok {
		printError("no node selected")
		return
	}
	if err := m.DeleteNode(id); err != nil {
		printError("%v", err)
	}
}

func selectNode(m *editor.Mediator) {
	nodes := m.Content().Nodes()
	if len(nodes) == 0 {
		printError("the map is empty")
		return
	}

	options := make([]string, len(nodes))
	for i, n := range nodes {
		label := n.Text
		if label == "" {
			label = "(untitled)"
		}
		options[i] = label
	}

	idx := runChoice("Select node", options)
	if idx < 0 {
		return
	}
	if err := m.SelectNode(nodes[idx].ID); err != nil {
		printError("%v", err)
	}
}

func toggleSelectNode(m *editor.Mediator) {
	nodes := m.Content().Nodes()
	if len(nodes) == 0 {
		printError("the map is empty")
		return
	}

	options := make([]string, len(nodes))
	for i, n := range nodes {
		label := n.Text
		if label == "" {
			label = "(untitled)"
		}
		if m.IsSelected(n.ID) {
			label = "* " + label
		}
		options[i] = label
	}

	idx := runChoice("Toggle select node", options)
	if idx < 0 {
		return
	}
	if err := m.ToggleSelect(nodes[idx].ID); err != nil {
		printError("%v", err)
	}
}

func moveSelection(m *editor.Mediator) {
	id, ok := m.SelectedNode()
	if !ok {
		printError("no node selected")
		return
	}
	node := m.Content().Node(id)
	if node == nil {
		return
	}
	pos, inputOK := runInput("Move selection to (x,y)", fmt.Sprintf("%g,%g", node.X, node.Y))
	if !inputOK {
		return
	}
	x, y, err := parsePoint(pos)
	if err != nil {
		printError("%v", err)
		return
	}
	if err := m.MoveSelection(x, y); err != nil {
		printError("%v", err)
	}
}

func copySelection(m *editor.Mediator) {
	if err := m.CopySelectedText(); err != nil {
		printError("copying: %v", err)
		return
	}
	printSuccess("copied to clipboard")
}

// nextPosition places new top-level nodes on a simple diagonal so they
// never stack exactly on top of each other.
func nextPosition(m *editor.Mediator) (float64, float64) {
	n := m.Content().NodeCount()
	return float64(n) * 40, float64(n) * 60
}
