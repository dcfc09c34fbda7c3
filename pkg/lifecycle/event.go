package lifecycle

import "github.com/mindloom/mindloom/pkg/mindmap"

// EventKind enumerates every action event the controller understands.
// Requested events express user intent; the past-tense events report the
// outcome of an external operation back into the transition table.
type EventKind int

const (
	EventNewRequested EventKind = iota
	EventOpenRequested
	EventSaveRequested
	EventSaveAsRequested
	EventExportRequested
	EventBackgroundColorRequested
	EventUndoRequested
	EventRedoRequested
	EventCloseRequested
	EventExitRequested

	EventNewDocumentInitialized
	EventMindMapOpened
	EventMindMapOpenFailed
	EventMindMapSaved
	EventMindMapSaveFailed
	EventMindMapSavedAs
	EventMindMapSaveAsFailed
	EventExportedToPNG
	EventBackgroundColorChanged

	EventOpenDialogCanceled
	EventSaveAsDialogCanceled
	EventColorDialogCanceled
	EventUnsavedDialogAccepted
	EventUnsavedDialogDiscarded
	EventUnsavedDialogCanceled
)

// eventKindCount is the number of defined event kinds; used by tests.
const eventKindCount = int(EventUnsavedDialogCanceled) + 1

// Event is one tagged occurrence consumed by the controller. Payload
// fields carry external results: Path for opened/saved files, Color for
// the background color choice, Message for failure details shown to the
// user.
type Event struct {
	Kind    EventKind
	Path    string
	Color   mindmap.Color
	Message string
}

// String returns the event kind name used in logs and hooks.
func (k EventKind) String() string {
	switch k {
	case EventNewRequested:
		return "NewRequested"
	case EventOpenRequested:
		return "OpenRequested"
	case EventSaveRequested:
		return "SaveRequested"
	case EventSaveAsRequested:
		return "SaveAsRequested"
	case EventExportRequested:
		return "ExportRequested"
	case EventBackgroundColorRequested:
		return "BackgroundColorRequested"
	case EventUndoRequested:
		return "UndoRequested"
	case EventRedoRequested:
		return "RedoRequested"
	case EventCloseRequested:
		return "CloseRequested"
	case EventExitRequested:
		return "ExitRequested"
	case EventNewDocumentInitialized:
		return "NewDocumentInitialized"
	case EventMindMapOpened:
		return "MindMapOpened"
	case EventMindMapOpenFailed:
		return "MindMapOpenFailed"
	case EventMindMapSaved:
		return "MindMapSaved"
	case EventMindMapSaveFailed:
		return "MindMapSaveFailed"
	case EventMindMapSavedAs:
		return "MindMapSavedAs"
	case EventMindMapSaveAsFailed:
		return "MindMapSaveAsFailed"
	case EventExportedToPNG:
		return "ExportedToPNG"
	case EventBackgroundColorChanged:
		return "BackgroundColorChanged"
	case EventOpenDialogCanceled:
		return "OpenDialogCanceled"
	case EventSaveAsDialogCanceled:
		return "SaveAsDialogCanceled"
	case EventColorDialogCanceled:
		return "ColorDialogCanceled"
	case EventUnsavedDialogAccepted:
		return "UnsavedDialogAccepted"
	case EventUnsavedDialogDiscarded:
		return "UnsavedDialogDiscarded"
	case EventUnsavedDialogCanceled:
		return "UnsavedDialogCanceled"
	default:
		return "unknown"
	}
}
