package lifecycle

import "github.com/mindloom/mindloom/pkg/mindmap"

// EffectKind enumerates the side effects the controller can request on
// state entry. The controller only requests; the application driver
// executes effects against the presenter and mediator and feeds the
// results back as events.
type EffectKind int

const (
	// EffectNone requests nothing.
	EffectNone EffectKind = iota

	// EffectInitializeNewDocument replaces the document with an empty one.
	EffectInitializeNewDocument

	// EffectRequestSave saves the document to its current file.
	EffectRequestSave

	// EffectShowSaveAsDialog asks for a path, then saves there.
	EffectShowSaveAsDialog

	// EffectShowOpenDialog asks for a path, then opens it.
	EffectShowOpenDialog

	// EffectShowUnsavedDialog asks Save / Discard / Cancel.
	EffectShowUnsavedDialog

	// EffectShowColorDialog asks for a background color.
	EffectShowColorDialog

	// EffectShowExportDialog computes the export size and runs the export
	// dialog.
	EffectShowExportDialog

	// EffectApplyBackgroundColor applies the chosen color via the mediator.
	// The color travels in Effect.Color.
	EffectApplyBackgroundColor

	// EffectUndo reverts the newest edit via the mediator.
	EffectUndo

	// EffectRedo re-applies the newest undone edit via the mediator.
	EffectRedo

	// EffectRefreshTitle re-renders the window title and save/undo/redo
	// enablement after the document identity changed.
	EffectRefreshTitle

	// EffectShowError shows Effect.Message in an error dialog.
	EffectShowError

	// EffectCloseWindow persists window geometry and closes the window.
	EffectCloseWindow

	// EffectExit terminates the application.
	EffectExit
)

// Effect is a side-effect request emitted alongside a state transition.
type Effect struct {
	Kind    EffectKind
	Message string
	Color   mindmap.Color
}

// String returns the effect kind name used in logs.
func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "None"
	case EffectInitializeNewDocument:
		return "InitializeNewDocument"
	case EffectRequestSave:
		return "RequestSave"
	case EffectShowSaveAsDialog:
		return "ShowSaveAsDialog"
	case EffectShowOpenDialog:
		return "ShowOpenDialog"
	case EffectShowUnsavedDialog:
		return "ShowUnsavedDialog"
	case EffectShowColorDialog:
		return "ShowColorDialog"
	case EffectShowExportDialog:
		return "ShowExportDialog"
	case EffectApplyBackgroundColor:
		return "ApplyBackgroundColor"
	case EffectUndo:
		return "Undo"
	case EffectRedo:
		return "Redo"
	case EffectRefreshTitle:
		return "RefreshTitle"
	case EffectShowError:
		return "ShowError"
	case EffectCloseWindow:
		return "CloseWindow"
	case EffectExit:
		return "Exit"
	default:
		return "unknown"
	}
}
