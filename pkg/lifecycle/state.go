// Package lifecycle implements the document lifecycle state machine.
//
// The controller consumes discrete action events (user intents and
// reported results of external operations), holds the single current
// lifecycle state, and decides the next state plus a side-effect request
// for the presentation layer to execute. The transition table inside
// [Controller.Handle] is the sole source of truth for event routing; in
// particular, I/O failures reach the controller as events rather than as
// errors, so failure handling lives in the same table as everything else.
//
// Events that have no transition in the current state are ignored and
// reported through the observability hooks. GUI event races (duplicate
// clicks, stale shortcuts) make such events routine, not exceptional.
package lifecycle

// State is the document-level mode the application is in. Exactly one
// state is current at any time and only the controller mutates it.
type State int

const (
	// StateEdit is the steady state: the user is editing the document.
	StateEdit State = iota

	// StateInitializingNewDocument replaces the document with an empty one.
	StateInitializingNewDocument

	// StateSaving writes the document to its current file.
	StateSaving

	// StateSavingAs asks for a path and writes the document there.
	StateSavingAs

	// StateAwaitingOpenChoice waits for the open-file dialog.
	StateAwaitingOpenChoice

	// StateAwaitingUnsavedChoice waits for the save/discard/cancel dialog
	// shown when an operation would lose unsaved modifications.
	StateAwaitingUnsavedChoice

	// StateAwaitingBackgroundColorChoice waits for the color picker.
	StateAwaitingBackgroundColorChoice

	// StateAwaitingExportChoice waits for the export dialog.
	StateAwaitingExportChoice

	// StateClosingWindow persists window geometry and closes the window.
	StateClosingWindow

	// StateExiting terminates the application.
	StateExiting
)

// stateCount is the number of defined states; used by tests to enumerate.
const stateCount = int(StateExiting) + 1

// String returns the state name used in logs and hooks.
func (s State) String() string {
	switch s {
	case StateEdit:
		return "Edit"
	case StateInitializingNewDocument:
		return "InitializingNewDocument"
	case StateSaving:
		return "Saving"
	case StateSavingAs:
		return "SavingAs"
	case StateAwaitingOpenChoice:
		return "AwaitingOpenChoice"
	case StateAwaitingUnsavedChoice:
		return "AwaitingUnsavedChoice"
	case StateAwaitingBackgroundColorChoice:
		return "AwaitingBackgroundColorChoice"
	case StateAwaitingExportChoice:
		return "AwaitingExportChoice"
	case StateClosingWindow:
		return "ClosingWindow"
	case StateExiting:
		return "Exiting"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the session. No event causes a
// transition out of a terminal state.
func (s State) Terminal() bool {
	return s == StateClosingWindow || s == StateExiting
}
