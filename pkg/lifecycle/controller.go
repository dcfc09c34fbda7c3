package lifecycle

import "github.com/mindloom/mindloom/pkg/observability"

// Status is the narrow, read-only view of document state the controller
// consults for its guards. The mediator implements it; the controller
// never reaches deeper into the document or undo history.
type Status interface {
	// IsModified reports whether unsaved modifications exist.
	IsModified() bool

	// HasFileName reports whether the document has a file identity.
	HasFileName() bool
}

// intent remembers why the unsaved-changes dialog was entered, so the
// controller can resume the interrupted operation once the document is
// safe (saved or explicitly discarded).
type intent int

const (
	intentNone intent = iota
	intentNew
	intentOpen
	intentClose
	intentExit
)

// Controller is the document lifecycle state machine. It starts in
// [StateEdit] and mutates its state only inside Handle.
//
// Controller is not safe for concurrent use; drive it through a
// [Dispatcher], which serializes events.
type Controller struct {
	state   State
	status  Status
	pending intent
}

// NewController creates a controller in the Edit state consulting status
// for its modification and file-identity guards.
func NewController(status Status) *Controller {
	return &Controller{state: StateEdit, status: status}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Handle consumes one event and returns the next state together with the
// side effect to execute on entry. Events with no transition in the
// current state leave the state unchanged and request no effect.
func (c *Controller) Handle(ev Event) (State, Effect) {
	next, effect, handled := c.transition(ev)
	if !handled {
		observability.Lifecycle().OnEventIgnored(c.state.String(), ev.Kind.String())
		return c.state, Effect{}
	}
	observability.Lifecycle().OnTransition(c.state.String(), ev.Kind.String(), next.String())
	c.state = next
	return next, effect
}

func (c *Controller) transition(ev Event) (State, Effect, bool) {
	if c.state.Terminal() {
		return c.state, Effect{}, false
	}

	switch c.state {
	case StateEdit:
		return c.fromEdit(ev)

	case StateInitializingNewDocument:
		if ev.Kind == EventNewDocumentInitialized {
			return StateEdit, Effect{Kind: EffectRefreshTitle}, true
		}

	case StateSaving:
		switch ev.Kind {
		case EventMindMapSaved:
			return c.resumePending()
		case EventMindMapSaveFailed:
			c.pending = intentNone
			return StateEdit, Effect{Kind: EffectShowError, Message: ev.Message}, true
		}

	case StateSavingAs:
		switch ev.Kind {
		case EventMindMapSavedAs:
			return c.resumePending()
		case EventMindMapSaveAsFailed:
			c.pending = intentNone
			return StateEdit, Effect{Kind: EffectShowError, Message: ev.Message}, true
		case EventSaveAsDialogCanceled:
			c.pending = intentNone
			return StateEdit, Effect{}, true
		}

	case StateAwaitingOpenChoice:
		switch ev.Kind {
		case EventMindMapOpened:
			return StateEdit, Effect{Kind: EffectRefreshTitle}, true
		case EventMindMapOpenFailed:
			return StateEdit, Effect{Kind: EffectShowError, Message: ev.Message}, true
		case EventOpenDialogCanceled:
			return StateEdit, Effect{}, true
		}

	case StateAwaitingUnsavedChoice:
		switch ev.Kind {
		case EventUnsavedDialogAccepted:
			// Save first; the pending intent survives the save and is
			// resumed once MindMapSaved/SavedAs arrives.
			if c.status.HasFileName() {
				return StateSaving, Effect{Kind: EffectRequestSave}, true
			}
			return StateSavingAs, Effect{Kind: EffectShowSaveAsDialog}, true
		case EventUnsavedDialogDiscarded:
			return c.resumePending()
		case EventUnsavedDialogCanceled:
			c.pending = intentNone
			return StateEdit, Effect{}, true
		}

	case StateAwaitingBackgroundColorChoice:
		switch ev.Kind {
		case EventBackgroundColorChanged:
			return StateEdit, Effect{Kind: EffectApplyBackgroundColor, Color: ev.Color}, true
		case EventColorDialogCanceled:
			return StateEdit, Effect{}, true
		}

	case StateAwaitingExportChoice:
		if ev.Kind == EventExportedToPNG {
			return StateEdit, Effect{}, true
		}
	}

	return c.state, Effect{}, false
}

// fromEdit handles the steady state, where every user intent originates.
func (c *Controller) fromEdit(ev Event) (State, Effect, bool) {
	switch ev.Kind {
	case EventNewRequested:
		return c.guardUnsaved(intentNew)
	case EventOpenRequested:
		return c.guardUnsaved(intentOpen)
	case EventCloseRequested:
		return c.guardUnsaved(intentClose)
	case EventExitRequested:
		return c.guardUnsaved(intentExit)

	case EventSaveRequested:
		// An untitled document cannot be saved in place.
		if c.status.HasFileName() {
			return StateSaving, Effect{Kind: EffectRequestSave}, true
		}
		return StateSavingAs, Effect{Kind: EffectShowSaveAsDialog}, true

	case EventSaveAsRequested:
		return StateSavingAs, Effect{Kind: EffectShowSaveAsDialog}, true

	case EventExportRequested:
		return StateAwaitingExportChoice, Effect{Kind: EffectShowExportDialog}, true

	case EventBackgroundColorRequested:
		return StateAwaitingBackgroundColorChoice, Effect{Kind: EffectShowColorDialog}, true

	case EventUndoRequested:
		return StateEdit, Effect{Kind: EffectUndo}, true

	case EventRedoRequested:
		return StateEdit, Effect{Kind: EffectRedo}, true
	}

	return c.state, Effect{}, false
}

// guardUnsaved routes an operation that would lose unsaved modifications
// through the unsaved-changes dialog, remembering the operation so it can
// resume afterwards. Unmodified documents proceed directly.
func (c *Controller) guardUnsaved(why intent) (State, Effect, bool) {
	if c.status.IsModified() {
		c.pending = why
		return StateAwaitingUnsavedChoice, Effect{Kind: EffectShowUnsavedDialog}, true
	}
	c.pending = why
	return c.resumePending()
}

// resumePending continues the remembered operation after the document
// became safe. With nothing pending (a plain save) it returns to Edit.
func (c *Controller) resumePending() (State, Effect, bool) {
	why := c.pending
	c.pending = intentNone

	switch why {
	case intentNew:
		return StateInitializingNewDocument, Effect{Kind: EffectInitializeNewDocument}, true
	case intentOpen:
		return StateAwaitingOpenChoice, Effect{Kind: EffectShowOpenDialog}, true
	case intentClose:
		return StateClosingWindow, Effect{Kind: EffectCloseWindow}, true
	case intentExit:
		return StateExiting, Effect{Kind: EffectExit}, true
	default:
		return StateEdit, Effect{Kind: EffectRefreshTitle}, true
	}
}
