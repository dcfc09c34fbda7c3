// Package app wires the lifecycle dispatcher, the editor mediator, and
// the presentation layer into a running application.
//
// The driver owns the effect loop: every effect the state machine emits
// is executed synchronously here, and whatever the outside world answers
// (a chosen path, a dialog dismissal, an I/O failure) flows back into
// the machine as an event. No call in this package throws a failure past
// the loop; the machine hears about everything as events.
package app

import (
	"github.com/charmbracelet/log"

	"github.com/mindloom/mindloom/pkg/editor"
	"github.com/mindloom/mindloom/pkg/errors"
	"github.com/mindloom/mindloom/pkg/export"
	"github.com/mindloom/mindloom/pkg/lifecycle"
	"github.com/mindloom/mindloom/pkg/settings"
)

// App drives one editing session.
type App struct {
	dispatcher *lifecycle.Dispatcher
	mediator   *editor.Mediator
	presenter  Presenter
	logger     *log.Logger

	prefs     settings.Settings
	prefsPath string

	closed  bool
	exiting bool
}

// New wires an application around the given mediator and presenter.
// prefsPath may be empty, in which case nothing is persisted on close.
func New(mediator *editor.Mediator, presenter Presenter, prefs settings.Settings, prefsPath string, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		dispatcher: lifecycle.NewDispatcher(lifecycle.NewController(mediator)),
		mediator:   mediator,
		presenter:  presenter,
		logger:     logger,
		prefs:      prefs,
		prefsPath:  prefsPath,
	}
	a.dispatcher.Subscribe(a.applyEffect)
	return a
}

// Mediator exposes the session's editor facade.
func (a *App) Mediator() *editor.Mediator { return a.mediator }

// State returns the current lifecycle state.
func (a *App) State() lifecycle.State { return a.dispatcher.State() }

// Closed reports whether the window has been closed.
func (a *App) Closed() bool { return a.closed }

// Exiting reports whether the whole application is shutting down.
func (a *App) Exiting() bool { return a.exiting }

// Raise feeds an event into the lifecycle machine. Every user action
// enters through here.
func (a *App) Raise(ev lifecycle.Event) {
	a.dispatcher.Raise(ev)
}

// OpenStartupDocument loads the document given on the command line.
// A failure is shown and the session continues with an empty document.
func (a *App) OpenStartupDocument(path string) {
	if err := a.mediator.OpenDocument(path); err != nil {
		a.logger.Error("startup document", "path", path, "err", err)
		a.presenter.ShowError(errors.UserMessage(err))
		return
	}
	a.presenter.RefreshTitle(a.mediator.FileName(), a.mediator.IsModified())
}

// applyEffect executes one effect and raises whatever events follow
// from it. Runs inside the dispatcher's drain loop, so raised events
// queue behind the one being handled.
func (a *App) applyEffect(state lifecycle.State, effect lifecycle.Effect) {
	switch effect.Kind {
	case lifecycle.EffectNone:

	case lifecycle.EffectInitializeNewDocument:
		a.mediator.InitializeNew()
		a.Raise(lifecycle.Event{Kind: lifecycle.EventNewDocumentInitialized})

	case lifecycle.EffectRequestSave:
		if err := a.mediator.SaveDocument(); err != nil {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapSaveFailed, Message: errors.UserMessage(err)})
		} else {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapSaved})
		}

	case lifecycle.EffectShowSaveAsDialog:
		path, ok := a.presenter.AskSavePath()
		if !ok {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventSaveAsDialogCanceled})
			return
		}
		if err := a.mediator.SaveDocumentAs(path); err != nil {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapSaveAsFailed, Message: errors.UserMessage(err)})
		} else {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapSavedAs, Path: a.mediator.FileName()})
		}

	case lifecycle.EffectShowOpenDialog:
		path, ok := a.presenter.AskOpenPath()
		if !ok {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventOpenDialogCanceled})
			return
		}
		if err := a.mediator.OpenDocument(path); err != nil {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapOpenFailed, Message: errors.UserMessage(err)})
		} else {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventMindMapOpened, Path: path})
		}

	case lifecycle.EffectShowUnsavedDialog:
		switch a.presenter.AskUnsavedChoice() {
		case UnsavedSave:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventUnsavedDialogAccepted})
		case UnsavedDiscard:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventUnsavedDialogDiscarded})
		default:
			a.Raise(lifecycle.Event{Kind: lifecycle.EventUnsavedDialogCanceled})
		}

	case lifecycle.EffectShowColorDialog:
		color, ok := a.presenter.AskColor(a.mediator.Content().Background())
		if !ok {
			a.Raise(lifecycle.Event{Kind: lifecycle.EventColorDialogCanceled})
			return
		}
		a.Raise(lifecycle.Event{Kind: lifecycle.EventBackgroundColorChanged, Color: color})

	case lifecycle.EffectShowExportDialog:
		a.runExportDialog()
		// Dismissal still completes the export round trip.
		a.Raise(lifecycle.Event{Kind: lifecycle.EventExportedToPNG})

	case lifecycle.EffectApplyBackgroundColor:
		a.mediator.SetBackgroundColor(effect.Color)

	case lifecycle.EffectUndo:
		a.mediator.Undo()

	case lifecycle.EffectRedo:
		a.mediator.Redo()

	case lifecycle.EffectRefreshTitle:
		a.presenter.RefreshTitle(a.mediator.FileName(), a.mediator.IsModified())

	case lifecycle.EffectShowError:
		a.presenter.ShowError(effect.Message)

	case lifecycle.EffectCloseWindow:
		a.closed = true
		a.persistPrefs()
		a.presenter.CloseWindow()

	case lifecycle.EffectExit:
		a.closed = true
		a.exiting = true
		a.persistPrefs()
		a.presenter.CloseWindow()
	}
}

func (a *App) runExportDialog() {
	natural, err := a.mediator.ExportSize()
	if err != nil {
		a.presenter.ShowError(errors.UserMessage(err))
		return
	}

	req, ok := a.presenter.AskExport(natural)
	if !ok {
		return
	}

	switch req.Format {
	case ExportSVG:
		err = a.mediator.ExportSVG(req.Path)
	default:
		err = a.mediator.ExportPNG(req.Path, export.Options{
			Width:       req.Width,
			Height:      req.Height,
			Transparent: req.Transparent,
		})
	}
	if err != nil {
		a.logger.Error("export", "path", req.Path, "format", req.Format, "err", err)
		a.presenter.ShowError(errors.UserMessage(err))
	}
}

// persistPrefs remembers the session's last file and saves the settings.
func (a *App) persistPrefs() {
	if a.prefsPath == "" {
		return
	}
	if a.mediator.HasFileName() {
		a.prefs.RecentPath = a.mediator.FileName()
	}
	if err := settings.Save(a.prefsPath, a.prefs); err != nil {
		a.logger.Warn("persisting settings", "path", a.prefsPath, "err", err)
	}
}
