package app

import (
	"github.com/mindloom/mindloom/pkg/export"
	"github.com/mindloom/mindloom/pkg/mindmap"
)

// UnsavedChoice is the outcome of the unsaved-changes dialog.
type UnsavedChoice int

const (
	// UnsavedSave saves before continuing with the interrupted action.
	UnsavedSave UnsavedChoice = iota
	// UnsavedDiscard continues without saving.
	UnsavedDiscard
	// UnsavedCancel aborts the interrupted action.
	UnsavedCancel
)

// ExportFormat selects the export output format.
type ExportFormat string

const (
	ExportPNG ExportFormat = "png"
	ExportSVG ExportFormat = "svg"
)

// ExportRequest is a completed export dialog.
type ExportRequest struct {
	Path   string
	Format ExportFormat

	// Width and Height apply to PNG only; zero means the natural size.
	Width  int
	Height int

	// Transparent skips the background fill (PNG only).
	Transparent bool
}

// Presenter is the blocking dialog surface the driver talks to.
// Every Ask method blocks until the user decides; the boolean result is
// false when the dialog was dismissed without a choice.
type Presenter interface {
	// AskOpenPath prompts for a file to open.
	AskOpenPath() (string, bool)

	// AskSavePath prompts for a file to save into.
	AskSavePath() (string, bool)

	// AskUnsavedChoice shows the save/discard/cancel dialog.
	AskUnsavedChoice() UnsavedChoice

	// AskColor prompts for a background color starting from current.
	AskColor(current mindmap.Color) (mindmap.Color, bool)

	// AskExport shows the export dialog preset to the natural size.
	AskExport(natural export.Size) (ExportRequest, bool)

	// ShowError displays a failure message.
	ShowError(message string)

	// RefreshTitle updates the window title line.
	RefreshTitle(fileName string, modified bool)

	// CloseWindow tears the window down.
	CloseWindow()
}
