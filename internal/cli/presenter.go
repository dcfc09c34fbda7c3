package cli

import (
	"fmt"

	"github.com/mindloom/mindloom/pkg/app"
	"github.com/mindloom/mindloom/pkg/export"
	"github.com/mindloom/mindloom/pkg/mindmap"
)

// terminalPresenter implements app.Presenter with one-shot bubbletea
// dialogs. Every method blocks until the user decides.
type terminalPresenter struct {
	recentPath string
}

var _ app.Presenter = (*terminalPresenter)(nil)

func (p *terminalPresenter) AskOpenPath() (string, bool) {
	return runInput("Open mind map", p.recentPath)
}

func (p *terminalPresenter) AskSavePath() (string, bool) {
	return runInput("Save mind map as", "")
}

func (p *terminalPresenter) AskUnsavedChoice() app.UnsavedChoice {
	switch runChoice("Unsaved changes", []string{"Save", "Discard", "Cancel"}) {
	case 0:
		return app.UnsavedSave
	case 1:
		return app.UnsavedDiscard
	default:
		return app.UnsavedCancel
	}
}

func (p *terminalPresenter) AskColor(current mindmap.Color) (mindmap.Color, bool) {
	return runColorPicker(current)
}

func (p *terminalPresenter) AskExport(natural export.Size) (app.ExportRequest, bool) {
	format := runChoice("Export format", []string{"PNG image", "SVG vector"})
	if format < 0 {
		return app.ExportRequest{}, false
	}

	req := app.ExportRequest{Format: app.ExportPNG}
	if format == 1 {
		req.Format = app.ExportSVG
	}

	path, ok := runInput("Export to", "")
	if !ok || path == "" {
		return app.ExportRequest{}, false
	}
	req.Path = path

	if req.Format == app.ExportPNG {
		preset := fmt.Sprintf("%dx%d", natural.Width, natural.Height)
		size, ok := runInput("Image size", preset)
		if !ok {
			return app.ExportRequest{}, false
		}
		w, h, err := parseSize(size)
		if err != nil {
			printError("%v", err)
			return app.ExportRequest{}, false
		}
		req.Width, req.Height = w, h

		switch runChoice("Background", []string{"Fill with map color", "Transparent"}) {
		case 1:
			req.Transparent = true
		case -1:
			return app.ExportRequest{}, false
		}
	}
	return req, true
}

func (p *terminalPresenter) ShowError(message string) {
	printError("%s", message)
}

func (p *terminalPresenter) RefreshTitle(fileName string, modified bool) {
	fmt.Println(titleLine(fileName, modified))
}

func (p *terminalPresenter) CloseWindow() {
	printInfo("closed")
}
