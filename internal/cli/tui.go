package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChoiceModel - one-shot selection from a short list
// =============================================================================

// ChoiceModel is the bubbletea model for picking one option from a list.
// Selected stays -1 when the list is dismissed.
type ChoiceModel struct {
	Title    string
	Options  []string
	Cursor   int
	Selected int
}

// NewChoiceModel creates a choice model with nothing selected yet.
func NewChoiceModel(title string, options []string) ChoiceModel {
	return ChoiceModel{Title: title, Options: options, Selected: -1}
}

func (m ChoiceModel) Init() tea.Cmd {
	return nil
}

func (m ChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Options)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ChoiceModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc cancel"))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(opt) + "\n")
	}
	return b.String()
}

// runChoice shows the list and blocks until a selection or dismissal.
// Returns -1 when dismissed.
func runChoice(title string, options []string) int {
	final, err := tea.NewProgram(NewChoiceModel(title, options)).Run()
	if err != nil {
		return -1
	}
	return final.(ChoiceModel).Selected
}

// =============================================================================
// InputModel - one-shot line input
// =============================================================================

// InputModel is the bubbletea model for entering a single line of text.
// Done is false when the input was dismissed.
type InputModel struct {
	Prompt  string
	Initial string
	Value   string
	Done    bool
}

// NewInputModel creates an input model preloaded with initial text.
func NewInputModel(prompt, initial string) InputModel {
	return InputModel{Prompt: prompt, Initial: initial, Value: initial}
}

func (m InputModel) Init() tea.Cmd {
	return nil
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Value = m.Initial
			return m, tea.Quit
		case tea.KeyEnter:
			m.Done = true
			return m, tea.Quit
		case tea.KeyBackspace:
			if len(m.Value) > 0 {
				runes := []rune(m.Value)
				m.Value = string(runes[:len(runes)-1])
			}
		case tea.KeyRunes:
			m.Value += string(key.Runes)
		case tea.KeySpace:
			m.Value += " "
		}
	}
	return m, nil
}

func (m InputModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Prompt))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⏎ confirm  esc cancel"))
	b.WriteString("\n\n")
	b.WriteString("> " + StyleValue.Render(m.Value) + "█\n")
	return b.String()
}

// runInput shows the prompt and blocks until confirmed or dismissed.
func runInput(prompt, initial string) (string, bool) {
	final, err := tea.NewProgram(NewInputModel(prompt, initial)).Run()
	if err != nil {
		return "", false
	}
	m := final.(InputModel)
	return m.Value, m.Done
}

// =============================================================================
// ColorModel - one-shot palette picker
// =============================================================================

// paletteEntry pairs a display name with a color value.
type paletteEntry struct {
	name  string
	color mindmap.Color
}

// palette offered by the background color dialog.
var palette = []paletteEntry{
	{"white", mindmap.Color{R: 255, G: 255, B: 255}},
	{"parchment", mindmap.Color{R: 250, G: 240, B: 215}},
	{"mint", mindmap.Color{R: 215, G: 240, B: 220}},
	{"sky", mindmap.Color{R: 215, G: 230, B: 250}},
	{"slate", mindmap.Color{R: 60, G: 70, B: 85}},
	{"charcoal", mindmap.Color{R: 35, G: 35, B: 40}},
}

// runColorPicker shows the palette and blocks until a choice or
// dismissal. The last entry accepts an arbitrary hex color.
func runColorPicker(current mindmap.Color) (mindmap.Color, bool) {
	options := make([]string, len(palette)+1)
	for i, entry := range palette {
		marker := ""
		if entry.color == current {
			marker = "  (current)"
		}
		options[i] = entry.name + marker
	}
	options[len(palette)] = "custom hex"

	idx := runChoice("Background Color", options)
	switch {
	case idx < 0:
		return mindmap.Color{}, false
	case idx < len(palette):
		return palette[idx].color, true
	}

	hex, ok := runInput("Hex color (rrggbb)", "")
	if !ok {
		return mindmap.Color{}, false
	}
	color, err := parseColor(hex)
	if err != nil {
		printError("%v", err)
		return mindmap.Color{}, false
	}
	return color, true
}
