// Package prompt provides the interactive candidate picker used when
// project or task resolution is ambiguous.
package prompt

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/bonk/internal/domain"
	"golang.org/x/term"
)

// Ensure Picker implements domain.Disambiguator.
var _ domain.Disambiguator = (*Picker)(nil)

// Picker is the interactive Disambiguator. It renders a small selection list
// on the terminal; without a terminal it refuses rather than hanging.
type Picker struct{}

// NewPicker creates a new Picker.
func NewPicker() *Picker {
	return &Picker{}
}

// Choose prompts the user to pick one candidate and returns its index.
func (p *Picker) Choose(label string, candidates []string) (int, error) {
	if len(candidates) == 0 {
		return 0, domain.ErrPromptAborted
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, domain.ErrNotInteractive
	}

	m := newModel(label, candidates)
	// The prompt renders on stderr so it never pollutes piped stdout.
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return 0, fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(model)
	if !ok || result.aborted || result.chosen < 0 {
		return 0, domain.ErrPromptAborted
	}
	return result.chosen, nil
}

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model is the bubbletea model for the picker.
type model struct {
	label      string
	candidates []string
	cursor     int
	chosen     int // -1 until a selection is made
	aborted    bool
}

func newModel(label string, candidates []string) model {
	return model{label: label, candidates: candidates, chosen: -1}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.chosen >= 0 || m.aborted {
		return ""
	}
	view := labelStyle.Render(m.label) + "\n"
	for i, c := range m.candidates {
		if i == m.cursor {
			view += cursorStyle.Render("> ") + selectedStyle.Render(c) + "\n"
		} else {
			view += "  " + c + "\n"
		}
	}
	view += helpStyle.Render("enter: select • q: abort") + "\n"
	return view
}
