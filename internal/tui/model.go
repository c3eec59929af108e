package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/padiccalc/internal/padic"
	"github.com/agbru/padiccalc/internal/ui"
)

// keyMap defines the explorer key bindings.
type keyMap struct {
	Quit  key.Binding
	Eval  key.Binding
	Clear key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Eval: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear history"),
	),
}

// entry is one evaluated line with its rendered outcome.
type entry struct {
	input  string
	output string
	err    error
}

// Model is the bubbletea model of the explorer.
type Model struct {
	pctx    *padic.Ctx
	prec    int
	input   textinput.Model
	history []entry

	styleAccent lipgloss.Style
	styleErr    lipgloss.Style
	styleDim    lipgloss.Style
}

// NewModel creates the explorer model over the given kernel context.
func NewModel(pctx *padic.Ctx, prec int) Model {
	in := textinput.New()
	in.Placeholder = "exp 49"
	in.Prompt = "> "
	in.Focus()

	theme := ui.DarkTUITheme
	return Model{
		pctx:        pctx,
		prec:        prec,
		input:       in,
		styleAccent: lipgloss.NewStyle().Foreground(theme.Accent),
		styleErr:    lipgloss.NewStyle().Foreground(theme.Error),
		styleDim:    lipgloss.NewStyle().Foreground(theme.Dim),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Clear):
			m.history = nil
			return m, nil
		case key.Matches(msg, keys.Eval):
			line := m.input.Value()
			if line == "" {
				return m, nil
			}
			out, err := evaluate(line, m.pctx, m.prec)
			m.history = append(m.history, entry{input: line, output: out, err: err})
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.styleAccent.Render(
		fmt.Sprintf("padiccalc explorer — Q_%s at precision %d", m.pctx.Prime().String(), m.prec))
	help := m.styleDim.Render("operations: add sub mul div neg inv sqrt exp log teich · ctrl+l clear · ctrl+c quit")

	body := ""
	for _, e := range m.history {
		body += "> " + e.input + "\n"
		if e.err != nil {
			body += m.styleErr.Render(e.err.Error()) + "\n"
		} else {
			body += e.output + "\n"
		}
	}

	return header + "\n" + help + "\n\n" + body + m.input.View() + "\n"
}

// Run starts the explorer and blocks until the user quits.
func Run(ctx context.Context, pctx *padic.Ctx, prec int) error {
	p := tea.NewProgram(NewModel(pctx, prec), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
