// Package tui is the interactive date field: a single text input with a live
// verdict line underneath.
package tui

import (
	"errors"
	"strings"

	"datepicker/internal/datefield"
	"datepicker/internal/docs"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrCanceled = errors.New("canceled")

const defaultWidth = 48

// FieldModel is the bubbletea model behind `datepicker field`.
type FieldModel struct {
	input     textinput.Model
	validator *datefield.Validator
	result    datefield.Result

	width    int
	showHelp bool

	accepted bool
	canceled bool
}

// NewFieldModel returns a focused field holding initial.
func NewFieldModel(v *datefield.Validator, initial string) FieldModel {
	in := textinput.New()
	in.Placeholder = placeholder(v)
	in.CharLimit = 64
	in.Width = defaultWidth - 4
	in.Prompt = ""
	in.TextStyle = lipgloss.NewStyle().Foreground(colorSurfaceFg)
	in.PlaceholderStyle = styleMuted()
	in.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccent)
	in.SetValue(initial)
	in.CursorEnd()
	in.Focus()

	return FieldModel{
		input:     in,
		validator: v,
		result:    v.Check(initial),
		width:     defaultWidth,
	}
}

func placeholder(v *datefield.Validator) string {
	if f := v.Settings().ADFormat(); f != nil {
		return f.Pattern()
	}
	return ""
}

func (m FieldModel) Init() tea.Cmd { return textinput.Blink }

func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 20)
		m.input.Width = m.width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			// An empty field is an answer too: no date.
			if m.result.Status == datefield.StatusValid || m.result.Status == datefield.StatusEmpty {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "down":
			if m.result.Date == nil {
				return m, nil
			}
			step := 1
			if msg.String() == "down" {
				step = -1
			}
			next := m.result.Date.AddDays(step)
			m.input.SetValue(m.validator.Settings().Format(next))
			m.input.CursorEnd()
			m.result = m.validator.Check(m.input.Value())
			return m, nil
		case "tab":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.result = m.validator.Check(m.input.Value())
	return m, cmd
}

func (m FieldModel) View() string {
	var b strings.Builder
	b.WriteString(renderInputLine(m.width, m.input.View()))
	b.WriteString("\n")
	b.WriteString(verdictLine(m.result))
	b.WriteString("\n")
	if m.showHelp {
		if body, ok := docs.Get("validation"); ok {
			b.WriteString(RenderMarkdown(body, m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString(styleMuted().Render("enter accept · ↑/↓ day · tab help · esc cancel"))
	return b.String()
}

func verdictLine(res datefield.Result) string {
	switch res.Status {
	case datefield.StatusValid:
		return lipgloss.NewStyle().Foreground(colorValid).Render("✓ " + res.Display + " (" + res.Weekday + ")")
	case datefield.StatusVetoed:
		return lipgloss.NewStyle().Foreground(colorVetoed).Render("⊘ " + res.Display + " is not allowed")
	case datefield.StatusInvalid:
		return lipgloss.NewStyle().Foreground(colorInvalid).Render("✗ not a date")
	}
	return styleMuted().Render("no date")
}

// Result returns the last verdict and whether the user accepted it.
func (m FieldModel) Result() (datefield.Result, bool) {
	return m.result, m.accepted
}

// RunField runs the field until the user accepts or cancels. Cancelling
// returns ErrCanceled.
func RunField(v *datefield.Validator, initial string, opts ...tea.ProgramOption) (datefield.Result, error) {
	applyColorProfilePreference()
	mm, err := tea.NewProgram(NewFieldModel(v, initial), opts...).Run()
	if err != nil {
		return datefield.Result{}, err
	}
	out := mm.(FieldModel)
	if out.canceled || !out.accepted {
		return datefield.Result{}, ErrCanceled
	}
	return out.result, nil
}
