package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navhist/internal/theme"
)

// EmptyURLMessage is shown when the visit prompt is submitted blank.
const EmptyURLMessage = "URL cannot be empty."

const visitLabel = "Enter the URL of the site:"

// VisitPrompt asks for the URL to visit, offering recently seen URLs as
// tab completions. Validation errors are shown under the input.
type VisitPrompt struct {
	input textinput.Model
	open  bool
	err   string
	width int
}

func NewVisitPrompt() VisitPrompt {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "example.com"
	ti.CharLimit = 2048
	ti.ShowSuggestions = true
	return VisitPrompt{input: ti}
}

func (p *VisitPrompt) SetWidth(w int) {
	p.width = w
	p.input.Width = max(w-8, 10)
}

// Open clears any previous input and error, loads suggestions (most
// relevant first) and focuses the input.
func (p *VisitPrompt) Open(suggestions []string) tea.Cmd {
	p.open = true
	p.err = ""
	p.input.Reset()
	p.input.SetSuggestions(suggestions)
	return p.input.Focus()
}

func (p *VisitPrompt) Close() {
	p.open = false
	p.err = ""
	p.input.Blur()
}

func (p *VisitPrompt) IsOpen() bool {
	return p.open
}

// Err returns the validation error from the last Submit, if any.
func (p *VisitPrompt) Err() string {
	return p.err
}

// Submit returns the trimmed URL. A blank entry keeps the prompt open,
// records EmptyURLMessage and returns false.
func (p *VisitPrompt) Submit() (string, bool) {
	url := strings.TrimSpace(p.input.Value())
	if url == "" {
		p.err = EmptyURLMessage
		p.input.Reset()
		return "", false
	}
	p.Close()
	return url, true
}

func (p *VisitPrompt) Update(msg tea.Msg) tea.Cmd {
	if !p.open {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		p.err = ""
	}
	return cmd
}

func (p *VisitPrompt) View() string {
	t := theme.Current

	lines := []string{
		lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(visitLabel),
		p.input.View(),
	}
	if p.err != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Error).Render(p.err))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).
			Render("tab: complete  enter: visit  esc: cancel"))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(max(p.width-2, 10)).
		Render(strings.Join(lines, "\n"))
}
