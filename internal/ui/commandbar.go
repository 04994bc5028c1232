package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navhist/internal/theme"
)

// Command is a parsed ":" command line.
type Command struct {
	Name string
	Args []string
}

// Arg returns the arguments joined by a single space.
func (c Command) Arg() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits a command line into its name and arguments.
// It returns false for a blank line.
func ParseCommand(line string) (Command, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, false
	}
	return Command{Name: parts[0], Args: parts[1:]}, true
}

// CommandBar handles ":" commands with a recallable history.
type CommandBar struct {
	input      textinput.Model
	active     bool
	width      int
	history    []string
	historyPos int
}

// NewCommandBar creates a new command bar.
func NewCommandBar() CommandBar {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ":"
	ti.Placeholder = "load <file> | save | theme <name> | clear | quit"

	return CommandBar{
		input:      ti,
		historyPos: -1,
	}
}

// SetWidth sets the command bar width.
func (c *CommandBar) SetWidth(w int) {
	c.width = w
	c.input.Width = w - 4
}

// Open activates the command bar.
func (c *CommandBar) Open() tea.Cmd {
	c.active = true
	c.input.Reset()
	c.historyPos = -1
	return c.input.Focus()
}

// Close deactivates the command bar.
func (c *CommandBar) Close() {
	c.active = false
	c.input.Blur()
	c.input.Reset()
}

// IsActive reports whether the command bar is open.
func (c *CommandBar) IsActive() bool {
	return c.active
}

// SetValue sets the text input value.
func (c *CommandBar) SetValue(val string) {
	c.input.SetValue(val)
	c.input.SetCursor(len(val))
}

// Submit closes the bar and returns the entered line, recording it in history.
func (c *CommandBar) Submit() string {
	val := strings.TrimSpace(c.input.Value())
	if val != "" {
		c.history = append(c.history, val)
	}
	c.Close()
	return val
}

// Update processes messages for the command bar.
func (c *CommandBar) Update(msg tea.Msg) (*CommandBar, tea.Cmd) {
	if !c.active {
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			c.Close()
			return c, nil
		case tea.KeyEnter:
			// Handled by the parent.
			return c, nil
		case tea.KeyUp:
			if len(c.history) > 0 {
				if c.historyPos < len(c.history)-1 {
					c.historyPos++
				}
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			}
			return c, nil
		case tea.KeyDown:
			if c.historyPos > 0 {
				c.historyPos--
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			} else if c.historyPos == 0 {
				c.historyPos = -1
				c.input.Reset()
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the command bar.
func (c *CommandBar) View() string {
	if !c.active {
		return ""
	}

	t := theme.Current

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Width(c.width)

	return barStyle.Render(c.input.View())
}
