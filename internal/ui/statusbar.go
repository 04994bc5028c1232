package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/vidyasagar/navhist/internal/theme"
)

// Status bar modes.
const (
	ModeMenu    = "MENU"
	ModeVisit   = "VISIT"
	ModeDisplay = "DISPLAY"
	ModeCommand = "COMMAND"
)

// StatusBar shows the current page and stack depths at the bottom of the screen.
type StatusBar struct {
	mode       string
	url        string
	visited    time.Time
	backLen    int
	forwardLen int
	scrollInfo string
	message    string // temporary status message
	isError    bool
	width      int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: ModeMenu,
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetMode sets the current mode indicator.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetCurrent updates the current page. An empty url clears it.
func (s *StatusBar) SetCurrent(url string, visited time.Time) {
	s.url = url
	s.visited = visited
}

// SetDepths sets the back and forward stack sizes.
func (s *StatusBar) SetDepths(back, forward int) {
	s.backLen = back
	s.forwardLen = forward
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError sets a temporary status message styled as an error.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// Message returns the temporary status message.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Background)

	switch s.mode {
	case ModeMenu:
		modeStyle = modeStyle.Background(t.Primary)
	case ModeVisit:
		modeStyle = modeStyle.Background(t.Success)
	case ModeDisplay:
		modeStyle = modeStyle.Background(t.Secondary)
	case ModeCommand:
		modeStyle = modeStyle.Background(t.Accent)
	default:
		modeStyle = modeStyle.Background(t.Warning)
	}
	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	// Left side: message, or the current page.
	var left string
	switch {
	case s.message != "":
		color := t.Info
		if s.isError {
			color = t.Error
		}
		left = lipgloss.NewStyle().
			Foreground(color).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.message)
	case s.url != "":
		left = lipgloss.NewStyle().
			Foreground(t.Link).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.url)
		if !s.visited.IsZero() {
			left += lipgloss.NewStyle().
				Foreground(t.TextDim).
				Background(t.Surface).
				Render(humanize.Time(s.visited))
		}
	default:
		left = lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Padding(0, 1).
			Render("no current page")
	}

	// Right side: stack depths + scroll position.
	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)
	right := rightStyle.Render(fmt.Sprintf("◀ %d  ▶ %d", s.backLen, s.forwardLen))

	if s.mode == ModeDisplay && s.scrollInfo != "" {
		right += lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.scrollInfo)
	}

	spacerWidth := s.width - lipgloss.Width(mode) - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
