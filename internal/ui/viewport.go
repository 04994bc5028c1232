package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navhist/internal/theme"
)

// ReportViewport wraps bubbles/viewport to scroll through the history report.
type ReportViewport struct {
	viewport   viewport.Model
	ready      bool
	contentSet bool
}

// NewReportViewport creates a new viewport (dimensions set on first WindowSizeMsg).
func NewReportViewport() ReportViewport {
	return ReportViewport{}
}

// SetSize updates the viewport dimensions.
func (rv *ReportViewport) SetSize(width, height int) {
	if !rv.ready {
		rv.viewport = viewport.New(width, height)
		rv.viewport.MouseWheelEnabled = true
		rv.viewport.MouseWheelDelta = 3
		rv.ready = true
	} else {
		rv.viewport.Width = width
		rv.viewport.Height = height
	}
}

// SetContent replaces the viewport content and scrolls to the top.
func (rv *ReportViewport) SetContent(content string) {
	if !rv.ready {
		return
	}
	rv.viewport.SetContent(content)
	rv.contentSet = true
	rv.viewport.GotoTop()
}

// Update forwards messages to the viewport.
func (rv *ReportViewport) Update(msg tea.Msg) (*ReportViewport, tea.Cmd) {
	if !rv.ready {
		return rv, nil
	}
	var cmd tea.Cmd
	rv.viewport, cmd = rv.viewport.Update(msg)
	return rv, cmd
}

// View renders the viewport.
func (rv *ReportViewport) View() string {
	if !rv.ready {
		return "\n  Initializing..."
	}
	if !rv.contentSet {
		return lipgloss.NewStyle().Foreground(theme.Current.TextDim).Render("\n  Nothing to display.")
	}
	return rv.viewport.View()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (rv *ReportViewport) ScrollInfo() string {
	if !rv.ready {
		return "TOP"
	}
	pct := rv.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// LineDown scrolls down n lines.
func (rv *ReportViewport) LineDown(n int) {
	if rv.ready {
		rv.viewport.LineDown(n)
	}
}

// LineUp scrolls up n lines.
func (rv *ReportViewport) LineUp(n int) {
	if rv.ready {
		rv.viewport.LineUp(n)
	}
}

// GotoTop scrolls to the top.
func (rv *ReportViewport) GotoTop() {
	if rv.ready {
		rv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (rv *ReportViewport) GotoBottom() {
	if rv.ready {
		rv.viewport.GotoBottom()
	}
}

// Ready reports whether the viewport has been initialized.
func (rv *ReportViewport) Ready() bool {
	return rv.ready
}
