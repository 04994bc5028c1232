package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navhist/internal/theme"
)

// MenuItem is a numbered menu choice.
type MenuItem struct {
	Choice int
	Label  string
}

// MenuPanel displays the numbered main menu with a movable cursor.
type MenuPanel struct {
	items  []MenuItem
	cursor int
	width  int
}

// NewMenuPanel creates a menu with the given items.
func NewMenuPanel(items []MenuItem) MenuPanel {
	return MenuPanel{items: items}
}

// SetWidth updates the panel width.
func (mp *MenuPanel) SetWidth(w int) {
	mp.width = w
}

// CursorUp moves the cursor up one item.
func (mp *MenuPanel) CursorUp() {
	if mp.cursor > 0 {
		mp.cursor--
	}
}

// CursorDown moves the cursor down one item.
func (mp *MenuPanel) CursorDown() {
	if mp.cursor < len(mp.items)-1 {
		mp.cursor++
	}
}

// Selected returns the choice under the cursor, or 0 for an empty menu.
func (mp *MenuPanel) Selected() int {
	if mp.cursor < 0 || mp.cursor >= len(mp.items) {
		return 0
	}
	return mp.items[mp.cursor].Choice
}

// Has reports whether choice is on the menu.
func (mp *MenuPanel) Has(choice int) bool {
	for _, it := range mp.items {
		if it.Choice == choice {
			return true
		}
	}
	return false
}

// View renders the menu.
func (mp *MenuPanel) View() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selected).
		Bold(true).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("--- Browser Menu ---"))
	sb.WriteString("\n")

	for i, it := range mp.items {
		line := fmt.Sprintf("%d. %s", it.Choice, it.Label)
		if i == mp.cursor {
			sb.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("1-5:choose  j/k:move  Enter:select  H/L:back/forward"))

	return lipgloss.NewStyle().Width(mp.width).Render(sb.String())
}
