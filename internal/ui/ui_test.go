package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/navhist/internal/browser"
	"github.com/vidyasagar/navhist/internal/theme"
)

func testNavigator(t *testing.T) *browser.Navigator {
	t.Helper()
	n := browser.NewNavigator(browser.WithLocation(time.UTC))
	require.NoError(t, n.Visit("a.com", 0))
	require.NoError(t, n.Visit("b.com", 60))
	require.NoError(t, n.Visit("c.com", 120))
	_, ok := n.Back(1)
	require.True(t, ok)
	return n
}

func testSnapshot(t *testing.T) browser.Snapshot {
	t.Helper()
	return testNavigator(t).Snapshot()
}

func TestReportMarkdown(t *testing.T) {
	t.Run("sections_in_order", func(t *testing.T) {
		md := ReportMarkdown(testSnapshot(t), time.UTC)

		back := strings.Index(md, "## Back Stack")
		fwd := strings.Index(md, "## Forward Stack")
		cur := strings.Index(md, "## Current Website")
		require.True(t, back >= 0 && back < fwd && fwd < cur, md)

		require.Contains(t, md, "1. `a.com` · visited Thu Jan 1 00:00:00 1970")
		require.Contains(t, md, "1. `c.com` · visited Thu Jan 1 00:02:00 1970")
		require.Contains(t, md, "**b.com**")
	})

	t.Run("empty_state", func(t *testing.T) {
		md := ReportMarkdown(browser.Snapshot{}, time.UTC)
		require.Equal(t, 2, strings.Count(md, "_Empty_"))
		require.Contains(t, md, "_No current page._")
	})

	t.Run("url_with_backticks", func(t *testing.T) {
		snap := browser.Snapshot{
			Back: []browser.NavigationEntry{browser.NewNavigationEntry("a.com/x``y", 0)},
		}
		md := ReportMarkdown(snap, time.UTC)
		require.Contains(t, md, "1. ```a.com/x``y``` · visited")
	})

	t.Run("renders_with_glamour", func(t *testing.T) {
		out := RenderReport(testNavigator(t), 60)
		require.Contains(t, out, "a.com")
	})

	t.Run("falls_back_to_display_text", func(t *testing.T) {
		prev := theme.Current
		t.Cleanup(func() { theme.Current = prev })
		theme.Current.GlamourStyle = "no-such-style"

		out := RenderReport(testNavigator(t), 60)
		require.Contains(t, out, "** Back Stack **")
		require.Contains(t, out, "1. URL:a.com Visited On: Thu Jan 1 00:00:00 1970")
		require.Contains(t, out, "Current Website:")
	})
}

func TestCodeSpan(t *testing.T) {
	require.Equal(t, "`a.com`", codeSpan("a.com"))
	require.Equal(t, "``a`b``", codeSpan("a`b"))
	require.Equal(t, "`` `a.com ``", codeSpan("`a.com"))
}

func TestMenuPanel(t *testing.T) {
	mp := NewMenuPanel([]MenuItem{{1, "One"}, {2, "Two"}, {3, "Three"}})
	require.Equal(t, 1, mp.Selected())

	mp.CursorUp()
	require.Equal(t, 1, mp.Selected(), "cursor stays at the top")

	mp.CursorDown()
	mp.CursorDown()
	mp.CursorDown()
	require.Equal(t, 3, mp.Selected(), "cursor stays at the bottom")

	require.True(t, mp.Has(2))
	require.False(t, mp.Has(4))

	view := mp.View()
	require.Contains(t, view, "--- Browser Menu ---")
	require.Contains(t, view, "3. Three")

	empty := NewMenuPanel(nil)
	require.Equal(t, 0, empty.Selected())
}

func TestParseCommand(t *testing.T) {
	c, ok := ParseCommand("  load  /tmp/my file.txt ")
	require.True(t, ok)
	require.Equal(t, "load", c.Name)
	require.Equal(t, "/tmp/my file.txt", c.Arg())

	_, ok = ParseCommand("   ")
	require.False(t, ok)
}

func TestCommandBarHistory(t *testing.T) {
	cb := NewCommandBar()
	cb.Open()
	cb.SetValue("save")
	require.Equal(t, "save", cb.Submit())
	require.False(t, cb.IsActive())

	cb.Open()
	cb.SetValue("theme nord")
	cb.Submit()

	cb.Open()
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	cb.Update(up)
	require.Equal(t, "theme nord", cb.input.Value())
	cb.Update(up)
	require.Equal(t, "save", cb.input.Value())
	cb.Update(up)
	require.Equal(t, "save", cb.input.Value(), "stays on the oldest entry")
	cb.Update(down)
	require.Equal(t, "theme nord", cb.input.Value())
	cb.Update(down)
	require.Equal(t, "", cb.input.Value())

	cb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, cb.IsActive())
	require.Empty(t, cb.View())
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(100)
	sb.SetDepths(2, 1)

	require.Contains(t, sb.View(), "no current page")
	require.Contains(t, sb.View(), "◀ 2  ▶ 1")

	sb.SetCurrent("b.com", time.Now().Add(-3*time.Hour))
	view := sb.View()
	require.Contains(t, view, "b.com")
	require.Contains(t, view, "3 hours ago")

	sb.SetError("Back stack is empty. Cannot go back.")
	require.Contains(t, sb.View(), "Back stack is empty. Cannot go back.")
	require.Equal(t, "Back stack is empty. Cannot go back.", sb.Message())
}

func TestReportViewport(t *testing.T) {
	rv := NewReportViewport()
	require.Equal(t, "TOP", rv.ScrollInfo())
	rv.SetContent("ignored before sizing")
	require.False(t, rv.Ready())

	rv.SetSize(40, 2)
	require.Contains(t, rv.View(), "Nothing to display.")

	rv.SetContent("one\ntwo\nthree\nfour\nfive")
	require.Equal(t, "TOP", rv.ScrollInfo())
	rv.GotoBottom()
	require.Equal(t, "BOT", rv.ScrollInfo())
	require.Contains(t, rv.View(), "five")
}

func TestVisitPrompt(t *testing.T) {
	p := NewVisitPrompt()
	p.SetWidth(60)
	p.Open([]string{"b.com", "a.com"})
	require.True(t, p.IsOpen())

	_, ok := p.Submit()
	require.False(t, ok)
	require.True(t, p.IsOpen(), "blank entry keeps the prompt open")
	require.Equal(t, EmptyURLMessage, p.Err())
	require.Contains(t, p.View(), EmptyURLMessage)

	for _, r := range "  c.com " {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Empty(t, p.Err(), "typing clears the error")

	url, ok := p.Submit()
	require.True(t, ok)
	require.Equal(t, "c.com", url)
	require.False(t, p.IsOpen())

	p.Open(nil)
	require.Contains(t, p.View(), "Enter the URL of the site:")
}
