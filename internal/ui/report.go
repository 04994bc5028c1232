package ui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/vidyasagar/navhist/internal/browser"
	"github.com/vidyasagar/navhist/internal/theme"
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	cachedRendererStyle string
	rendererMu          sync.Mutex
)

// ReportMarkdown renders the navigation state as a markdown document: the
// back stack and forward stack oldest first, then the current page.
func ReportMarkdown(snap browser.Snapshot, loc *time.Location) string {
	var sb strings.Builder

	sb.WriteString("# Browser History\n\n")

	sb.WriteString("## Back Stack\n\n")
	writeEntries(&sb, snap.Back, loc)

	sb.WriteString("## Forward Stack\n\n")
	writeEntries(&sb, snap.Forward, loc)

	sb.WriteString("## Current Website\n\n")
	if snap.HasCurrent {
		fmt.Fprintf(&sb, "**%s**  \n%s\n", snap.Current.URL(), visitedLine(snap.Current, loc))
	} else {
		sb.WriteString("_No current page._\n")
	}

	return sb.String()
}

func writeEntries(sb *strings.Builder, entries []browser.NavigationEntry, loc *time.Location) {
	if len(entries) == 0 {
		sb.WriteString("_Empty_\n\n")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(sb, "%d. %s · %s\n", i+1, codeSpan(e.URL()), visitedLine(e, loc))
	}
	sb.WriteString("\n")
}

// codeSpan wraps s in an inline code span whose fence is longer than any
// backtick run inside s.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

func visitedLine(e browser.NavigationEntry, loc *time.Location) string {
	return fmt.Sprintf("visited %s (%s)", e.FormatTimestamp(loc), humanize.Time(e.Time()))
}

// RenderReport renders the navigator's report for the terminal. If glamour
// fails the plain Display text is returned.
func RenderReport(nav *browser.Navigator, width int) string {
	md := ReportMarkdown(nav.Snapshot(), nav.Location())
	rendered, err := renderWithGlamour(md, width)
	if err == nil {
		return rendered
	}

	var buf bytes.Buffer
	if err := nav.Display(&buf); err != nil {
		return md
	}
	return buf.String()
}

// renderWithGlamour uses a cached renderer, rebuilt only when the width or
// theme changes.
func renderWithGlamour(markdown string, width int) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if width <= 0 {
		width = 80
	}
	style := theme.Current.GlamourStyle
	if style == "" {
		style = "dark"
	}

	if cachedRenderer == nil || cachedRendererWidth != width || cachedRendererStyle != style {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
		cachedRendererStyle = style
	}

	return cachedRenderer.Render(markdown)
}
