package browser

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vidyasagar/navhist/internal/logger"
	"github.com/vidyasagar/navhist/internal/stack"
)

// Navigator manages the current page plus back and forward stacks.
// Every entry lives in exactly one place: the current slot or one of the
// two stacks.
type Navigator struct {
	current    NavigationEntry
	hasCurrent bool
	back       stack.Stack[NavigationEntry]
	forward    stack.Stack[NavigationEntry]

	clearForwardOnVisit bool
	delimiter           rune
	policy              MalformedPolicy
	loc                 *time.Location
	logger              logger.Logger
}

// Snapshot is a read-only view of the navigator. Both stacks are listed
// oldest first.
type Snapshot struct {
	Back       []NavigationEntry
	Forward    []NavigationEntry
	Current    NavigationEntry
	HasCurrent bool
}

// NewNavigator creates an empty navigation history.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{
		delimiter: DefaultDelimiter,
		policy:    PolicyAbort,
		logger:    logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Visit makes url the current page. The previous current page, if any,
// moves onto the back stack.
func (n *Navigator) Visit(url string, timestamp int64) error {
	if url == "" {
		return ErrEmptyURL
	}
	if n.hasCurrent {
		n.back.Push(n.current)
	}
	n.setCurrent(NewNavigationEntry(url, timestamp))
	if n.clearForwardOnVisit {
		n.forward.Clear()
	}
	n.logger.Debug("visit", zap.String("url", url), zap.Int64("timestamp", timestamp))
	return nil
}

// Back moves up to steps pages back. It returns the new current page and
// true, or the empty entry and false when there is nowhere to go.
func (n *Navigator) Back(steps int) (NavigationEntry, bool) {
	if n.back.IsEmpty() {
		return NavigationEntry{}, false
	}
	n.shift(&n.back, &n.forward, steps)
	return n.current, true
}

// Forward moves up to steps pages forward. It returns the new current page
// and true, or the empty entry and false when there is nowhere to go.
func (n *Navigator) Forward(steps int) (NavigationEntry, bool) {
	if n.forward.IsEmpty() {
		return NavigationEntry{}, false
	}
	n.shift(&n.forward, &n.back, steps)
	return n.current, true
}

// shift moves current onto to and pops from into current, up to steps
// times or until from runs out.
func (n *Navigator) shift(from, to *stack.Stack[NavigationEntry], steps int) {
	for i := 0; i < steps && !from.IsEmpty(); i++ {
		next, err := from.Pop()
		if err != nil {
			return
		}
		if n.hasCurrent {
			to.Push(n.current)
		}
		n.setCurrent(next)
	}
}

func (n *Navigator) setCurrent(e NavigationEntry) {
	n.current = e
	n.hasCurrent = true
}

// Current returns the current page, or false if there is none.
func (n *Navigator) Current() (NavigationEntry, bool) {
	return n.current, n.hasCurrent
}

// CanGoBack reports whether there is a previous page.
func (n *Navigator) CanGoBack() bool {
	return !n.back.IsEmpty()
}

// CanGoForward reports whether there is a next page.
func (n *Navigator) CanGoForward() bool {
	return !n.forward.IsEmpty()
}

// BackLen returns the depth of the back stack.
func (n *Navigator) BackLen() int {
	return n.back.Len()
}

// ForwardLen returns the depth of the forward stack.
func (n *Navigator) ForwardLen() int {
	return n.forward.Len()
}

// Location returns the zone used for rendering visit times.
func (n *Navigator) Location() *time.Location {
	if n.loc == nil {
		return time.Local
	}
	return n.loc
}

// Reset drops all history.
func (n *Navigator) Reset() {
	n.current = NavigationEntry{}
	n.hasCurrent = false
	n.back.Clear()
	n.forward.Clear()
}

// Snapshot returns a copy of the navigation state.
func (n *Navigator) Snapshot() Snapshot {
	return Snapshot{
		Back:       oldestFirst(&n.back),
		Forward:    oldestFirst(&n.forward),
		Current:    n.current,
		HasCurrent: n.hasCurrent,
	}
}

// Session returns the back stack oldest first followed by the current
// page: the record order that LoadFile turns back into the same state.
func (n *Navigator) Session() []NavigationEntry {
	entries := oldestFirst(&n.back)
	if n.hasCurrent {
		entries = append(entries, n.current)
	}
	return entries
}

func oldestFirst(s *stack.Stack[NavigationEntry]) []NavigationEntry {
	values := s.Values()
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// Display writes both stacks oldest first followed by the current page.
// The stacks are drained through a temporary stack and restored.
func (n *Navigator) Display(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("\n** Back Stack **\n")
	n.displayStack(ew, &n.back)

	ew.printf("\n** Forward Stack **\n")
	n.displayStack(ew, &n.forward)

	ew.printf("\nCurrent Website:\n")
	if n.hasCurrent {
		ew.printf("%s\n", n.current.Format(n.loc))
	} else {
		ew.printf("No current page.\n")
	}
	return ew.err
}

func (n *Navigator) displayStack(ew *errWriter, s *stack.Stack[NavigationEntry]) {
	if s.IsEmpty() {
		ew.printf("Empty\n")
		return
	}

	var tmp stack.Stack[NavigationEntry]
	for !s.IsEmpty() {
		e, _ := s.Pop()
		tmp.Push(e)
	}

	count := 1
	for !tmp.IsEmpty() {
		e, _ := tmp.Pop()
		ew.printf("%d. %s\n", count, e.Format(n.loc))
		count++
		s.Push(e)
	}
}

// LoadFile reads seed records from path onto the back stack and makes the
// last record the current page. If the file cannot be opened the state is
// left untouched.
func (n *Navigator) LoadFile(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		n.logger.Warn("opening history file", zap.String("path", path), zap.Error(err))
		return LoadResult{}, fmt.Errorf("%w %s: %w", ErrFileOpen, path, err)
	}
	defer f.Close()

	res, err := n.Load(f)
	if err != nil {
		n.logger.Warn("loading history file", zap.String("path", path), zap.Error(err))
	} else {
		n.logger.Info("history loaded",
			zap.String("path", path),
			zap.Int("loaded", res.Loaded),
			zap.Int("skipped", res.Skipped))
	}
	return res, err
}

// Load reads seed records from r. See LoadFile.
func (n *Navigator) Load(r io.Reader) (LoadResult, error) {
	dec := Decoder{Delimiter: n.delimiter, Policy: n.policy, Logger: n.logger}
	entries, res, err := dec.Decode(r)

	if len(entries) > 0 {
		if n.hasCurrent {
			n.back.Push(n.current)
		}
		for _, e := range entries {
			n.back.Push(e)
		}
		top, _ := n.back.Pop()
		n.setCurrent(top)
	}
	return res, err
}

// errWriter remembers the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
