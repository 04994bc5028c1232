package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vidyasagar/navhist/internal/browser"
)

// SessionStore writes the navigation session back to the seed file so the
// next run resumes on the same page.
type SessionStore struct {
	path  string
	delim rune
}

// NewSessionStore creates a store writing records to path.
func NewSessionStore(path string, delim rune) *SessionStore {
	return &SessionStore{path: path, delim: delim}
}

// Path returns the file the store writes to.
func (ss *SessionStore) Path() string {
	return ss.path
}

// Save replaces the file with entries, oldest first. The write goes through
// a temporary file in the same directory so a failed save never truncates
// the previous session.
func (ss *SessionStore) Save(entries []browser.NavigationEntry) error {
	dir := filepath.Dir(ss.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := browser.WriteRecords(tmp, entries, ss.delim); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), ss.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}
