// Package history keeps the list of executed lines and persists it as a
// newline delimited file, most recent last.
package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/spf13/afero"
)

// History is an ordered list of lines backed by a file.
type History struct {
	fs    afero.Fs
	path  string
	limit int

	mu    sync.Mutex
	lines []string
}

// New creates an empty history stored at name on fsys. A positive limit
// caps the number of lines kept, oldest first.
func New(fsys afero.Fs, name string, limit int) *History {
	return &History{
		fs:    fsys,
		path:  name,
		limit: limit,
	}
}

// Load replaces the in-memory lines with the contents of the file. A
// missing file is an empty history.
func (h *History) Load() error {
	contents, err := afero.ReadFile(h.fs, h.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		contents = nil
	case err != nil:
		return fmt.Errorf("couldn't read history: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(contents))
	scanner.Buffer(nil, 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("couldn't parse history: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = lines
	h.trim()
	return nil
}

// Append adds a line to the end of the history.
func (h *History) Append(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lines = append(h.lines, line)
	h.trim()
}

// Commit rewrites the history file with the in-memory lines, creating the
// parent directory if needed.
func (h *History) Commit() error {
	h.mu.Lock()
	var buf bytes.Buffer
	for _, line := range h.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	h.mu.Unlock()

	if err := h.fs.MkdirAll(path.Dir(h.path), 0700); err != nil {
		return fmt.Errorf("couldn't create history directory: %w", err)
	}
	if err := afero.WriteFile(h.fs, h.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("couldn't write history: %w", err)
	}
	return nil
}

// Lines returns a copy of the stored lines, oldest first.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.lines...)
}

// Path is the location of the history file.
func (h *History) Path() string {
	return h.path
}

func (h *History) trim() {
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = append([]string(nil), h.lines[len(h.lines)-h.limit:]...)
	}
}
