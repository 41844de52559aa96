package completion

import (
	"github.com/abiosoft/readline"
	"github.com/josephlewis42/catfish/core/vos"
)

// Completer offers filename candidates for every word but the command name.
// The working directory is read on every request so changes made by cd are
// picked up immediately.
type Completer struct {
	VirtualOS  vos.VOS
	ShowHidden bool
}

var _ readline.AutoCompleter = (*Completer)(nil)

// NewCompleter creates a completer over virtualOS.
func NewCompleter(virtualOS vos.VOS, showHidden bool) *Completer {
	return &Completer{
		VirtualOS:  virtualOS,
		ShowHidden: showHidden,
	}
}

// Activate builds the completer for the line, it returns nil when no
// candidates should be offered.
func (c *Completer) Activate(line []rune, pos int) *FilenameCompleter {
	if ModeFor(line, pos) != ModeFilename {
		return nil
	}

	wd, err := c.VirtualOS.Getwd()
	if err != nil {
		return nil
	}
	return NewFilenameCompleter(c.VirtualOS, wd, c.ShowHidden)
}

// Do implements readline.AutoCompleter. Candidates are the text to insert at
// the cursor and length is the size of the word already typed.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	fc := c.Activate(line, pos)
	if fc == nil {
		return nil, 0
	}

	typed := WordBeforeCursor(line, pos)
	for _, suffix := range fc.Complete(string(typed)) {
		newLine = append(newLine, []rune(suffix))
	}
	return newLine, len(typed)
}
