package core

import (
	"fmt"
	"io"
	"regexp"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/josephlewis42/catfish/core/config"
)

// Highlighter paints every match of a pattern on the input line.
type Highlighter struct {
	Pattern *regexp.Regexp
	Colored bool
}

var _ readline.Painter = (*Highlighter)(nil)

// NewHighlighter compiles the configured pattern, an empty pattern highlights
// nothing.
func NewHighlighter(cfg config.Prompt, out io.Writer) (*Highlighter, error) {
	h := &Highlighter{Colored: shouldColor(cfg.Color, out)}
	if cfg.Highlight == "" {
		return h, nil
	}

	pattern, err := regexp.Compile(cfg.Highlight)
	if err != nil {
		return nil, fmt.Errorf("couldn't compile highlight pattern: %w", err)
	}
	h.Pattern = pattern
	return h, nil
}

// Paint implements readline.Painter. The cursor is tracked on the unpainted
// line so the escape codes don't move it.
func (h *Highlighter) Paint(line []rune, _ int) []rune {
	if h.Pattern == nil || !h.Colored {
		return line
	}

	red := color.New(color.FgRed)
	red.EnableColor()
	return []rune(h.Pattern.ReplaceAllStringFunc(string(line), func(match string) string {
		return red.Sprint(match)
	}))
}
