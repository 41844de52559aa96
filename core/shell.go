package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/catfish/core/completion"
	"github.com/josephlewis42/catfish/core/config"
	"github.com/josephlewis42/catfish/core/history"
	"github.com/josephlewis42/catfish/core/logger"
	"github.com/josephlewis42/catfish/core/shell"
	"github.com/josephlewis42/catfish/core/vos"
)

// Farewell is printed when input ends.
const Farewell = "exiting..."

// LineReader reads lines from the user.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell is the interactive loop: it prompts, reads a line and hands it to the
// interpreter until the input ends or the user exits.
type Shell struct {
	VirtualOS   vos.VOS
	Reader      LineReader
	Interpreter *shell.Interpreter
	Prompt      *Prompt
	Events      logger.Recorder

	Username string
	Hostname string

	toClose listCloser
}

// NewShell sets up history, completion and line editing for virtualOS. A
// history that can't be loaded is an error.
func NewShell(virtualOS vos.VOS, configuration *config.Configuration, events logger.Recorder) (*Shell, error) {
	historyFs, historyName := configuration.HistoryLocation()
	if err := historyFs.MkdirAll(filepath.Dir(historyName), 0700); err != nil {
		return nil, fmt.Errorf("couldn't create history directory: %w", err)
	}
	hist := history.New(historyFs, historyName, configuration.HistoryLimit)
	if err := hist.Load(); err != nil {
		return nil, err
	}

	highlighter, err := NewHighlighter(configuration.Prompt, virtualOS.Stdout())
	if err != nil {
		return nil, err
	}

	cfg := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(virtualOS.Stdin()),
		Stdout:                 virtualOS.Stdout(),
		Stderr:                 virtualOS.Stderr(),
		AutoComplete:           completion.NewCompleter(virtualOS, configuration.ShowHidden),
		DisableAutoSaveHistory: true,
		HistoryLimit:           recallLimit(configuration.HistoryLimit),
		Painter:                highlighter,
		InterruptPrompt:        "^C",
		FuncIsTerminal: func() bool {
			return isTerminal(virtualOS.Stdin()) && isTerminal(virtualOS.Stdout())
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	editor, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	for _, line := range hist.Lines() {
		_ = editor.SaveHistory(line)
	}

	s, err := newShell(
		virtualOS,
		editor,
		&historySink{history: hist, editor: editor},
		NewPrompt(configuration.Prompt, virtualOS.Stdout()),
		events,
	)
	if err != nil {
		editor.Close()
		return nil, err
	}
	s.toClose = append(s.toClose, editor)
	s.Username = currentUsername(virtualOS.Getenv)
	s.Hostname = hostname()

	return s, nil
}

// recallLimit maps the history limit onto readline's, which reads 0 as 500
// rather than unlimited.
func recallLimit(limit int) int {
	if limit == 0 {
		return math.MaxInt32
	}
	return limit
}

func newShell(virtualOS vos.VOS, reader LineReader, sink shell.HistorySink, prompt *Prompt, events logger.Recorder) (*Shell, error) {
	if events == nil {
		events = logger.NopRecorder{}
	}

	interpreter, err := shell.NewInterpreter(virtualOS, sink, events)
	if err != nil {
		return nil, err
	}

	return &Shell{
		VirtualOS:   virtualOS,
		Reader:      reader,
		Interpreter: interpreter,
		Prompt:      prompt,
		Events:      events,
	}, nil
}

func (s *Shell) promptInfo() PromptInfo {
	home, _ := s.VirtualOS.UserHomeDir()
	return PromptInfo{
		Username: s.Username,
		Hostname: s.Hostname,
		Dir:      s.Interpreter.Dirs().Current,
		Home:     home,
	}
}

// Run executes lines until the user exits or input ends, both of which return
// nil. Any other failure to read input is returned.
func (s *Shell) Run(ctx context.Context) error {
	s.Events.Record(&logger.SessionStart{
		Username: s.Username,
		Hostname: s.Hostname,
		Dir:      s.Interpreter.Dirs().Current,
	})

	for {
		fmt.Fprintln(s.VirtualOS.Stdout(), s.Prompt.Header(s.promptInfo()))
		s.Reader.SetPrompt(s.Prompt.Input())
		line, err := s.Reader.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// Interrupt clears line.
			s.Events.Record(&logger.Interrupt{})
			continue

		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.VirtualOS.Stdout(), Farewell)
			s.Events.Record(&logger.SessionEnd{Reason: logger.EndEOF})
			return nil

		case err != nil:
			s.Events.Record(&logger.SessionEnd{Reason: logger.EndError, Error: err.Error()})
			return fmt.Errorf("couldn't read input: %w", err)
		}

		switch err := s.Interpreter.Execute(ctx, line); {
		case errors.Is(err, shell.ErrExit):
			s.Events.Record(&logger.SessionEnd{Reason: logger.EndExit})
			return nil

		case err != nil:
			s.Events.Record(&logger.SessionEnd{Reason: logger.EndError, Error: err.Error()})
			return err
		}
	}
}

func (s *Shell) Close() error {
	return s.toClose.Close()
}

// historyEditor keeps the line editor's recall list.
type historyEditor interface {
	SaveHistory(content string) error
}

// historySink records lines both in the persistent history and in the line
// editor so they can be recalled with the arrow keys.
type historySink struct {
	history *history.History
	editor  historyEditor
}

var _ shell.HistorySink = (*historySink)(nil)

func (h *historySink) Append(line string) {
	h.history.Append(line)
	_ = h.editor.SaveHistory(line)
}

func (h *historySink) Commit() error {
	return h.history.Commit()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
