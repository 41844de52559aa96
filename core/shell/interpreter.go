package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/josephlewis42/catfish/core/logger"
	"github.com/josephlewis42/catfish/core/vos"
)

// ErrExit is returned by Execute when the line asked the shell to terminate.
var ErrExit = errors.New("exit")

// HistorySink receives executed lines.
type HistorySink interface {
	// Append adds a line to the in-memory history.
	Append(line string)
	// Commit persists the history.
	Commit() error
}

// Interpreter executes lines against a virtual OS.
type Interpreter struct {
	VirtualOS vos.VOS
	History   HistorySink
	Events    logger.Recorder

	dirs DirState
}

// NewInterpreter creates an interpreter starting in the working directory of
// virtualOS. A nil events recorder discards events.
func NewInterpreter(virtualOS vos.VOS, history HistorySink, events logger.Recorder) (*Interpreter, error) {
	dirs, err := NewDirState(virtualOS)
	if err != nil {
		return nil, fmt.Errorf("couldn't get working directory: %w", err)
	}

	if events == nil {
		events = logger.NopRecorder{}
	}

	return &Interpreter{
		VirtualOS: virtualOS,
		History:   history,
		Events:    events,
		dirs:      dirs,
	}, nil
}

// Dirs returns the current directory state.
func (in *Interpreter) Dirs() DirState {
	return in.dirs
}

// Execute runs one line to completion, blocking until the last process of the
// pipeline exits, then records the line in history. Failures of individual
// commands are reported on the session's stderr and don't produce an error.
//
// ErrExit is returned without touching history when the line contains exit.
func (in *Interpreter) Execute(ctx context.Context, line string) error {
	pipeline := Parse(line)
	if len(pipeline) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var prev vos.Process
	release := func() {
		if prev != nil {
			prev.Release()
			prev = nil
		}
	}

	for i, inv := range pipeline {
		last := i == len(pipeline)-1

		switch inv.Kind {
		case KindExit:
			release()
			return ErrExit

		case KindCd:
			release()
			in.changeDir(inv)

		default:
			proc, err := in.spawn(inv, prev, last, i)
			release()
			if err != nil {
				in.reportSpawnError(inv, err)
				continue
			}
			prev = proc
		}
	}

	if prev != nil {
		// A non-zero exit status belongs to the command, not the shell.
		_ = prev.Wait()
		prev = nil
	}

	in.History.Append(line)
	if err := in.History.Commit(); err != nil {
		fmt.Fprintf(in.VirtualOS.Stderr(), "history: %v\n", err)
	}

	return nil
}

func (in *Interpreter) spawn(inv Invocation, prev vos.Process, last bool, stage int) (vos.Process, error) {
	var stdin io.Reader = in.VirtualOS.Stdin()
	if prev != nil {
		stdin = prev.Stdout()
	}

	proc, err := in.VirtualOS.StartProcess(inv.Name, inv.Args, &vos.ProcAttr{
		Env:        in.VirtualOS.Environ(),
		Files:      vos.NewVIOAdapter(stdin, in.VirtualOS.Stdout(), in.VirtualOS.Stderr()),
		PipeStdout: !last,
	})
	if err != nil {
		return nil, err
	}

	in.Events.Record(&logger.RunCommand{
		Command: inv.Argv(),
		Stage:   stage,
	})

	return proc, nil
}

func (in *Interpreter) reportSpawnError(inv Invocation, err error) {
	var msg string
	if errors.Is(err, vos.ErrNotFound) {
		msg = fmt.Sprintf("%s: command not found", inv.Name)
	} else {
		msg = fmt.Sprintf("%s: %v", inv.Name, err)
	}

	fmt.Fprintln(in.VirtualOS.Stderr(), msg)
	in.Events.Record(&logger.UnknownCommand{
		Command:      inv.Argv(),
		ErrorMessage: msg,
	})
}

func (in *Interpreter) changeDir(inv Invocation) {
	next, err := ChangeDir(in.VirtualOS, in.dirs, inv.Args)
	if err != nil {
		fmt.Fprintf(in.VirtualOS.Stderr(), "cd: %v\n", err)
		in.Events.Record(&logger.InvalidInvocation{
			Command: inv.Argv(),
			Error:   err.Error(),
		})
		return
	}

	from := in.dirs.Current
	in.dirs = next
	in.VirtualOS.Setenv(vos.EnvOldPWD, next.Previous)
	in.VirtualOS.Setenv(vos.EnvPWD, next.Current)
	in.Events.Record(&logger.ChangeDirectory{
		From: from,
		To:   next.Current,
	})
}
