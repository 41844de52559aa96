// Package vostest provides a deterministic in-memory VOS for tests.
package vostest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/josephlewis42/catfish/core/vos"
	"github.com/spf13/afero"
)

var errNotDir = errors.New("not a directory")

const (
	// HomeDir is the home directory of the test user.
	HomeDir = "/home/fish"
	// DefaultPath is the search path of the test OS.
	DefaultPath = "/usr/bin:/bin"
)

// ProcessFunc is a fake program, it returns the exit status.
type ProcessFunc func(p *Proc) int

// Proc is the view a fake program has of itself.
type Proc struct {
	Name   string
	Args   []string
	Env    []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Spawn records one successful StartProcess call.
type Spawn struct {
	Name       string
	Args       []string
	Env        []string
	Stdin      io.ReadCloser
	PipeStdout bool
	Process    *Process
}

// MemOS is an in-memory VOS. Programs are ProcessFuncs registered in
// Commands and run to completion inside StartProcess, so a piped stdout is
// fully buffered by the time the next stage starts.
type MemOS struct {
	afero.Fs
	*vos.MapEnv
	*vos.VIOAdapter

	// Commands maps program names to their implementations, names missing
	// from the map fail with vos.ErrNotFound.
	Commands map[string]ProcessFunc
	// Spawns holds every started process in order.
	Spawns []*Spawn

	// StdoutBuf and StderrBuf capture the session streams.
	StdoutBuf *bytes.Buffer
	StderrBuf *bytes.Buffer

	cwd string
}

var _ vos.VOS = (*MemOS)(nil)

// NewMemOS creates a MemOS with the given session input, a home directory,
// /tmp and an empty /usr/bin and /bin. The working directory starts at home.
func NewMemOS(stdin string) *MemOS {
	memFs := afero.NewMemMapFs()
	for _, dir := range []string{HomeDir, "/tmp", "/usr/bin", "/bin"} {
		if err := memFs.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	env := vos.NewMapEnv()
	env.Setenv(vos.EnvHome, HomeDir)
	env.Setenv(vos.EnvPath, DefaultPath)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &MemOS{
		Fs:         memFs,
		MapEnv:     env,
		VIOAdapter: vos.NewVIOAdapter(strings.NewReader(stdin), stdout, stderr),
		Commands:   make(map[string]ProcessFunc),
		StdoutBuf:  stdout,
		StderrBuf:  stderr,
		cwd:        HomeDir,
	}
}

// Getwd implements vos.VDir.Getwd.
func (m *MemOS) Getwd() (string, error) {
	return m.cwd, nil
}

// Chdir implements vos.VDir.Chdir.
func (m *MemOS) Chdir(dir string) error {
	if dir == "" {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !path.IsAbs(dir) {
		dir = path.Join(m.cwd, dir)
	}
	dir = path.Clean(dir)

	stat, err := m.Stat(dir)
	switch {
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	case !stat.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: errNotDir}
	default:
		m.cwd = dir
		return nil
	}
}

// MustMkdirAll creates directories, panicking on failure.
func (m *MemOS) MustMkdirAll(dirs ...string) {
	for _, dir := range dirs {
		if err := m.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
}

// MustWriteFile creates a file, panicking on failure.
func (m *MemOS) MustWriteFile(name, contents string) {
	if err := afero.WriteFile(m, name, []byte(contents), 0644); err != nil {
		panic(err)
	}
}

// StartProcess implements vos.VProc.StartProcess.
func (m *MemOS) StartProcess(name string, argv []string, attr *vos.ProcAttr) (vos.Process, error) {
	if attr == nil {
		attr = &vos.ProcAttr{}
	}
	program, ok := m.Commands[name]
	if !ok {
		return nil, fmt.Errorf("exec: %q: %w", name, vos.ErrNotFound)
	}

	files := attr.Files
	if files == nil {
		files = vos.NewVIOAdapter(nil, nil, nil)
	}

	proc := &Process{}
	var stdout io.Writer = files.Stdout()
	if attr.PipeStdout {
		proc.stdout = &Pipe{}
		stdout = &proc.stdout.buf
	}

	dir := attr.Dir
	if dir == "" {
		dir = m.cwd
	}

	proc.ExitStatus = program(&Proc{
		Name:   name,
		Args:   argv,
		Env:    attr.Env,
		Dir:    dir,
		Stdin:  files.Stdin(),
		Stdout: stdout,
		Stderr: files.Stderr(),
	})

	m.Spawns = append(m.Spawns, &Spawn{
		Name:       name,
		Args:       argv,
		Env:        attr.Env,
		Stdin:      files.Stdin(),
		PipeStdout: attr.PipeStdout,
		Process:    proc,
	})

	return proc, nil
}

// SpawnNames lists the names of started processes in order.
func (m *MemOS) SpawnNames() []string {
	var out []string
	for _, s := range m.Spawns {
		out = append(out, s.Name)
	}
	return out
}

// Process is the handle of a finished fake program.
type Process struct {
	ExitStatus int
	Waited     bool
	Released   bool

	stdout *Pipe
}

var _ vos.Process = (*Process)(nil)

// Stdout implements vos.Process.Stdout.
func (p *Process) Stdout() io.ReadCloser {
	if p.stdout == nil {
		return nil
	}
	return p.stdout
}

// Wait implements vos.Process.Wait.
func (p *Process) Wait() error {
	p.Waited = true
	if p.ExitStatus != 0 {
		return fmt.Errorf("exit status %d", p.ExitStatus)
	}
	return nil
}

// Release implements vos.Process.Release.
func (p *Process) Release() {
	p.Released = true
	if p.stdout != nil {
		p.stdout.Close()
	}
}

// Pipe is the buffered stdout of a fake program.
type Pipe struct {
	buf    bytes.Buffer
	Closed bool
}

// Read reads the buffered output.
func (p *Pipe) Read(b []byte) (int, error) {
	return p.buf.Read(b)
}

// Close marks the pipe as closed.
func (p *Pipe) Close() error {
	p.Closed = true
	return nil
}
