package vos

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// HostOS is the VOS backed by the real operating system.
type HostOS struct {
	VFS
	*MapEnv
	hostIO

	osFs *afero.OsFs
}

var _ VOS = (*HostOS)(nil)
var _ afero.Lstater = (*HostOS)(nil)
var _ afero.LinkReader = (*HostOS)(nil)

// NewHostOS creates a VOS over the real filesystem, seeded with the process
// environment.
func NewHostOS() *HostOS {
	osFs := &afero.OsFs{}
	return &HostOS{
		VFS:    osFs,
		MapEnv: NewMapEnvFromEnvList(hostEnviron()),
		osFs:   osFs,
	}
}

// Getwd implements VDir.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VDir.Chdir.
func (h *HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// UserHomeDir implements VEnv.UserHomeDir, falling back to the host's notion
// of home when $HOME is unset.
func (h *HostOS) UserHomeDir() (string, error) {
	if home, err := h.MapEnv.UserHomeDir(); err == nil {
		return home, nil
	}
	return os.UserHomeDir()
}

// LstatIfPossible implements afero.Lstater.
func (h *HostOS) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	return h.osFs.LstatIfPossible(name)
}

// ReadlinkIfPossible implements afero.LinkReader.
func (h *HostOS) ReadlinkIfPossible(name string) (string, error) {
	return h.osFs.ReadlinkIfPossible(name)
}

// StartProcess implements VProc.StartProcess using os/exec.
func (h *HostOS) StartProcess(name string, argv []string, attr *ProcAttr) (Process, error) {
	if attr == nil {
		attr = &ProcAttr{}
	}

	path, err := LookPath(h, h.MapEnv, name)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(path, "/") {
		// Found through a "." PATH entry, keep exec from searching again.
		path = "./" + path
	}

	cmd := exec.Command(path, argv...)
	cmd.Args[0] = name
	cmd.Dir = attr.Dir
	cmd.Env = attr.Env
	if cmd.Env == nil {
		cmd.Env = h.Environ()
	}

	files := attr.Files
	if files == nil {
		files = NewVIOAdapter(nil, nil, nil)
	}
	cmd.Stdin = files.Stdin()
	cmd.Stderr = files.Stderr()

	proc := &hostProcess{cmd: cmd}
	if attr.PipeStdout {
		if proc.stdout, err = cmd.StdoutPipe(); err != nil {
			return nil, err
		}
	} else {
		cmd.Stdout = files.Stdout()
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return proc, nil
}

type hostProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser

	once    sync.Once
	waitErr error
}

var _ Process = (*hostProcess)(nil)

func (p *hostProcess) Stdout() io.ReadCloser {
	return p.stdout
}

func (p *hostProcess) Wait() error {
	p.once.Do(func() {
		p.waitErr = p.cmd.Wait()
	})
	return p.waitErr
}

func (p *hostProcess) Release() {
	if p.stdout != nil {
		// The next stage holds its own copy of the descriptor. Without one the
		// writer gets SIGPIPE instead of blocking forever.
		_ = p.stdout.Close()
	}
	go p.Wait()
}
