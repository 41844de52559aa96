package vos

import (
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// ProcAttr holds the attributes that will be applied to a new process.
type ProcAttr struct {
	// If Dir is non-empty, the child changes into the directory before
	// creating the process.
	Dir string
	// Env gives the environment variables for the new process in the form
	// returned by Environ.
	Env []string

	// Files specifies the standard streams inherited by the new process.
	// Stdout is ignored when PipeStdout is set.
	Files VIO

	// PipeStdout captures the process's stdout so it can be read back through
	// Process.Stdout, typically to feed the next process in a pipeline.
	PipeStdout bool
}

// Process is an owned handle to a started process.
type Process interface {
	// Stdout returns the read end of the process's stdout, it is nil unless the
	// process was started with ProcAttr.PipeStdout.
	Stdout() io.ReadCloser

	// Wait blocks until the process exits. A non-nil error reports a failed
	// wait or a non-zero exit status.
	Wait() error

	// Release detaches from the process. The parent's copy of a piped stdout
	// is closed and the process is reaped in the background. Release is a
	// no-op after Wait.
	Release()
}

// VProc starts processes.
type VProc interface {
	// StartProcess starts a new process running the program name with the
	// given arguments, argv excludes the program name.
	StartProcess(name string, argv []string, attr *ProcAttr) (Process, error)
}

func findExecutable(vfs VFS, file string) error {
	d, err := vfs.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. The result may be an absolute path or a path
// relative to the current directory.
func LookPath(vfs VFS, env VEnv, file string) (string, error) {
	if file == "" {
		return "", ErrNotFound
	}
	if strings.Contains(file, "/") {
		err := findExecutable(vfs, file)
		if err == nil {
			return file, nil
		}
		return "", err
	}
	path := env.Getenv(EnvPath)
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(vfs, path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
