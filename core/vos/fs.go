package vos

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/catfish/third_party/realpath"
	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem.
type VFS = afero.Fs

// Realpath resolves name relative to the working directory of vos, following
// symbolic links where the underlying filesystem supports them.
func Realpath(vos VOS, name string) (string, error) {
	return realpath.Realpath(&realpathOs{getwd: vos.Getwd, base: vos}, name)
}

// SameDir reports whether a and b name the same directory once both are
// resolved against the working directory.
func SameDir(vos VOS, a, b string) bool {
	ra, err := Realpath(vos, a)
	if err != nil {
		return false
	}
	rb, err := Realpath(vos, b)
	if err != nil {
		return false
	}
	if ra != rb {
		return false
	}

	info, err := vos.Stat(ra)
	return err == nil && info.IsDir()
}

type realpathOs struct {
	getwd func() (dir string, err error)
	base  VFS
}

var _ realpath.OS = (*realpathOs)(nil)

func (r *realpathOs) Getwd() (string, error) {
	return r.getwd()
}

func (r *realpathOs) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := r.base.(afero.Lstater); ok {
		stat, _, err := lstater.LstatIfPossible(name)
		return stat, err
	}
	return r.base.Stat(name)
}

func (r *realpathOs) Readlink(name string) (string, error) {
	if reader, ok := r.base.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", errors.New("not a link")
}
