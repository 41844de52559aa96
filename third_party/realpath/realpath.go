// This software is distributed under the MIT License.
//
// You should have received a copy of the MIT License along with this program.
// If not, see <https://opensource.org/licenses/MIT>

// Package realpath resolves paths to their canonical form on a virtual OS.
package realpath

import (
	"bytes"
	"errors"
	"os"
	"path"
)

const (
	pathSeparator = '/'
	maxLinks      = 16
)

var (
	errTooManyLinks = errors.New("too many levels of symbolic links")
)

// OS is the subset of an operating system needed to resolve paths.
type OS interface {
	Getwd() (dir string, err error)
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
}

// Realpath returns the canonical path of fpath: absolute, free of "." and
// ".." components and with every symbolic link replaced by its target.
// Every component must exist.
func Realpath(vos OS, fpath string) (string, error) {
	if len(fpath) == 0 {
		fpath = "."
	}

	if !path.IsAbs(fpath) {
		pwd, err := vos.Getwd()
		if err != nil {
			return "", err
		}
		fpath = path.Join(pwd, fpath)
	}

	path := []byte(path.Clean(fpath))
	nlinks := 0
	start := 1
	prev := 1
	for start < len(path) {
		c := nextComponent(path, start)
		cur := c[start:]

		switch {
		case len(cur) == 0:
			copy(path[start:], path[start+1:])
			path = path[0 : len(path)-1]

		case len(cur) == 1 && cur[0] == '.':
			if start+2 < len(path) {
				copy(path[start:], path[start+2:])
			}
			path = path[0 : len(path)-2]

		case len(cur) == 2 && cur[0] == '.' && cur[1] == '.':
			copy(path[prev:], path[start+2:])
			path = path[0 : len(path)+prev-(start+2)]
			prev = 1
			start = 1

		default:
			fi, err := vos.Lstat(string(c))
			if err != nil {
				return "", err
			}
			if !isSymlink(fi) {
				prev = start
				start = len(c) + 1
				continue
			}

			nlinks++
			if nlinks > maxLinks {
				return "", errTooManyLinks
			}

			link, err := vos.Readlink(string(c))
			if err != nil {
				return "", err
			}
			after := string(path[len(c):])

			path = switchSymlinkCom(path, start, link, after)
			prev = 1
			start = 1
		}
	}

	for len(path) > 1 && path[len(path)-1] == pathSeparator {
		path = path[0 : len(path)-1]
	}
	return string(path), nil
}

func isSymlink(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeSymlink == os.ModeSymlink
}

// switchSymlinkCom replaces the symlink component ending at start with link.
func switchSymlinkCom(origPath []byte, start int, link, after string) []byte {
	if len(link) > 0 && link[0] == pathSeparator {
		return []byte(path.Join(link, after))
	}

	return []byte(path.Join(string(origPath[0:start]), link, after))
}

func nextComponent(path []byte, start int) []byte {
	v := bytes.IndexByte(path[start:], pathSeparator)
	if v < 0 {
		return path
	}
	return path[0 : start+v]
}
