package completion

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// FilenameCompleter lists path candidates relative to a fixed directory.
type FilenameCompleter struct {
	Fs afero.Fs
	// Dir is the directory relative paths are resolved against.
	Dir string
	// ShowHidden offers dot entries even when the typed name doesn't start
	// with a dot.
	ShowHidden bool
}

// NewFilenameCompleter creates a completer rooted at dir.
func NewFilenameCompleter(fsys afero.Fs, dir string, showHidden bool) *FilenameCompleter {
	return &FilenameCompleter{
		Fs:         fsys,
		Dir:        dir,
		ShowHidden: showHidden,
	}
}

// Complete returns the sorted suffixes that extend word to an existing
// entry. Directories end with "/". Unreadable directories have no
// candidates.
func (fc *FilenameCompleter) Complete(word string) []string {
	dirPart, base := splitWord(word)

	listDir := dirPart
	if !path.IsAbs(listDir) {
		listDir = path.Join(fc.Dir, dirPart)
	}

	entries, err := afero.ReadDir(fc.Fs, listDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !fc.ShowHidden && !strings.HasPrefix(base, ".") {
			continue
		}

		suffix := name[len(base):]
		if fc.isDir(path.Join(listDir, name), entry) {
			suffix += "/"
		}
		out = append(out, suffix)
	}

	sort.Strings(out)
	return out
}

func (fc *FilenameCompleter) isDir(name string, entry fs.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := fc.Fs.Stat(name)
	return err == nil && target.IsDir()
}

// splitWord splits a typed word at its last slash. The directory part keeps
// the trailing slash.
func splitWord(word string) (dirPart, base string) {
	idx := strings.LastIndex(word, "/")
	if idx < 0 {
		return "", word
	}
	return word[:idx+1], word[idx+1:]
}
