package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, dir := range []string{"/work/src/core", "/work/.git", "/etc"} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	for _, file := range []string{
		"/work/main.go",
		"/work/main_test.go",
		"/work/Makefile",
		"/work/.gitignore",
		"/work/src/shell.go",
		"/etc/hosts",
	} {
		require.NoError(t, afero.WriteFile(fsys, file, []byte("x"), 0644))
	}
	return fsys
}

func TestFilenameCompleter_Complete(t *testing.T) {
	cases := map[string]struct {
		word       string
		showHidden bool
		want       []string
	}{
		"everything visible":       {word: "", want: []string{"Makefile", "main.go", "main_test.go", "src/"}},
		"prefix":                   {word: "ma", want: []string{"in.go", "in_test.go"}},
		"directory gets a slash":   {word: "s", want: []string{"rc/"}},
		"exact directory":          {word: "src", want: []string{"/"}},
		"inside a directory":       {word: "src/", want: []string{"core/", "shell.go"}},
		"prefix inside directory":  {word: "src/sh", want: []string{"ell.go"}},
		"absolute path":            {word: "/etc/ho", want: []string{"sts"}},
		"parent directory":         {word: "../e", want: []string{"tc/"}},
		"typed dot shows hidden":   {word: ".", want: []string{"git/", "gitignore"}},
		"show hidden":              {word: "", showHidden: true, want: []string{".git/", ".gitignore", "Makefile", "main.go", "main_test.go", "src/"}},
		"no match":                 {word: "zzz", want: nil},
		"missing directory":        {word: "nope/a", want: nil},
		"file used as a directory": {word: "main.go/", want: nil},
	}

	fsys := newTestTree(t)
	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fc := NewFilenameCompleter(fsys, "/work", tc.showHidden)
			assert.Equal(t, tc.want, fc.Complete(tc.word))
		})
	}
}

func TestFilenameCompleter_symlinkToDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "target"), 0755))
	if err := os.Symlink(filepath.Join(dir, "target"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fc := NewFilenameCompleter(afero.NewOsFs(), dir, false)
	assert.Equal(t, []string{"ink/"}, fc.Complete("l"))
}

func TestSplitWord(t *testing.T) {
	cases := []struct {
		word, dir, base string
	}{
		{word: "", dir: "", base: ""},
		{word: "main", dir: "", base: "main"},
		{word: "src/", dir: "src/", base: ""},
		{word: "/etc/ho", dir: "/etc/", base: "ho"},
		{word: "a/b/c", dir: "a/b/", base: "c"},
	}

	for _, tc := range cases {
		dir, base := splitWord(tc.word)
		assert.Equal(t, tc.dir, dir, tc.word)
		assert.Equal(t, tc.base, base, tc.word)
	}
}
