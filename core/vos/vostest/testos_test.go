package vostest

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/josephlewis42/catfish/core/vos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemOS_Chdir(t *testing.T) {
	m := NewMemOS("")
	m.MustMkdirAll("/tmp/a/b")
	m.MustWriteFile("/tmp/file", "x")

	require.NoError(t, m.Chdir("/tmp"))
	require.NoError(t, m.Chdir("a/b"))
	wd, _ := m.Getwd()
	assert.Equal(t, "/tmp/a/b", wd)

	require.NoError(t, m.Chdir(".."))
	wd, _ = m.Getwd()
	assert.Equal(t, "/tmp/a", wd)

	assert.ErrorIs(t, m.Chdir("/nonexistent"), fs.ErrNotExist)
	assert.Error(t, m.Chdir("/tmp/file"))
	assert.Error(t, m.Chdir(""))

	wd, _ = m.Getwd()
	assert.Equal(t, "/tmp/a", wd, "failed chdir leaves the directory alone")
}

func TestMemOS_StartProcess(t *testing.T) {
	m := NewMemOS("session input")
	m.Commands["upper"] = func(p *Proc) int {
		in, _ := io.ReadAll(p.Stdin)
		io.WriteString(p.Stdout, strings.ToUpper(string(in)))
		return 0
	}

	first, err := m.StartProcess("upper", nil, &vos.ProcAttr{Files: m, PipeStdout: true})
	require.NoError(t, err)
	require.NotNil(t, first.Stdout())

	second, err := m.StartProcess("upper", []string{"-x"}, &vos.ProcAttr{
		Files: vos.NewVIOAdapter(first.Stdout(), m.Stdout(), m.Stderr()),
	})
	require.NoError(t, err)

	assert.NoError(t, second.Wait())
	assert.Equal(t, "SESSION INPUT", m.StdoutBuf.String())
	assert.Equal(t, []string{"upper", "upper"}, m.SpawnNames())
	assert.Equal(t, first.Stdout(), m.Spawns[1].Stdin)
	assert.Equal(t, []string{"-x"}, m.Spawns[1].Args)

	_, err = m.StartProcess("missing", nil, nil)
	assert.ErrorIs(t, err, vos.ErrNotFound)
}

func TestMemOS_Realpath(t *testing.T) {
	m := NewMemOS("")
	m.MustMkdirAll("/tmp/a")
	require.NoError(t, m.Chdir("/tmp"))

	got, err := vos.Realpath(m, "a/../a/./")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/a", got)

	assert.True(t, vos.SameDir(m, "/tmp", "."))
	assert.True(t, vos.SameDir(m, "a/..", "/tmp/"))
	assert.False(t, vos.SameDir(m, "/tmp", "/tmp/a"))
	assert.False(t, vos.SameDir(m, "/tmp", "missing"))
}
