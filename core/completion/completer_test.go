package completion

import (
	"testing"

	"github.com/josephlewis42/catfish/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(candidates [][]rune) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, string(c))
	}
	return out
}

func newTestOS(t *testing.T) *vostest.MemOS {
	t.Helper()

	m := vostest.NewMemOS("")
	m.MustMkdirAll(vostest.HomeDir+"/projects", "/tmp/logs")
	m.MustWriteFile(vostest.HomeDir+"/notes.txt", "")
	m.MustWriteFile(vostest.HomeDir+"/.profile", "")
	m.MustWriteFile("/tmp/dump.bin", "")
	return m
}

func TestCompleter_Do(t *testing.T) {
	cases := map[string]struct {
		line       string
		pos        int
		showHidden bool
		want       []string
		wantLen    int
	}{
		"command name":          {line: "no", pos: 2, want: nil, wantLen: 0},
		"empty line":            {line: "", pos: 0, want: nil, wantLen: 0},
		"first argument":        {line: "cat no", pos: 6, want: []string{"tes.txt"}, wantLen: 2},
		"after the command":     {line: "ls ", pos: 3, want: []string{"notes.txt", "projects/"}, wantLen: 0},
		"hidden with show":      {line: "ls ", pos: 3, showHidden: true, want: []string{".profile", "notes.txt", "projects/"}, wantLen: 0},
		"typed dot":             {line: "ls .p", pos: 5, want: []string{"rofile"}, wantLen: 2},
		"absolute":              {line: "cd /tmp/", pos: 8, want: []string{"dump.bin", "logs/"}, wantLen: 5},
		"cursor inside a word":  {line: "cat notes.txt", pos: 6, want: []string{"tes.txt"}, wantLen: 2},
		"cursor on command":     {line: "cat notes.txt", pos: 1, want: nil, wantLen: 0},
		"later pipeline stage":  {line: "ls | wc pro", pos: 11, want: []string{"jects/"}, wantLen: 3},
		"nothing matches":       {line: "ls zz", pos: 5, want: nil, wantLen: 2},
		"between two arguments": {line: "ls a  b", pos: 5, want: []string{"notes.txt", "projects/"}, wantLen: 0},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			c := NewCompleter(newTestOS(t), tc.showHidden)

			got, length := c.Do([]rune(tc.line), tc.pos)
			assert.Equal(t, tc.want, runes(got))
			assert.Equal(t, tc.wantLen, length)
		})
	}
}

func TestCompleter_followsWorkingDirectory(t *testing.T) {
	m := newTestOS(t)
	c := NewCompleter(m, false)

	got, _ := c.Do([]rune("ls "), 3)
	assert.Equal(t, []string{"notes.txt", "projects/"}, runes(got))

	require.NoError(t, m.Chdir("/tmp"))
	got, _ = c.Do([]rune("ls "), 3)
	assert.Equal(t, []string{"dump.bin", "logs/"}, runes(got))

	m.MustWriteFile("/tmp/new.txt", "")
	got, _ = c.Do([]rune("ls "), 3)
	assert.Equal(t, []string{"dump.bin", "logs/", "new.txt"}, runes(got))
}

func TestCompleter_Activate(t *testing.T) {
	m := newTestOS(t)
	c := NewCompleter(m, true)

	assert.Nil(t, c.Activate([]rune("ls"), 2))

	fc := c.Activate([]rune("ls "), 3)
	require.NotNil(t, fc)
	assert.Equal(t, vostest.HomeDir, fc.Dir)
	assert.True(t, fc.ShowHidden)
}
