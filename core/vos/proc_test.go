package vos

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestLookPath(t *testing.T) {
	memFs := afero.NewMemMapFs()
	afero.WriteFile(memFs, "/usr/bin/ls", nil, 0755)
	afero.WriteFile(memFs, "/bin/ls", nil, 0755)
	afero.WriteFile(memFs, "/bin/notes.txt", nil, 0644)
	memFs.MkdirAll("/bin/dir", 0755)

	env := NewMapEnv()
	env.Setenv(EnvPath, "/usr/bin:/bin")

	cases := map[string]struct {
		file    string
		want    string
		wantErr error
	}{
		"first path entry wins": {file: "ls", want: "/usr/bin/ls"},
		"missing":               {file: "nope", wantErr: ErrNotFound},
		"empty name":            {file: "", wantErr: ErrNotFound},
		"not executable":        {file: "notes.txt", wantErr: ErrNotFound},
		"direct path":           {file: "/bin/ls", want: "/bin/ls"},
		"direct not executable": {file: "/bin/notes.txt", wantErr: fs.ErrPermission},
		"direct directory":      {file: "/bin/dir", wantErr: fs.ErrPermission},
		"direct missing":        {file: "/bin/nope", wantErr: ErrNotFound},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := LookPath(memFs, env, tc.file)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
