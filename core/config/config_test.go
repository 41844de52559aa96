package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// jsonFields lists the json names of the exported fields of a struct type.
func jsonFields(t *testing.T, rt reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		out[strings.Split(jsonTag, ",")[0]] = field.Type
	}
	return out
}

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := jsonFields(t, reflect.TypeOf(Configuration{}))
	for jsonField := range knownFields {
		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}

	rawPrompt, ok := rawConfig["prompt"].(map[interface{}]interface{})
	require.True(t, ok, "prompt should be a mapping")
	for jsonField := range jsonFields(t, reflect.TypeOf(Prompt{})) {
		_, ok := rawPrompt[jsonField]
		assert.True(t, ok, "default prompt missing field: %q", jsonField)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "history.txt", cfg.HistoryFile)
	assert.Equal(t, "ᓚᘏᗢ ", cfg.Prompt.Symbol)
	assert.Equal(t, "⛩", cfg.Prompt.HomeSymbol)
	assert.Equal(t, ColorAuto, cfg.Prompt.Color)
	assert.Equal(t, "dodo", cfg.Prompt.Highlight)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(c *Configuration)
		wantErr string
	}{
		"defaults": {
			mutate: func(c *Configuration) {},
		},
		"missing history file": {
			mutate:  func(c *Configuration) { c.HistoryFile = "" },
			wantErr: "history_file",
		},
		"negative limit": {
			mutate:  func(c *Configuration) { c.HistoryLimit = -1 },
			wantErr: "history_limit",
		},
		"missing symbol": {
			mutate:  func(c *Configuration) { c.Prompt.Symbol = "" },
			wantErr: "symbol",
		},
		"unknown color": {
			mutate:  func(c *Configuration) { c.Prompt.Color = "sometimes" },
			wantErr: "color",
		},
		"empty highlight": {
			mutate: func(c *Configuration) { c.Prompt.Highlight = "" },
		},
		"bad highlight": {
			mutate:  func(c *Configuration) { c.Prompt.Highlight = "(dodo" },
			wantErr: "highlight",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFs(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		cfg, err := LoadFs(fsys)
		require.NoError(t, err)
		assert.Equal(t, defaultConfig().Prompt, cfg.Prompt)
		assert.Equal(t, fsys, cfg.Fs())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		contents := "history_limit: 500\nprompt:\n  symbol: \"$ \"\n  color: never\n"
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte(contents), 0600))

		cfg, err := LoadFs(fsys)
		require.NoError(t, err)
		assert.Equal(t, 500, cfg.HistoryLimit)
		assert.Equal(t, "history.txt", cfg.HistoryFile)
		assert.Equal(t, "$ ", cfg.Prompt.Symbol)
		assert.Equal(t, ColorNever, cfg.Prompt.Color)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("ssh_port: 22\n"), 0600))

		_, err := LoadFs(fsys)
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("history_limit: -5\n"), 0600))

		_, err := LoadFs(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history_limit")
	})
}

func TestConfiguration_HistoryLocation(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg, err := LoadFs(fsys)
	require.NoError(t, err)

	gotFs, name := cfg.HistoryLocation()
	assert.Equal(t, fsys, gotFs)
	assert.Equal(t, "history.txt", name)

	cfg.HistoryFile = "/var/lib/catfish/history"
	gotFs, name = cfg.HistoryLocation()
	assert.IsType(t, &afero.OsFs{}, gotFs)
	assert.Equal(t, "/var/lib/catfish/history", name)
}

func TestConfiguration_AppLog(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg, err := LoadFs(fsys)
	require.NoError(t, err)

	_, err = cfg.ReadAppLog()
	assert.Error(t, err, "log doesn't exist yet")

	fd, err := cfg.OpenAppLog()
	require.NoError(t, err)
	_, err = fd.WriteString("{}\n")
	require.NoError(t, err)
	require.NoError(t, fd.Close())

	fd, err = cfg.ReadAppLog()
	require.NoError(t, err)
	defer fd.Close()
	contents, err := afero.ReadAll(fd)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(contents))
}
