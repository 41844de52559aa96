package config

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), DefaultDirName)
	cfg, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(filepath.Join(tempDir, ConfigurationName))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigData, contents)
	assert.Equal(t, tempDir, cfg.Dir())

	// Check that the config is valid
	cfg, err = Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()

		_, err = os.Stat(filepath.Join(tempDir, AppLogName))
		assert.NoError(t, err)
	})

	t.Run("LoadConfigFile", func(t *testing.T) {
		fromFile, err := Load(filepath.Join(tempDir, ConfigurationName))
		assert.NoError(t, err)
		assert.Equal(t, tempDir, fromFile.Dir())
	})
}

func TestInitialize_existing(t *testing.T) {
	tempDir := t.TempDir()
	custom := []byte("show_hidden: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigurationName), custom, 0600))

	var logs bytes.Buffer
	cfg, err := Initialize(tempDir, log.New(&logs, "", 0))
	require.NoError(t, err)

	assert.True(t, cfg.ShowHidden)
	assert.Contains(t, logs.String(), "already exists")

	contents, err := os.ReadFile(filepath.Join(tempDir, ConfigurationName))
	require.NoError(t, err)
	assert.Equal(t, custom, contents)
}
