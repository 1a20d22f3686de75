package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_ParsesAllKeys(t *testing.T) {
	path := writeSettings(t, `
backend: gogit
color: never
debug: true
max_log_files: 5
state_dir: /tmp/gitwalk-state
strict: true
`)

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, BackendGoGit, settings.Backend)
	assert.Equal(t, ColorNever, settings.Color)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, "/tmp/gitwalk-state", settings.StateDir)
	require.NotNil(t, settings.Strict)
	assert.True(t, *settings.Strict)
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "backend: svn\n"},
		{"unknown color", "color: rainbow\n"},
		{"negative max log files", "max_log_files: -1\n"},
		{"not yaml", "backend: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFrom(writeSettings(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestStoreFileName(t *testing.T) {
	tests := []struct {
		repoPath string
		expected string
	}{
		{"/home/user/projects/demo", "demo.gitwalk.db"},
		{"/home/user/projects/demo/", "demo.gitwalk.db"},
		{"relative/repo", "repo.gitwalk.db"},
	}

	for _, tt := range tests {
		t.Run(tt.repoPath, func(t *testing.T) {
			assert.Equal(t, tt.expected, StoreFileName(tt.repoPath))
		})
	}
}

func TestStorePath_UsesStateDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/var/state", "demo.gitwalk.db"), StorePath("/var/state", "/src/demo"))
}

func TestGetGitwalkHome_Env(t *testing.T) {
	t.Setenv("GITWALK_HOME", "/opt/gitwalk")

	assert.Equal(t, "/opt/gitwalk", GetGitwalkHome())
	assert.Equal(t, filepath.Join("/opt/gitwalk", "settings.yaml"), GetSettingsPath())
	assert.Equal(t, filepath.Join("/opt/gitwalk", "state"), GetStateDir())
}
