package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own GITWALK_HOME.
type TestEnvironment struct {
	GitwalkHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GITWALK_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GitwalkHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// GITWALK_* variables from the parent are dropped, GITWALK_HOME points at the
// temp directory and colour is disabled.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GITWALK_") || key == "NO_COLOR" {
			continue
		}
		if _, override := e.extraEnv[key]; override {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GITWALK_HOME="+e.GitwalkHome,
		"GITWALK_DEBUG=",
		"NO_COLOR=1",
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// StateDir returns the default state directory under GITWALK_HOME.
func (e *TestEnvironment) StateDir() string {
	return filepath.Join(e.GitwalkHome, "state")
}

// StorePath returns the store file the binary uses for repoPath.
func (e *TestEnvironment) StorePath(repoPath string) string {
	return filepath.Join(e.StateDir(), filepath.Base(repoPath)+".gitwalk.db")
}

// WriteSettings writes settings.yaml into GITWALK_HOME.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	path := filepath.Join(e.GitwalkHome, "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
