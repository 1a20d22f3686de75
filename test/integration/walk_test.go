package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwalk/test/integration/harness"
)

func TestWalk(t *testing.T) {
	tests := []struct {
		name         string
		commits      int
		setup        func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult)
	}{
		{
			name:    "start on a fresh repository",
			commits: 3,
			args:    []string{"--start"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "> 0: commit 0\n")
				harness.AssertStderrEmpty(t, result)
				assert.Equal(t, repo.Hashes[0], repo.Head())
				assert.FileExists(t, env.StorePath(repo.Path))
			},
		},
		{
			name:    "prev at the oldest commit",
			commits: 3,
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "-o", repo.Path, "-s"))
			},
			args: []string{"--prev"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "Error: Index -1 is less than 0.\n")
				assert.Equal(t, repo.Hashes[0], repo.Head())
			},
		},
		{
			name:    "next at the newest commit",
			commits: 3,
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "-o", repo.Path, "-e"))
			},
			args: []string{"--next"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "Error: Index 3 is greater than the largest commit index.\n")
			},
		},
		{
			name:    "start on an empty repository",
			commits: 0,
			args:    []string{"--start"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "No commit found.\n")
			},
		},
		{
			name:    "list after reset has no cursor",
			commits: 3,
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "-o", repo.Path, "-e"))
				result := harness.RunCommand(t, env, "-o", repo.Path, "-r")
				harness.AssertSuccess(t, result)
				harness.AssertStdoutEmpty(t, result)
			},
			args: []string{},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "  0: commit 0\n  1: commit 1\n  2: commit 2\n")
				harness.AssertStdoutNotContains(t, result, "> ")
			},
		},
		{
			name:    "branch checkout",
			commits: 2,
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "-o", repo.Path, "-s"))
			},
			args: []string{"--branch", "main"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "Checking out branch main\n")
				assert.Equal(t, "main", repo.Git("rev-parse", "--abbrev-ref", "HEAD"))
			},
		},
		{
			name:    "option-like branch is rejected",
			commits: 1,
			args:    []string{"--branch=--detach"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Error: invalid branch name")
			},
		},
		{
			name:    "go-git backend",
			commits: 2,
			args:    []string{"--backend", "gogit", "--end"},
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutEquals(t, result, "> 1: commit 1\n")
				assert.Equal(t, repo.Hashes[1], repo.Head())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo := harness.NewTestRepo(t, tt.commits)
			if tt.setup != nil {
				tt.setup(t, env, repo)
			}

			result := harness.RunCommand(t, env, append([]string{"--repository", repo.Path}, tt.args...)...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, env, repo, result)
			}
		})
	}
}

func TestWalk_Preflight(t *testing.T) {
	notRepo := t.TempDir()
	missing := filepath.Join(notRepo, "missing")

	tests := []struct {
		name    string
		args    []string
		wantOut string
	}{
		{
			name:    "repository not given",
			args:    []string{"--list"},
			wantOut: "Repository path not given. Use --repository <path>.\n",
		},
		{
			name:    "directory does not exist",
			args:    []string{"-o", missing},
			wantOut: "Directory " + missing + " does not exist.\n",
		},
		{
			name:    "not a git repository",
			args:    []string{"-o", notRepo},
			wantOut: "Directory " + notRepo + " is not a git repository.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)
			harness.AssertStdoutEquals(t, result, tt.wantOut)

			result = harness.RunCommand(t, env, append([]string{"--strict"}, tt.args...)...)
			harness.AssertExitCode(t, result, 2)
			harness.AssertStdoutEquals(t, result, tt.wantOut)
		})
	}
}

func TestWalk_StrictFromSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings("strict: true\n")

	result := harness.RunCommand(t, env, "-o", filepath.Join(t.TempDir(), "missing"))

	harness.AssertExitCode(t, result, 2)
}

func TestWalk_StateDirFromEnv(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	stateDir := filepath.Join(t.TempDir(), "custom")
	env.SetEnv("GITWALK_STATE_DIR", stateDir)
	repo := harness.NewTestRepo(t, 1)

	result := harness.RunCommand(t, env, "-o", repo.Path)

	harness.AssertSuccess(t, result)
	assert.FileExists(t, filepath.Join(stateDir, "repo.gitwalk.db"))
	assert.NoFileExists(t, env.StorePath(repo.Path))
}

func TestWalk_StoreFailureExitsWithError(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t, 1)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	result := harness.RunCommand(t, env, "-o", repo.Path, "--state-dir", blocker)

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "Error: failed to open state store")
	harness.AssertStdoutEmpty(t, result)
}

func TestCLI_ExclusiveDirectives(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t, 1)

	result := harness.RunCommand(t, env, "-o", repo.Path, "--next", "--prev")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "--next")
}

func TestCLI_Version(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "gitwalk "+harness.TestVersion)
}
