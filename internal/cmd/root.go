package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gitwalk/internal/config"
	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/services"
)

// Message printed when --repository is missing
const msgRepositoryMissing = "Repository path not given. Use --repository <path>."

// ExitCodeStrict is returned for pre-flight failures when --strict is set
const ExitCodeStrict = 2

// CLI represents the command-line interface structure
type CLI struct {
	Repository string `help:"Path of the git repository to walk" short:"o" placeholder:"PATH"`

	Next   bool    `help:"Check out the next (newer) commit" short:"n" xor:"directive"`
	Prev   bool    `help:"Check out the previous (older) commit" short:"p" xor:"directive"`
	Start  bool    `help:"Check out the oldest commit" short:"s" xor:"directive"`
	End    bool    `help:"Check out the newest commit" short:"e" xor:"directive"`
	Index  *int    `help:"Check out the commit at index N (0 is the oldest)" short:"i" placeholder:"N" xor:"directive"`
	Branch *string `help:"Check out a branch (the cursor is left alone)" short:"b" placeholder:"NAME" xor:"directive"`
	List   bool    `help:"List all commits, marking the current one (default)" short:"l" xor:"directive"`
	Reset  bool    `help:"Rebuild the commit index and forget the cursor" short:"r" xor:"directive"`

	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	StateDir    string           `help:"Directory holding the per-repository state files" env:"GITWALK_STATE_DIR"`
	Backend     string           `help:"Git backend: the git binary or the built-in go-git implementation" default:"cli" enum:"cli,gogit" env:"GITWALK_BACKEND"`
	Color       string           `help:"Highlight the current commit" default:"auto" enum:"auto,always,never" env:"GITWALK_COLOR"`
	Strict      bool             `help:"Exit with status 2 when the repository path is missing or invalid" env:"GITWALK_STRICT"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// ExitError carries a process exit status; its message has already been printed
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		Dir:      config.GetLogDir(),
		MaxFiles: c.MaxLogFiles,
		Attrs: []any{
			"repository", c.Repository,
			"directive", c.directive().Kind.String(),
			"backend", c.Backend,
		},
	})
	if err != nil {
		return err
	}

	// The GORM logger bridge reads these
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GITWALK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GITWALK_DEBUG_FILE", logFilePath)
		}
	}

	if c.StateDir == "" {
		c.StateDir = config.GetStateDir()
	}
	c.StateDir = config.ExpandPath(c.StateDir)

	// Create container AFTER logging is initialized
	container, err := NewContainer(ContainerOptions{
		Backend:  c.Backend,
		StateDir: c.StateDir,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized",
		"backend", c.Backend,
		"color", c.Color,
		"state_dir", c.StateDir,
		"strict", c.Strict)
	return nil
}

// applySettings fills in values from settings.yaml.
// Precedence: CLI flags > env vars > settings.yaml > defaults.
// A setting is only applied if the flag is at its default and the env var is not set.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("GITWALK_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("GITWALK_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.StateDir == "" && c.settings.StateDir != "" {
		c.StateDir = c.settings.StateDir
	}

	if c.Backend == config.BackendCLI && c.settings.Backend != "" {
		if _, hasEnv := os.LookupEnv("GITWALK_BACKEND"); !hasEnv {
			c.Backend = c.settings.Backend
		}
	}

	if c.Color == config.ColorAuto && c.settings.Color != "" {
		if _, hasEnv := os.LookupEnv("GITWALK_COLOR"); !hasEnv {
			c.Color = c.settings.Color
		}
	}

	if !c.Strict {
		if _, hasEnv := os.LookupEnv("GITWALK_STRICT"); !hasEnv {
			if c.settings.Strict != nil && *c.settings.Strict {
				c.Strict = true
			}
		}
	}
}

// Walk runs the selected directive and prints the outcome to out.
// Resolution and checkout errors are printed and do not fail the run.
func (c *CLI) Walk(ctx context.Context, out io.Writer) error {
	p := newPrinter(out, c.Color)

	if c.Repository == "" {
		p.Line(msgRepositoryMissing)
		return c.preflightFailed()
	}

	navigator := c.Container.NavigatorService
	if err := navigator.Preflight(c.Repository); err != nil {
		var preflightErr *domain.PreflightError
		if errors.As(err, &preflightErr) {
			logging.Logger.Info("Pre-flight check failed", "repo", c.Repository, "error", err)
			p.Line(preflightErr.Error())
			return c.preflightFailed()
		}
		return err
	}

	outcome, err := navigator.Run(ctx, services.RunParams{
		Directive: c.directive(),
		RepoPath:  c.Repository,
	})
	if outcome != nil {
		p.Outcome(outcome)
	}
	if err != nil {
		if services.IsUserError(err) {
			p.UserError(err)
			return nil
		}
		return err
	}
	return nil
}

func (c *CLI) preflightFailed() error {
	if c.Strict {
		return &ExitError{Code: ExitCodeStrict}
	}
	return nil
}

// directive maps the directive flags to a domain.Directive; List is the default
func (c *CLI) directive() domain.Directive {
	switch {
	case c.Next:
		return domain.Next()
	case c.Prev:
		return domain.Prev()
	case c.Start:
		return domain.Start()
	case c.End:
		return domain.End()
	case c.Index != nil:
		return domain.AbsoluteIndex(*c.Index)
	case c.Branch != nil:
		return domain.BranchName(*c.Branch)
	case c.Reset:
		return domain.Reset()
	default:
		return domain.List()
	}
}
