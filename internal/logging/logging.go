package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 100

// runLogPattern matches the files created by Initialize in a log directory
const runLogPattern = "gitwalk-*.log"

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls where and whether a run is logged
type Options struct {
	Debug    bool
	File     string // explicit log file, appended to and never rotated
	Dir      string // directory of per-run log files
	MaxFiles int    // per-run files kept in Dir, 0 keeps all
	Attrs    []any  // key/value pairs recorded once when logging starts
}

// withEnv applies GITWALK_DEBUG, GITWALK_DEBUG_FILE and GITWALK_MAX_LOG_FILES
func (o Options) withEnv() Options {
	if os.Getenv("GITWALK_DEBUG") == "1" {
		o.Debug = true
	}
	if file := os.Getenv("GITWALK_DEBUG_FILE"); file != "" && o.File == "" {
		o.File = file
	}
	if raw := os.Getenv("GITWALK_MAX_LOG_FILES"); raw != "" && o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(raw); err == nil {
			o.MaxFiles = parsed
		}
	}
	return o
}

// Initialize points Logger at a JSON log file when debugging is enabled.
// Every record carries the run id. Returns the file in use, or "" when
// logging is discarded.
func Initialize(opts Options) (string, error) {
	opts = opts.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	runID := uuid.NewString()
	path := opts.File
	if path == "" {
		if opts.Dir == "" {
			return "", fmt.Errorf("no log directory configured")
		}
		if opts.MaxFiles > 0 {
			if err := rotateLogs(opts.Dir, opts.MaxFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(opts.Dir, runLogName(time.Now(), runID))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	Logger = slog.New(handler).With("run", runID)
	Logger.Info("Debug logging initialized", append([]any{"log_file", path}, opts.Attrs...)...)

	return path, nil
}

// runLogName sorts chronologically: gitwalk-<UTC timestamp>-<run id>.log
func runLogName(now time.Time, runID string) string {
	return fmt.Sprintf("gitwalk-%s-%s.log", now.UTC().Format("20060102T150405.000"), runID)
}

// rotateLogs deletes the oldest per-run logs so that, with the file about to
// be created, at most maxFiles remain
func rotateLogs(dir string, maxFiles int) error {
	files, err := filepath.Glob(filepath.Join(dir, runLogPattern))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}
	if len(files) < maxFiles {
		return nil
	}

	sort.Strings(files)
	for _, file := range files[:len(files)-maxFiles+1] {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", file, err)
		}
	}
	return nil
}
