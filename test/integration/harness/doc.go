// Package harness provides utilities for integration testing the gitwalk CLI.
// It handles binary compilation, environment isolation, git fixtures and
// command execution.
//
// Environment variables managed:
//   - GITWALK_HOME: Isolated per test (temp directory)
//   - GITWALK_DEBUG: Disabled to reduce noise
//   - other GITWALK_* variables: removed unless set through SetEnv
package harness
