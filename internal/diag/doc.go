// Package diag provides Reporter implementations for the pipeline's
// diagnostics stream: a slog-backed logger for the CLI and an in-memory
// recorder for tests.
package diag
