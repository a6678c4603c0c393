// Package logging wraps log/slog with fx-deploy defaults: structured JSON
// logging to stderr, module and version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Typical usage is to install the default logger once in the CLI entrypoint:
//
//	logging.SetDefaultStructuredLoggerWithLevel("fxdctl", version, logLevel)
//	slog.Info("rendering endpoint", "release", release)
//
// If LOG_LEVEL is not set and no explicit level is given, the level defaults
// to INFO.
package logging
