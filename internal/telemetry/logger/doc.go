// Package logger provides structured logging for tokens-cli.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - context.go: Carrying a logger through context.Context
//   - redact.go: Masking of token values and other secrets
//
// Features:
//
//   - JSON and text output formats
//   - Per-logger level filtering with runtime adjustment
//   - Automatic masking of sensitive attributes
package logger
