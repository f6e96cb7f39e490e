package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination
// for the texbuild CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	te, ok := err.(*TexbuildError)
	if !ok {
		return 1
	}
	switch te.Category {
	case CategoryValidation:
		return 2
	case CategoryConfig, CategoryResolve:
		return 7
	case CategorySpawn:
		return 9
	case CategoryEngine, CategoryFileSystem:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-facing display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	te, ok := err.(*TexbuildError)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return te.Error()
	}
	if te.Cause != nil {
		return fmt.Sprintf("%s: %v", te.Message, te.Cause)
	}
	return te.Message
}

// Report logs the error with its structured context at the severity's
// matching level.
func (a *CLIErrorAdapter) Report(err error) {
	te, ok := err.(*TexbuildError)
	if !ok {
		a.logger.Error("command failed", "error", err)
		return
	}
	attrs := []any{"category", string(te.Category)}
	for k, v := range te.Context {
		attrs = append(attrs, k, v)
	}
	if te.Cause != nil {
		attrs = append(attrs, "cause", te.Cause.Error())
	}
	switch te.Severity {
	case SeverityWarning:
		a.logger.Warn(te.Message, attrs...)
	default:
		a.logger.Error(te.Message, attrs...)
	}
}
