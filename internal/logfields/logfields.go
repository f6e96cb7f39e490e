// Package logfields centralizes canonical slog attribute names so log
// output stays greppable across packages.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyProject    = "project"
	KeyProfile    = "profile"
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyProgram    = "program"
	KeyDurationMS = "duration_ms"
	KeyExitCode   = "exit_code"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Project(name string) slog.Attr { return slog.String(KeyProject, name) }
func Profile(name string) slog.Attr { return slog.String(KeyProfile, name) }
func BuildID(id string) slog.Attr   { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Program(p string) slog.Attr    { return slog.String(KeyProgram, p) }
func ExitCode(c int) slog.Attr      { return slog.Int(KeyExitCode, c) }

func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Milliseconds()))
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
