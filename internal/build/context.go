// Package build resolves layered settings into a concrete build plan and
// drives one engine invocation, exposing its progress as an ordered event
// stream.
package build

import (
	"fmt"

	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/engine"
)

// Verbosity selects how much engine output reaches the event stream.
type Verbosity string

const (
	// Quiet forwards only classified engine events.
	Quiet Verbosity = "quiet"
	// Noisy forwards every raw engine output line verbatim.
	Noisy Verbosity = "noisy"
)

// Context is the fully-resolved build plan. Every field is concrete: no
// optional or default lookup remains for downstream consumers.
type Context struct {
	BuildID     string
	ProjectName string
	Profile     string

	Root  dirs.Path[dirs.Root]
	Src   dirs.Path[dirs.Src]
	Build dirs.Path[dirs.Build]

	System   config.SystemSettings
	Settings config.ProjectSettings

	// DependencyPaths are absolute, in deterministic (name-sorted) order.
	DependencyPaths []string

	Program      string
	Bibliography string
	Verbosity    Verbosity
}

// Engine seals the context into one runnable engine command. Command
// construction is pure: no process is spawned here.
func (c *Context) Engine() (*engine.Engine, error) {
	if c.System.TexEngine != config.EnginePdftex {
		return nil, fmt.Errorf("engine %q is declared but command construction for it is not implemented", c.System.TexEngine)
	}

	b := engine.NewPdftex(c.Program).
		WithSrcDir(c.Src).
		WithOutputDir(c.Build).
		WithShellEscape(c.Settings.ShellEscape).
		WithDependencies(c.DependencyPaths).
		WithVars(engine.Vars{
			Profile:         c.Profile,
			OutputDirectory: c.Build.String(),
			Bibliography:    c.Bibliography,
		}, dirs.MainFileName)

	if c.Settings.Synctex != nil && *c.Settings.Synctex {
		b = b.WithSynctex(true)
	}
	if c.Settings.OutputFormat != nil {
		switch *c.Settings.OutputFormat {
		case config.OutputPdf:
			b = b.WithOutputFormat(engine.OutputFmtPdf)
		case config.OutputDvi:
			b = b.WithOutputFormat(engine.OutputFmtDvi)
		default:
			return nil, fmt.Errorf("output format %q is not supported by the pdftex family", *c.Settings.OutputFormat)
		}
	}
	return b.Finish(), nil
}
