// Package commands defines the texbuild CLI surface.
package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/texbuild/internal/build"
	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/engine"
	"git.home.luguber.info/inful/texbuild/internal/errors"
	"git.home.luguber.info/inful/texbuild/internal/eventstore"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
)

// Global carries state shared by all subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging and raw engine output"`

	Build   BuildCmd   `cmd:"" help:"Build the current project"`
	Clean   CleanCmd   `cmd:"" help:"Remove build outputs"`
	Init    InitCmd    `cmd:"" help:"Initialize a project in the current directory"`
	New     NewCmd     `cmd:"" help:"Create a new project directory"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild whenever sources change"`
	History HistoryCmd `cmd:"" help:"Show recent builds"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadGlobal locates and loads the per-user configuration.
func loadGlobal() (config.GlobalConfig, error) {
	cfgDir, err := dirs.UserConfig()
	if err != nil {
		return config.GlobalConfig{}, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "locate user configuration")
	}
	global, err := config.LoadGlobal(dirs.GlobalConfigFile(cfgDir))
	if err != nil {
		return config.GlobalConfig{}, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "load global configuration")
	}
	return global, nil
}

// findProject locates the enclosing project and loads its manifest.
func findProject() (dirs.Path[dirs.Root], *config.ProjectConfig, error) {
	root, err := dirs.FindRoot(".")
	if err != nil {
		return dirs.Path[dirs.Root]{}, nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "locate project")
	}
	project, err := config.LoadProject(dirs.ManifestFile(root))
	if err != nil {
		return dirs.Path[dirs.Root]{}, nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "load project manifest")
	}
	return root, project, nil
}

// openHistory opens the per-user build history store, creating the
// configuration directory on first use. A nil store means history is
// unavailable; builds proceed without it.
func openHistory() *eventstore.SQLiteStore {
	cfgDir, err := dirs.UserConfig()
	if err != nil {
		slog.Debug("history unavailable", logfields.Error(err))
		return nil
	}
	if err := os.MkdirAll(cfgDir.String(), 0o750); err != nil {
		slog.Debug("history unavailable", logfields.Error(err))
		return nil
	}
	store, err := eventstore.NewSQLiteStore(dirs.HistoryDBFile(cfgDir).String())
	if err != nil {
		slog.Debug("history unavailable", logfields.Error(err))
		return nil
	}
	return store
}

// runBuild resolves and executes one build, rendering its event stream
// and recording it to the history store. The engine's own exit code is
// reported, not converted into a command failure.
func runBuild(ctx context.Context, root dirs.Path[dirs.Root], project *config.ProjectConfig, global *config.GlobalConfig, opts build.Options) error {
	plan, err := build.Resolve(global, project, root, opts)
	if err != nil {
		var notFound *build.ProfileNotFoundError
		if stderrors.As(err, &notFound) {
			return errors.Wrap(err, errors.CategoryValidation, errors.SeverityError, "select profile").
				WithContext("profile", notFound.Name)
		}
		return errors.Wrap(err, errors.CategoryResolve, errors.SeverityFatal, "resolve build")
	}

	runner, err := build.NewRunner(plan)
	if err != nil {
		return errors.Wrap(err, errors.CategoryResolve, errors.SeverityFatal, "construct engine command")
	}
	slog.Debug("engine command", logfields.Program(plan.Program), "invocation", runner.Engine().Invocation().String())

	var recorder *eventstore.Recorder
	if store := openHistory(); store != nil {
		defer store.Close()
		recorder = eventstore.NewRecorder(store, plan.BuildID, plan.ProjectName, plan.Profile)
	}

	for ev := range runner.Run(ctx) {
		if recorder != nil {
			recorder.Record(ctx, ev)
		}
		if err := renderEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// renderEvent prints one stream event. Fatal events become command errors.
func renderEvent(ev build.Event) error {
	switch e := ev.(type) {
	case build.Compiling:
		slog.Info("compiling", logfields.Project(e.Project), logfields.BuildID(e.BuildID), logfields.Path(e.Root))
	case build.Running:
		slog.Info("running", logfields.Program(e.Program))
	case build.EngineEvent:
		if errInfo, ok := e.Info.(engine.ErrorInfo); ok {
			fmt.Fprintf(os.Stderr, "error: %s\n", errInfo.Message)
		}
	case build.RawLine:
		fmt.Println(e.Line)
	case build.Fatal:
		return errors.Wrap(e.Err, errors.CategorySpawn, errors.SeverityFatal, "run engine")
	case build.Finished:
		slog.Info("finished",
			logfields.Profile(e.Profile),
			logfields.Duration(e.Duration),
			logfields.ExitCode(e.ExitCode))
		if e.ExitCode != 0 {
			slog.Warn("engine exited nonzero", logfields.ExitCode(e.ExitCode))
		}
	}
	return nil
}
