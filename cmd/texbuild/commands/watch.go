package commands

import (
	"context"
	stderrors "errors"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/texbuild/internal/build"
	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/errors"
	"git.home.luguber.info/inful/texbuild/internal/watch"
)

// WatchCmd rebuilds whenever project sources or the manifest change.
// The manifest is reloaded per rebuild so profile edits take effect
// without restarting the watcher.
type WatchCmd struct {
	Profile string `short:"p" help:"Profile to build"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	global, err := loadGlobal()
	if err != nil {
		return err
	}
	projectRoot, _, err := findProject()
	if err != nil {
		return err
	}

	verbosity := build.Quiet
	if root.Verbose {
		verbosity = build.Noisy
	}

	rebuild := func(ctx context.Context) error {
		project, err := config.LoadProject(dirs.ManifestFile(projectRoot))
		if err != nil {
			return err
		}
		return runBuild(ctx, projectRoot, project, &global, build.Options{
			Profile:   w.Profile,
			Verbosity: verbosity,
		})
	}

	watcher, err := watch.New(projectRoot, rebuild)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "create watcher")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "watch sources")
	}
	return nil
}
