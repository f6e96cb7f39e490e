package commands

import (
	"context"

	"git.home.luguber.info/inful/texbuild/internal/build"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Profile string `short:"p" help:"Profile to build (defaults to the project's, then the global, default)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	global, err := loadGlobal()
	if err != nil {
		return err
	}
	projectRoot, project, err := findProject()
	if err != nil {
		return err
	}

	verbosity := build.Quiet
	if root.Verbose {
		verbosity = build.Noisy
	}
	return runBuild(context.Background(), projectRoot, project, &global, build.Options{
		Profile:   b.Profile,
		Verbosity: verbosity,
	})
}
