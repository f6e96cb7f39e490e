package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/texbuild/cmd/texbuild/commands"
	"git.home.luguber.info/inful/texbuild/internal/errors"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("texbuild"),
		kong.Description("Build orchestrator for TeX projects"),
		kong.UsageOnError(),
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, &cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		adapter.Report(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}
