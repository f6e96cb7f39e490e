package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/texbuild/internal/errors"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
	"git.home.luguber.info/inful/texbuild/internal/scaffold"
)

// NewCmd creates a new project directory.
type NewCmd struct {
	Name    string `arg:"" help:"Name of the project directory to create"`
	Package bool   `help:"Scaffold a LaTeX package instead of a document"`
	Class   bool   `help:"Scaffold a LaTeX class instead of a document"`
}

func (n *NewCmd) Run(_ *Global, _ *CLI) error {
	kind, err := scaffoldKind(n.Package, n.Class)
	if err != nil {
		return err
	}

	root, err := scaffold.New(".", scaffold.Project{Name: n.Name, Kind: kind})
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "create project")
	}
	slog.Info("created project", logfields.Project(n.Name), logfields.Path(root.String()))
	return nil
}
