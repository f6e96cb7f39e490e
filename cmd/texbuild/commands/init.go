package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/errors"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
	"git.home.luguber.info/inful/texbuild/internal/scaffold"
)

// InitCmd initializes a project in the current directory.
type InitCmd struct {
	Name    string `help:"Project name (defaults to the directory name)"`
	Package bool   `help:"Scaffold a LaTeX package instead of a document"`
	Class   bool   `help:"Scaffold a LaTeX class instead of a document"`
}

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	kind, err := scaffoldKind(i.Package, i.Class)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "determine working directory")
	}
	name := i.Name
	if name == "" {
		name = filepath.Base(cwd)
	}

	if err := scaffold.Init(dirs.NewRoot(cwd), scaffold.Project{Name: name, Kind: kind}); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "initialize project")
	}
	slog.Info("initialized project", logfields.Project(name), logfields.Path(cwd))
	return nil
}

func scaffoldKind(pkg, class bool) (scaffold.Kind, error) {
	switch {
	case pkg && class:
		return 0, errors.New(errors.CategoryValidation, errors.SeverityError, "--package and --class are mutually exclusive")
	case pkg:
		return scaffold.KindPackage, nil
	case class:
		return scaffold.KindClass, nil
	default:
		return scaffold.KindDocument, nil
	}
}
