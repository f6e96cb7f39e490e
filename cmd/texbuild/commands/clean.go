package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/errors"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
)

// CleanCmd implements the 'clean' command. Deletion is gated on the cache
// tag at the target root: a target without a valid tag is never removed.
type CleanCmd struct {
	Profile string `help:"Remove only this profile's outputs"`
}

func (c *CleanCmd) Run(_ *Global, _ *CLI) error {
	root, _, err := findProject()
	if err != nil {
		return err
	}
	target := dirs.TargetDir(root)

	if c.Profile != "" {
		if err := dirs.CleanProfile(target, c.Profile); err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityError, "clean profile outputs").
				WithContext("profile", c.Profile)
		}
		slog.Info("cleaned", logfields.Profile(c.Profile), logfields.Path(target.String()))
		return nil
	}

	if err := dirs.CleanTarget(target); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityError, "clean build outputs")
	}
	slog.Info("cleaned", logfields.Path(target.String()))
	return nil
}
