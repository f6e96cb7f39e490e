// Package scaffold creates new project trees: manifest, source skeleton,
// tagged output directory, and a fresh git repository.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

// Kind selects the source skeleton a new project starts from.
type Kind int

const (
	// KindDocument scaffolds a standalone document with a main.tex.
	KindDocument Kind = iota
	// KindPackage scaffolds a LaTeX package (.sty).
	KindPackage
	// KindClass scaffolds a LaTeX document class (.cls).
	KindClass
)

// Project describes what to scaffold.
type Project struct {
	Name string
	Kind Kind
}

const gitignoreContents = "/target\n"

const mainTexContents = `\documentclass{article}

\title{%s}
\author{}

\begin{document}
\maketitle

\end{document}
`

// New creates directory name under parent and initializes a project in it.
func New(parent string, p Project) (dirs.Path[dirs.Root], error) {
	if p.Name == "" {
		return dirs.Path[dirs.Root]{}, fmt.Errorf("project name is required")
	}
	rootDir := filepath.Join(parent, p.Name)
	if err := os.Mkdir(rootDir, 0o750); err != nil {
		return dirs.Path[dirs.Root]{}, fmt.Errorf("create project directory: %w", err)
	}
	root := dirs.NewRoot(rootDir)
	if err := Init(root, p); err != nil {
		return dirs.Path[dirs.Root]{}, err
	}
	return root, nil
}

// Init initializes a project in an existing directory. It refuses to
// touch a directory that already carries a manifest, and never overwrites
// existing files.
func Init(rootPath dirs.Path[dirs.Root], p Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}

	_, root := dirs.NewScopedRoot(rootPath)
	defer root.Close()

	manifest := dirs.ScopeManifest(root)
	if _, err := os.Stat(manifest.Path().String()); err == nil {
		return fmt.Errorf("%s already exists in %s", dirs.ManifestName, rootPath)
	}
	if err := createFile(manifest.Path().String(), manifestContents(p)); err != nil {
		return err
	}
	manifest.Close()

	gitignore := dirs.ScopeGitignore(root)
	if err := createFile(gitignore.Path().String(), gitignoreContents); err != nil {
		return err
	}
	gitignore.Close()

	src := dirs.ScopeSrc(root)
	if err := os.Mkdir(src.Path().String(), 0o750); err != nil && !os.IsExist(err) {
		return fmt.Errorf("create source directory: %w", err)
	}
	name, contents := srcFile(p)
	entry := dirs.ScopeSrcFile(src, name)
	if err := createFile(entry.Path().String(), contents); err != nil {
		return err
	}
	entry.Close()
	src.Close()

	target := dirs.ScopeTarget(root)
	if err := dirs.WriteCacheTag(target.Path()); err != nil {
		return err
	}
	target.Close()

	if _, err := git.PlainInit(rootPath.String(), false); err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("initialize git repository: %w", err)
	}
	return nil
}

func createFile(path, contents string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func manifestContents(p Project) string {
	head := fmt.Sprintf("[project]\nname = %q\ntex-format = %q\ntex-engine = %q\n",
		p.Name, config.FormatLatex, config.EnginePdftex)
	switch p.Kind {
	case KindPackage:
		return head + "\n[package]\n"
	case KindClass:
		return head + "\n[class]\n"
	default:
		return head
	}
}

func srcFile(p Project) (name, contents string) {
	date := time.Now().Format("2006/01/02")
	switch p.Kind {
	case KindPackage:
		return p.Name + ".sty", fmt.Sprintf(
			"\\NeedsTeXFormat{LaTeX2e}\n\\ProvidesPackage{%s}[%s]\n", p.Name, date)
	case KindClass:
		return p.Name + ".cls", fmt.Sprintf(
			"\\NeedsTeXFormat{LaTeX2e}\n\\ProvidesClass{%s}[%s]\n", p.Name, date)
	default:
		return dirs.MainFileName, fmt.Sprintf(mainTexContents, p.Name)
	}
}
