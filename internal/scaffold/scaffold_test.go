package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

func TestNewDocumentProject(t *testing.T) {
	parent := t.TempDir()

	root, err := New(parent, Project{Name: "thesis", Kind: KindDocument})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, "thesis"), root.String())

	// The manifest loads back through the config layer.
	project, err := config.LoadProject(dirs.ManifestFile(root))
	require.NoError(t, err)
	assert.Equal(t, "thesis", project.Project.Name)
	assert.Equal(t, config.FormatLatex, project.Project.TexFormat)
	assert.Equal(t, config.EnginePdftex, project.Project.TexEngine)
	assert.Nil(t, project.Package)
	assert.Nil(t, project.Class)

	main, err := os.ReadFile(dirs.SrcFile(dirs.SrcDir(root), dirs.MainFileName).String())
	require.NoError(t, err)
	assert.Contains(t, string(main), `\documentclass{article}`)
	assert.Contains(t, string(main), `\title{thesis}`)

	ignore, err := os.ReadFile(dirs.GitignoreFile(root).String())
	require.NoError(t, err)
	assert.Equal(t, "/target\n", string(ignore))

	require.NoError(t, dirs.VerifyCacheTag(dirs.TargetDir(root)))

	_, err = git.PlainOpen(root.String())
	assert.NoError(t, err, "git repository was initialized")
}

func TestNewPackageProject(t *testing.T) {
	root, err := New(t.TempDir(), Project{Name: "mystyles", Kind: KindPackage})
	require.NoError(t, err)

	project, err := config.LoadProject(dirs.ManifestFile(root))
	require.NoError(t, err)
	assert.NotNil(t, project.Package)
	assert.Nil(t, project.Class)

	sty, err := os.ReadFile(dirs.SrcFile(dirs.SrcDir(root), "mystyles.sty").String())
	require.NoError(t, err)
	assert.Contains(t, string(sty), `\ProvidesPackage{mystyles}`)
	assert.Contains(t, string(sty), `\NeedsTeXFormat{LaTeX2e}`)
}

func TestNewClassProject(t *testing.T) {
	root, err := New(t.TempDir(), Project{Name: "exam", Kind: KindClass})
	require.NoError(t, err)

	project, err := config.LoadProject(dirs.ManifestFile(root))
	require.NoError(t, err)
	assert.NotNil(t, project.Class)

	cls, err := os.ReadFile(dirs.SrcFile(dirs.SrcDir(root), "exam.cls").String())
	require.NoError(t, err)
	assert.Contains(t, string(cls), `\ProvidesClass{exam}`)
}

func TestNewRefusesExistingDirectory(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "thesis"), 0o750))

	_, err := New(parent, Project{Name: "thesis"})
	require.Error(t, err)
}

func TestInitRefusesExistingManifest(t *testing.T) {
	root, err := New(t.TempDir(), Project{Name: "thesis"})
	require.NoError(t, err)

	err = Init(root, Project{Name: "thesis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), dirs.ManifestName)
}

func TestInitRequiresName(t *testing.T) {
	err := Init(dirs.NewRoot(t.TempDir()), Project{})
	require.Error(t, err)
}

func TestInitInExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	root := dirs.NewRoot(dir)

	require.NoError(t, Init(root, Project{Name: "notes"}))

	// A scaffolded tree is immediately discoverable.
	found, err := dirs.FindRoot(dirs.SrcDir(root).String())
	require.NoError(t, err)
	assert.Equal(t, dir, found.String())
}
