package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

func writeManifest(t *testing.T, contents string) dirs.Path[dirs.Manifest] {
	t.Helper()
	root := dirs.NewRoot(t.TempDir())
	m := dirs.ManifestFile(root)
	require.NoError(t, os.WriteFile(m.String(), []byte(contents), 0o644))
	return m
}

func TestLoadProject(t *testing.T) {
	m := writeManifest(t, `
[project]
name = "thesis"
tex-format = "latex"
tex-engine = "pdftex"
synctex = true

[profile.release]
synctex = false
shell-escape = true

[dependencies.mystyles]
path = "../mystyles"
`)
	cfg, err := LoadProject(m)
	require.NoError(t, err)

	assert.Equal(t, "thesis", cfg.Project.Name)
	assert.Equal(t, FormatLatex, cfg.Project.TexFormat)
	assert.Equal(t, EnginePdftex, cfg.Project.TexEngine)
	require.NotNil(t, cfg.Project.Synctex)
	assert.True(t, *cfg.Project.Synctex)

	release, ok := cfg.Profiles["release"]
	require.True(t, ok)
	require.NotNil(t, release.Synctex)
	assert.False(t, *release.Synctex)
	require.NotNil(t, release.ShellEscape)
	assert.True(t, *release.ShellEscape)

	dep, ok := cfg.Dependencies["mystyles"]
	require.True(t, ok)
	assert.Equal(t, "../mystyles", dep.Path)
	assert.False(t, dep.Texbuild)
}

func TestLoadProjectDefaults(t *testing.T) {
	m := writeManifest(t, "[project]\nname = \"note\"\n")
	cfg, err := LoadProject(m)
	require.NoError(t, err)

	assert.Equal(t, FormatLatex, cfg.Project.TexFormat)
	assert.Equal(t, EnginePdftex, cfg.Project.TexEngine)
	assert.NotNil(t, cfg.Profiles)
}

func TestLoadProjectRequiresName(t *testing.T) {
	m := writeManifest(t, "[project]\n")
	_, err := LoadProject(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.name")
}

func TestLoadProjectRejectsUnknownEngine(t *testing.T) {
	m := writeManifest(t, "[project]\nname = \"x\"\ntex-engine = \"mythical\"\n")
	_, err := LoadProject(m)
	require.Error(t, err)
}

func TestProfileSelectIsSingleUse(t *testing.T) {
	profiles := Profiles{"release": {ProjectSettings{Synctex: boolp(false)}}}

	_, ok := profiles.Select("release")
	require.True(t, ok)

	_, ok = profiles.Select("release")
	assert.False(t, ok)
}

func TestProfilesMergeLeftKeepsExisting(t *testing.T) {
	profiles := Profiles{"dev": {ProjectSettings{Synctex: boolp(true)}}}
	profiles.MergeLeft(StandardProfiles())

	dev, ok := profiles.Select("dev")
	require.True(t, ok)
	require.NotNil(t, dev.Synctex)
	assert.True(t, *dev.Synctex)

	_, ok = profiles.Select("release")
	assert.True(t, ok)
}

func TestLoadGlobalDefaultsWhenMissing(t *testing.T) {
	cfgDir := dirs.UserConfigDir(dirs.NewHome(t.TempDir()))
	cfg, err := LoadGlobal(dirs.GlobalConfigFile(cfgDir))
	require.NoError(t, err)

	assert.Equal(t, DevProfile, cfg.DefaultProfile)
	assert.Equal(t, "pdflatex", cfg.Executables.Pdflatex)
	assert.Equal(t, FormatLatex, cfg.DefaultTexFormat)
	assert.Equal(t, EnginePdftex, cfg.DefaultTexEngine)
}

func TestLoadGlobalOverlay(t *testing.T) {
	home := t.TempDir()
	cfgDir := dirs.UserConfigDir(dirs.NewHome(home))
	require.NoError(t, os.MkdirAll(cfgDir.String(), 0o750))
	path := dirs.GlobalConfigFile(cfgDir)
	require.NoError(t, os.WriteFile(path.String(), []byte(`
default-profile = "release"
default-tex-engine = "luatex"

[executables]
lualatex = "/opt/texlive/bin/lualatex"
`), 0o644))

	cfg, err := LoadGlobal(path)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.DefaultProfile)
	assert.Equal(t, EngineLuatex, cfg.DefaultTexEngine)
	assert.Equal(t, "/opt/texlive/bin/lualatex", cfg.Executables.Lualatex)
	// Untouched entries keep their defaults.
	assert.Equal(t, "pdflatex", cfg.Executables.Pdflatex)
}

func TestChooseProgram(t *testing.T) {
	cfg := DefaultGlobal()

	cases := []struct {
		engine TexEngine
		format TexFormat
		want   string
	}{
		{EngineTex, FormatTex, "tex"},
		{EngineTex, FormatLatex, "latex"},
		{EnginePdftex, FormatTex, "pdftex"},
		{EnginePdftex, FormatLatex, "pdflatex"},
		{EngineXetex, FormatTex, "xetex"},
		{EngineXetex, FormatLatex, "xelatex"},
		{EngineLuatex, FormatTex, "luatex"},
		{EngineLuatex, FormatLatex, "lualatex"},
	}
	for _, tc := range cases {
		got, err := cfg.ChooseProgram(tc.engine, tc.format)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := cfg.ChooseProgram("", "")
	assert.Error(t, err)
}

func TestManifestFileLocation(t *testing.T) {
	root := dirs.NewRoot("/p")
	assert.Equal(t, filepath.Join("/p", "texbuild.toml"), dirs.ManifestFile(root).String())
}
