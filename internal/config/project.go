package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

// ProjectConfig is the parsed project manifest (texbuild.toml).
type ProjectConfig struct {
	Project      ProjectHead           `toml:"project"`
	Package      *PackageConfig        `toml:"package"`
	Class        *ClassConfig          `toml:"class"`
	Profiles     Profiles              `toml:"profile"`
	Dependencies map[string]Dependency `toml:"dependencies"`
}

// ProjectHead is the [project] table: identity plus the project-level
// settings layers.
type ProjectHead struct {
	Name string `toml:"name"`
	// DefaultProfile, when set, beats the global default for this project.
	DefaultProfile string `toml:"default-profile"`
	SystemSettings
	ProjectSettings
}

// PackageConfig marks the project as a (La)TeX package. Currently just a
// marker table.
type PackageConfig struct{}

// ClassConfig marks the project as a (La)TeX class.
type ClassConfig struct{}

// Profile is a named bundle of project-settings overrides.
type Profile struct {
	ProjectSettings
}

// Profiles maps profile names to their overrides.
type Profiles map[string]Profile

// Select removes and returns the named profile. Selection is single-use:
// a second Select of the same name reports absence.
func (p Profiles) Select(name string) (Profile, bool) {
	prof, ok := p[name]
	if ok {
		delete(p, name)
	}
	return prof, ok
}

// MergeLeft adds entries from other for names p does not define.
func (p Profiles) MergeLeft(other Profiles) {
	for name, prof := range other {
		if _, ok := p[name]; !ok {
			p[name] = prof
		}
	}
}

// StandardProfiles are always selectable even when the manifest declares
// no [profile] tables.
func StandardProfiles() Profiles {
	return Profiles{
		DevProfile:     {},
		ReleaseProfile: {},
	}
}

// Dependency is a named reference to another package placed on the
// engine's input search path. Only local-path dependencies resolve; the
// texbuild flag reserves registry-managed dependencies.
type Dependency struct {
	Path     string `toml:"path"`
	Texbuild bool   `toml:"texbuild"`
}

// LoadProject reads and validates the project manifest.
func LoadProject(path dirs.Path[dirs.Manifest]) (*ProjectConfig, error) {
	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if cfg.Project.Name == "" {
		return nil, fmt.Errorf("manifest %s: project.name is required", path)
	}
	if cfg.Project.TexFormat == "" {
		cfg.Project.TexFormat = FormatLatex
	}
	if cfg.Project.TexEngine == "" {
		cfg.Project.TexEngine = EnginePdftex
	}
	if cfg.Profiles == nil {
		cfg.Profiles = Profiles{}
	}
	return &cfg, nil
}
