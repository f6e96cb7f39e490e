package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/texbuild/internal/config"
	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

// ProfileNotFoundError reports a build request for a profile the project
// does not define.
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// Options tune one resolution.
type Options struct {
	// Profile overrides the project and global default profile names.
	Profile   string
	Verbosity Verbosity
}

// Resolve layers global config, project config, and the selected profile
// into one concrete Context. It creates the per-profile build directory
// (idempotent) and tags the target root as a cache directory before any
// subprocess exists.
func Resolve(global *config.GlobalConfig, project *config.ProjectConfig, root dirs.Path[dirs.Root], opts Options) (*Context, error) {
	// Caller override beats the project default beats the global default.
	profileName := opts.Profile
	if profileName == "" {
		profileName = project.Project.DefaultProfile
	}
	if profileName == "" {
		profileName = global.DefaultProfile
	}

	// Standard profiles sit beneath the manifest's profile tables, and
	// selection consumes the entry: profiles are single-use.
	profiles := project.Profiles
	profiles.MergeLeft(config.StandardProfiles())
	profile, ok := profiles.Select(profileName)
	if !ok {
		return nil, &ProfileNotFoundError{Name: profileName}
	}

	settings := project.Project.ProjectSettings
	settings.MergeRight(profile.ProjectSettings)

	system := project.Project.SystemSettings
	if system.TexFormat == "" {
		system.TexFormat = global.DefaultTexFormat
	}
	if system.TexEngine == "" {
		system.TexEngine = global.DefaultTexEngine
	}

	program, err := global.ChooseProgram(system.TexEngine, system.TexFormat)
	if err != nil {
		return nil, err
	}

	src := dirs.SrcDir(root)
	target := dirs.TargetDir(root)
	buildDir := dirs.BuildDir(dirs.ProfileDir(target, profileName))

	if err := dirs.WriteCacheTag(target); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(buildDir.String(), 0o750); err != nil {
		return nil, fmt.Errorf("create build directory %s: %w", buildDir, err)
	}

	depPaths, err := resolveDependencies(project.Dependencies, root)
	if err != nil {
		return nil, err
	}

	verbosity := opts.Verbosity
	if verbosity == "" {
		verbosity = Quiet
	}

	return &Context{
		BuildID:         uuid.NewString(),
		ProjectName:     project.Project.Name,
		Profile:         profileName,
		Root:            root,
		Src:             src,
		Build:           buildDir,
		System:          system,
		Settings:        settings,
		DependencyPaths: depPaths,
		Program:         program,
		Bibliography:    global.Bibliography,
		Verbosity:       verbosity,
	}, nil
}

// resolveDependencies turns declared dependencies into absolute search
// paths. Only local-path dependencies are functional; other shapes fail
// loudly rather than being silently skipped.
func resolveDependencies(deps map[string]config.Dependency, root dirs.Path[dirs.Root]) ([]string, error) {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(deps))
	for _, name := range names {
		dep := deps[name]
		if dep.Texbuild {
			return nil, fmt.Errorf("dependency %q: texbuild-managed dependencies are not supported yet", name)
		}
		if dep.Path == "" {
			return nil, fmt.Errorf("dependency %q: only local path dependencies are supported", name)
		}
		p := dep.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(root.String(), p)
		}
		paths = append(paths, filepath.Clean(p))
	}
	return paths, nil
}
