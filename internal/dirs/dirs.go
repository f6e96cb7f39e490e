// Package dirs models the on-disk layout of a texbuild project as a typed
// directory schema. Every directory and file the tool touches is a node
// type, and a path value for a node can only be obtained by extending its
// declared parent. Path values for different nodes are distinct Go types,
// so a build directory can never be passed where a source directory is
// expected even when both hold the same bytes.
package dirs

import "path/filepath"

// Well-known names inside a project tree.
const (
	ManifestName  = "texbuild.toml"
	SrcDirName    = "src"
	MainFileName  = "main.tex"
	TargetDirName = "target"
	BuildDirName  = "build"
	DepsDirName   = "deps"
	GitignoreName = ".gitignore"
)

// Well-known names under the user's home directory.
const (
	ConfigDirName    = ".texbuild"
	GlobalConfigName = "config.toml"
	HistoryDBName    = "history.db"
)

// Node is implemented by the zero-size marker types that label schema
// vertices. The marker method keeps foreign types out of the schema.
type Node interface{ node() }

// Project tree nodes.
type (
	// Root is the project root directory, the one holding the manifest.
	Root struct{}
	// Manifest is the texbuild.toml file at the root.
	Manifest struct{}
	// Gitignore is the .gitignore file at the root.
	Gitignore struct{}
	// Src is the source directory.
	Src struct{}
	// SourceFile is a file inside the source directory.
	SourceFile struct{}
	// Target is the top-level build output directory.
	Target struct{}
	// CacheTag is the cache-directory tag file at the target root.
	CacheTag struct{}
	// ProfileTarget is the per-profile subdirectory of the target.
	ProfileTarget struct{}
	// Build is the engine output directory inside a profile target.
	Build struct{}
	// Deps is the dependency staging directory inside a profile target.
	Deps struct{}
)

// User configuration nodes.
type (
	// Home is the user's home directory.
	Home struct{}
	// ConfigDir is the per-user texbuild configuration directory.
	ConfigDir struct{}
	// GlobalConfig is the global configuration file.
	GlobalConfig struct{}
	// HistoryDB is the build history database file.
	HistoryDB struct{}
)

func (Root) node()          {}
func (Manifest) node()      {}
func (Gitignore) node()     {}
func (Src) node()           {}
func (SourceFile) node()    {}
func (Target) node()        {}
func (CacheTag) node()      {}
func (ProfileTarget) node() {}
func (Build) node()         {}
func (Deps) node()          {}
func (Home) node()          {}
func (ConfigDir) node()     {}
func (GlobalConfig) node()  {}
func (HistoryDB) node()     {}

// Path is a filesystem path known to point at schema node N. The zero
// value is not meaningful; paths originate from NewRoot, NewHome or
// FindRoot and grow only through the declared link functions below.
type Path[N Node] struct {
	p string
}

// String returns the underlying filesystem path.
func (p Path[N]) String() string { return p.p }

// NewRoot anchors the schema at an existing project root directory.
func NewRoot(path string) Path[Root] { return Path[Root]{p: path} }

// NewHome anchors the user-configuration schema at a home directory.
func NewHome(path string) Path[Home] { return Path[Home]{p: path} }

func extend[C Node](parent, seg string) Path[C] {
	return Path[C]{p: filepath.Join(parent, seg)}
}

// Fixed links from the project root.

// ManifestFile locates the project manifest under the root.
func ManifestFile(root Path[Root]) Path[Manifest] {
	return extend[Manifest](root.p, ManifestName)
}

// GitignoreFile locates the .gitignore under the root.
func GitignoreFile(root Path[Root]) Path[Gitignore] {
	return extend[Gitignore](root.p, GitignoreName)
}

// SrcDir locates the source directory under the root.
func SrcDir(root Path[Root]) Path[Src] {
	return extend[Src](root.p, SrcDirName)
}

// TargetDir locates the build output directory under the root.
func TargetDir(root Path[Root]) Path[Target] {
	return extend[Target](root.p, TargetDirName)
}

// Parametric link: a named file inside the source directory.

// SrcFile locates a named file inside the source directory.
func SrcFile(src Path[Src], name string) Path[SourceFile] {
	return extend[SourceFile](src.p, name)
}

// Links below the target directory.

// CacheTagFile locates the cache-directory tag inside the target.
func CacheTagFile(target Path[Target]) Path[CacheTag] {
	return extend[CacheTag](target.p, CacheTagName)
}

// ProfileDir locates the per-profile subdirectory of the target. The
// segment is computed from the profile name.
func ProfileDir(target Path[Target], profile string) Path[ProfileTarget] {
	return extend[ProfileTarget](target.p, profile)
}

// BuildDir locates the engine output directory of a profile target.
func BuildDir(pt Path[ProfileTarget]) Path[Build] {
	return extend[Build](pt.p, BuildDirName)
}

// DepsDir locates the dependency staging directory of a profile target.
func DepsDir(pt Path[ProfileTarget]) Path[Deps] {
	return extend[Deps](pt.p, DepsDirName)
}

// Links below the home directory.

// UserConfigDir locates the texbuild configuration directory.
func UserConfigDir(home Path[Home]) Path[ConfigDir] {
	return extend[ConfigDir](home.p, ConfigDirName)
}

// GlobalConfigFile locates the global configuration file.
func GlobalConfigFile(cfg Path[ConfigDir]) Path[GlobalConfig] {
	return extend[GlobalConfig](cfg.p, GlobalConfigName)
}

// HistoryDBFile locates the build history database.
func HistoryDBFile(cfg Path[ConfigDir]) Path[HistoryDB] {
	return extend[HistoryDB](cfg.p, HistoryDBName)
}
