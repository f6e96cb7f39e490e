package dirs

import "path/filepath"

// Builder is a mutable segment stack for walking the schema without
// allocating a fresh path value per step. Extensions are scoped: each
// Scoped handle pops exactly the segment it pushed when closed, and
// handles must be closed in reverse order of creation. Deferring Close
// guarantees the unwind on every exit path from the enclosing function.
type Builder struct {
	segs []string
}

// Scoped is a borrowed view of a Builder typed to schema node N. It is
// valid until Close and must not outlive its parent scope.
type Scoped[N Node] struct {
	b      *Builder
	depth  int
	closed bool
}

// NewScopedRoot starts a scoped walk at a project root.
func NewScopedRoot(root Path[Root]) (*Builder, *Scoped[Root]) {
	b := &Builder{segs: []string{root.p}}
	return b, &Scoped[Root]{b: b, depth: 1}
}

// Path snapshots the scope's current path value.
func (s *Scoped[N]) Path() Path[N] {
	if s.closed {
		panic("dirs: Path on closed scope")
	}
	return Path[N]{p: filepath.Join(s.b.segs...)}
}

// Close pops this scope's segment. Closing out of order or twice is a
// programmer error and panics. The root scope owns no pushed segment and
// closing it is a no-op.
func (s *Scoped[N]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.depth == 1 {
		return
	}
	if len(s.b.segs) != s.depth {
		panic("dirs: scopes closed out of order")
	}
	s.b.segs = s.b.segs[:s.depth-1]
}

func push[P, C Node](parent *Scoped[P], seg string) *Scoped[C] {
	if parent.closed {
		panic("dirs: extending a closed scope")
	}
	if len(parent.b.segs) != parent.depth {
		panic("dirs: extending a scope that is not innermost")
	}
	parent.b.segs = append(parent.b.segs, seg)
	return &Scoped[C]{b: parent.b, depth: parent.depth + 1}
}

// Scoped counterparts of the declared links.

// ScopeSrc descends into the source directory.
func ScopeSrc(root *Scoped[Root]) *Scoped[Src] {
	return push[Root, Src](root, SrcDirName)
}

// ScopeSrcFile descends to a named file in the source directory.
func ScopeSrcFile(src *Scoped[Src], name string) *Scoped[SourceFile] {
	return push[Src, SourceFile](src, name)
}

// ScopeManifest descends to the project manifest.
func ScopeManifest(root *Scoped[Root]) *Scoped[Manifest] {
	return push[Root, Manifest](root, ManifestName)
}

// ScopeGitignore descends to the .gitignore file.
func ScopeGitignore(root *Scoped[Root]) *Scoped[Gitignore] {
	return push[Root, Gitignore](root, GitignoreName)
}

// ScopeTarget descends into the build output directory.
func ScopeTarget(root *Scoped[Root]) *Scoped[Target] {
	return push[Root, Target](root, TargetDirName)
}

// ScopeCacheTag descends to the cache tag file.
func ScopeCacheTag(target *Scoped[Target]) *Scoped[CacheTag] {
	return push[Target, CacheTag](target, CacheTagName)
}

// ScopeProfile descends into a per-profile target directory.
func ScopeProfile(target *Scoped[Target], profile string) *Scoped[ProfileTarget] {
	return push[Target, ProfileTarget](target, profile)
}

// ScopeBuild descends into a profile's engine output directory.
func ScopeBuild(pt *Scoped[ProfileTarget]) *Scoped[Build] {
	return push[ProfileTarget, Build](pt, BuildDirName)
}
