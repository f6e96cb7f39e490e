package dirs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedPushPop(t *testing.T) {
	_, root := NewScopedRoot(NewRoot("/proj"))
	before := root.Path().String()

	target := ScopeTarget(root)
	assert.Equal(t, filepath.Join("/proj", "target"), target.Path().String())

	pt := ScopeProfile(target, "dev")
	assert.Equal(t, filepath.Join("/proj", "target", "dev"), pt.Path().String())

	build := ScopeBuild(pt)
	assert.Equal(t, filepath.Join("/proj", "target", "dev", "build"), build.Path().String())

	build.Close()
	pt.Close()
	target.Close()

	assert.Equal(t, before, root.Path().String())
}

func TestScopedUnwindOnError(t *testing.T) {
	_, root := NewScopedRoot(NewRoot("/proj"))
	before := root.Path().String()

	walk := func() error {
		src := ScopeSrc(root)
		defer src.Close()
		f := ScopeSrcFile(src, "main.tex")
		defer f.Close()
		return errors.New("boom")
	}
	require.Error(t, walk())

	// Deferred closes ran in reverse order; the builder is back where it started.
	assert.Equal(t, before, root.Path().String())
}

func TestScopedCloseIdempotent(t *testing.T) {
	_, root := NewScopedRoot(NewRoot("/proj"))
	target := ScopeTarget(root)
	target.Close()
	target.Close() // second close is a no-op
	assert.Equal(t, "/proj", root.Path().String())
}

func TestScopedOutOfOrderClosePanics(t *testing.T) {
	_, root := NewScopedRoot(NewRoot("/proj"))
	target := ScopeTarget(root)
	pt := ScopeProfile(target, "dev")
	_ = pt

	assert.Panics(t, func() { target.Close() })
}

func TestScopedExtendAfterClosePanics(t *testing.T) {
	_, root := NewScopedRoot(NewRoot("/proj"))
	target := ScopeTarget(root)
	target.Close()
	assert.Panics(t, func() { ScopeCacheTag(target) })
}
