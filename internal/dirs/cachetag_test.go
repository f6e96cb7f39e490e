package dirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTarget(t *testing.T) Path[Target] {
	t.Helper()
	return TargetDir(NewRoot(t.TempDir()))
}

func TestWriteAndVerifyCacheTag(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, WriteCacheTag(target))
	require.NoError(t, VerifyCacheTag(target))

	// Idempotent: a second write leaves the existing tag alone.
	require.NoError(t, WriteCacheTag(target))
	require.NoError(t, VerifyCacheTag(target))
}

func TestCleanTargetRemovesTaggedTree(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, WriteCacheTag(target))
	pt := ProfileDir(target, "dev")
	require.NoError(t, os.MkdirAll(BuildDir(pt).String(), 0o750))

	require.NoError(t, CleanTarget(target))
	_, err := os.Stat(target.String())
	assert.True(t, os.IsNotExist(err))
}

func TestCleanTargetRefusesUntaggedTree(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, os.MkdirAll(target.String(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(target.String(), "precious.pdf"), []byte("x"), 0o644))

	require.Error(t, CleanTarget(target))

	// The tree is untouched.
	_, err := os.Stat(filepath.Join(target.String(), "precious.pdf"))
	assert.NoError(t, err)
}

func TestCleanTargetRefusesBadSignature(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, os.MkdirAll(target.String(), 0o750))
	require.NoError(t, os.WriteFile(CacheTagFile(target).String(), []byte("Signature: 0000\n"), 0o644))

	require.Error(t, CleanTarget(target))
	_, err := os.Stat(target.String())
	assert.NoError(t, err)
}

func TestCleanProfile(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, WriteCacheTag(target))
	dev := ProfileDir(target, "dev")
	release := ProfileDir(target, "release")
	require.NoError(t, os.MkdirAll(BuildDir(dev).String(), 0o750))
	require.NoError(t, os.MkdirAll(BuildDir(release).String(), 0o750))

	require.NoError(t, CleanProfile(target, "dev"))

	_, err := os.Stat(dev.String())
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(release.String())
	assert.NoError(t, err)
}

func TestCleanMissingIsNoError(t *testing.T) {
	target := tempTarget(t)
	require.NoError(t, CleanTarget(target))
	require.NoError(t, CleanProfile(target, "dev"))
}
