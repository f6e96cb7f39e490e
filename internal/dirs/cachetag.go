package dirs

import (
	"fmt"
	"os"
	"strings"
)

// CacheTagName is the standard cache-directory tag file name, see
// https://bford.info/cachedir/.
const CacheTagName = "CACHEDIR.TAG"

// CacheTagSignature is the fixed first line of a valid tag file. Only a
// tree carrying this signature may be removed recursively.
const CacheTagSignature = "Signature: 8a477f597d28d172789f06886806bc55"

const cacheTagContents = CacheTagSignature + "\n" +
	"# This file is a cache directory tag created by texbuild.\n" +
	"# For information about cache directory tags, see:\n" +
	"#\thttps://bford.info/cachedir/\n"

// WriteCacheTag places the tag file at the target root, creating the
// directory if needed. An existing tag is left alone.
func WriteCacheTag(target Path[Target]) error {
	if err := os.MkdirAll(target.String(), 0o750); err != nil {
		return fmt.Errorf("create target directory %s: %w", target, err)
	}
	tag := CacheTagFile(target)
	if _, err := os.Stat(tag.String()); err == nil {
		return nil
	}
	if err := os.WriteFile(tag.String(), []byte(cacheTagContents), 0o644); err != nil {
		return fmt.Errorf("write cache tag %s: %w", tag, err)
	}
	return nil
}

// VerifyCacheTag reports whether the target carries a tag file with the
// expected signature.
func VerifyCacheTag(target Path[Target]) error {
	tag := CacheTagFile(target)
	data, err := os.ReadFile(tag.String())
	if err != nil {
		return fmt.Errorf("read cache tag %s: %w", tag, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	if strings.TrimSpace(line) != CacheTagSignature {
		return fmt.Errorf("%s does not look like a texbuild output directory: bad cache tag signature", target)
	}
	return nil
}

// CleanTarget removes the whole target tree after verifying its tag. A
// missing target is not an error.
func CleanTarget(target Path[Target]) error {
	if _, err := os.Stat(target.String()); os.IsNotExist(err) {
		return nil
	}
	if err := VerifyCacheTag(target); err != nil {
		return err
	}
	if err := os.RemoveAll(target.String()); err != nil {
		return fmt.Errorf("remove %s: %w", target, err)
	}
	return nil
}

// CleanProfile removes one profile's subtree. The tag at the target root
// still gates the deletion, and a missing profile directory is not an
// error.
func CleanProfile(target Path[Target], profile string) error {
	pt := ProfileDir(target, profile)
	if _, err := os.Stat(pt.String()); os.IsNotExist(err) {
		return nil
	}
	if err := VerifyCacheTag(target); err != nil {
		return err
	}
	if err := os.RemoveAll(pt.String()); err != nil {
		return fmt.Errorf("remove %s: %w", pt, err)
	}
	return nil
}
