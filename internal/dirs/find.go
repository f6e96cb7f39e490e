package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks upward from dir until it finds a directory containing
// the project manifest. It fails if the filesystem root is reached first.
func FindRoot(dir string) (Path[Root], error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Path[Root]{}, fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return NewRoot(abs), nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return Path[Root]{}, fmt.Errorf("no %s found in %s or any parent directory", ManifestName, dir)
		}
		abs = parent
	}
}

// UserConfig locates the per-user configuration directory from the
// environment.
func UserConfig() (Path[ConfigDir], error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Path[ConfigDir]{}, fmt.Errorf("locate home directory: %w", err)
	}
	return UserConfigDir(NewHome(home)), nil
}
