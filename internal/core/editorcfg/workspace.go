// Package editorcfg persists resolved interpreter paths into editor
// configuration files without disturbing unrelated settings.
package editorcfg

import (
	"os"
	"path/filepath"
)

// FindRoot walks up from dir looking for a directory containing one of the
// marker entries. Returns false when no marker is found before the
// filesystem root.
func FindRoot(dir string, markers []string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
