//go:build !windows

package files

import "os"

// renameAtomic relies on rename(2) replacing newPath in one step.
func renameAtomic(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// isReparsePoint is a Windows concept; Lstat already covers symlinks here.
func isReparsePoint(string) (bool, error) {
	return false, nil
}
