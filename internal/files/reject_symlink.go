package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RejectSymlinkPath refuses paths whose target or containing directory is a
// symlink or reparse point. Components that do not exist yet are fine.
// Ancestors above the parent are not checked, so system-level links such
// as /var on macOS do not break writes under the temp directory.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	for _, p := range []string{abs, filepath.Dir(abs)} {
		if err := rejectLink(p, abs); err != nil {
			return err
		}
	}
	return nil
}

func rejectLink(p, target string) error {
	info, err := os.Lstat(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to access path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write to symlink path: %s (symlink detected at %s)", target, p)
	}
	reparse, err := isReparsePoint(p)
	if err != nil {
		return fmt.Errorf("failed to check reparse point: %w", err)
	}
	if reparse {
		return fmt.Errorf("refusing to write to symlink path: %s (reparse point detected at %s)", target, p)
	}
	return nil
}
