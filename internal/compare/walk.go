package compare

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Scan enumerates regular files under root as slash-separated relative
// paths. Symlinks and other non-regular files are skipped, and .git
// directories are pruned; directories themselves are never listed.
func Scan(root string) (map[string]struct{}, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	paths := make(map[string]struct{})
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		paths[filepath.ToSlash(rel)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return paths, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory not found: %s", root)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}
	return nil
}
