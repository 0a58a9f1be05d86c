// Package fs holds the pipeline's filesystem boundary: source discovery
// for batch runs, source reads, and atomic output writes.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/codeshot"
)

// Discover returns the files under dir matching a doublestar pattern
// (e.g. "**/*.py"), sorted for a deterministic batch order.
func Discover(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, codeshot.ErrValidation)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", dir, codeshot.ErrResource)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dir, codeshot.ErrResource)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadSource reads one source file as UTF-8 text.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("source file %s: %w", path, codeshot.ErrResource)
		}
		return "", fmt.Errorf("read %s: %v: %w", path, err, codeshot.ErrResource)
	}
	return string(data), nil
}

// WriteAtomic writes data to path through a temp file and rename, so a
// failure partway leaves no half-written output behind.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %v: %w", dir, err, codeshot.ErrResource)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %v: %w", dir, err, codeshot.ErrResource)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %v: %w", path, err, codeshot.ErrResource)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %v: %w", path, err, codeshot.ErrResource)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %v: %w", path, err, codeshot.ErrResource)
	}
	return nil
}
