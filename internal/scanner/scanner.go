package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// MediaFile identifies one discovered input file by absolute path.
type MediaFile struct {
	Path string
}

// Stem returns the path without its extension, the base name shared by
// every artifact derived from this file.
func (m MediaFile) Stem() string {
	return strings.TrimSuffix(m.Path, filepath.Ext(m.Path))
}

// Ext returns the lowercased file extension including the dot.
func (m MediaFile) Ext() string {
	return strings.ToLower(filepath.Ext(m.Path))
}

// ScanError reports a root directory that is missing or unreadable. It is
// the only fatal error in the pipeline; anything below the root is per-file.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Scan walks root recursively and returns every file whose extension matches
// exts (case-insensitive, with dot). The result is sorted so repeated runs
// over the same tree process files in the same order. An empty tree is an
// empty result, not an error.
func Scan(root string, exts []string) ([]MediaFile, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	var files []MediaFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// An unreadable subdirectory skips its subtree only.
			return fs.SkipDir
		}
		if d.IsDir() {
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			files = append(files, MediaFile{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
