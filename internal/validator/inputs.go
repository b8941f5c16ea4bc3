package validator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandInputs replaces each directory in paths with the files below it whose
// extension is in exts (case-insensitive, sorted). Files and missing paths
// pass through unchanged so that missing ones surface as FileNotFound.
// Entries that cannot be read during the walk are listed as well, whatever
// their extension, and fail later as FileReadError. An empty exts keeps
// every file.
func ExpandInputs(paths []string, exts []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			expanded = append(expanded, p)
			continue
		}

		var found []string
		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			// An unreadable entry is kept as an input so that it fails on
			// its own as FileReadError instead of ending the whole walk.
			if err != nil {
				found = append(found, path)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if MatchesExtension(path, exts) {
				found = append(found, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, walkErr)
		}

		sort.Strings(found)
		expanded = append(expanded, found...)
	}
	return expanded, nil
}

// MatchesExtension reports whether path ends in one of exts, ignoring case.
// An empty exts matches every path.
func MatchesExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
