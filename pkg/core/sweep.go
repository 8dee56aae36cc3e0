package core

import (
	"io/fs"
	"path/filepath"

	"github.com/IGLOU-EU/go-wildcard"

	"kotaclean/pkg/constants"
)

// FindMatches walks root and returns every path whose base name matches
// pattern, restricted to files or directories by kind. The root itself
// is never a match. A matched directory is not descended into, since it
// is about to be removed whole. Unreadable entries are skipped.
func FindMatches(root, pattern string, kind TargetKind) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if !wildcard.Match(pattern, name) {
			return nil
		}
		// A literal ".env" pattern can never match ".env.example",
		// but guard against broader env globs ever being added.
		if pattern == constants.EnvFileName && name == constants.EnvExampleName {
			return nil
		}

		switch kind {
		case KindDir:
			if d.IsDir() {
				matches = append(matches, path)
				return fs.SkipDir
			}
		case KindFile:
			if !d.IsDir() {
				matches = append(matches, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
