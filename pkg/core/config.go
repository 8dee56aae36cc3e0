package core

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"

	"kotaclean/pkg/constants"
)

// KeepList holds wildcard patterns for paths the cleaner must not touch.
type KeepList struct {
	patterns []string
}

// ReadKeepList loads the optional keep list at the project root. A
// missing file yields an empty list.
func ReadKeepList(root string) (*KeepList, error) {
	patterns, err := readListFile(filepath.Join(root, constants.KeepListFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &KeepList{}, nil
		}
		return nil, err
	}
	return &KeepList{patterns: patterns}, nil
}

// Len reports how many patterns are loaded.
func (k *KeepList) Len() int {
	return len(k.patterns)
}

// Protected reports whether a root-relative path matches any keep
// pattern, either by full relative path or by base name.
func (k *KeepList) Protected(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		base = relPath[i+1:]
	}
	for _, pattern := range k.patterns {
		if wildcard.Match(pattern, relPath) || wildcard.Match(pattern, base) {
			return true
		}
	}
	return false
}

// readListFile reads newline-separated entries, skipping blank lines
// and # comments.
func readListFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") && line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}
