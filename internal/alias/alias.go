// Package alias derives the alias table from a target directory's
// immediate subdirectories.
package alias

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkarkia/filesort/internal/match"
)

var (
	// ErrNotDirectory reports a target path that does not exist or is
	// not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrDuplicateAlias reports two subdirectories claiming the same
	// alias key, a misconfigured target directory.
	ErrDuplicateAlias = errors.New("duplicate alias")
)

// Table maps an alias key to the destination directory it names.
// Built once per run and read-only afterwards.
type Table map[string]string

// Build reads the immediate subdirectories of targetDir. Each one
// contributes alias keys: its lowercased name, or one key per trimmed
// comma segment when the name contains commas ("Movies, Films" maps
// both "movies" and "films" to that directory). An empty table is a
// valid result; the caller decides whether that is fatal.
func Build(targetDir string) (Table, error) {
	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target %s: %w", targetDir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, fmt.Errorf("read target %s: %w", targetDir, err)
	}

	table := make(Table)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(targetDir, entry.Name())
		name := strings.ToLower(match.Fold(entry.Name()))

		segments := []string{name}
		if strings.Contains(name, ",") {
			segments = strings.Split(name, ",")
		}
		for _, segment := range segments {
			key := strings.TrimSpace(segment)
			if key == "" {
				continue
			}
			if existing, ok := table[key]; ok {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s: %w",
					key, existing, dir, ErrDuplicateAlias)
			}
			table[key] = dir
		}
	}
	return table, nil
}

// Keys returns the alias keys longest first, equal lengths in
// lexicographic order, matching the order the matcher considers them.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
