// Package match turns loose files into move candidates by testing
// their normalized names against the alias table with whole-word
// matching.
package match

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"sync"
)

// ErrNoSources reports an empty source directory list.
var ErrNoSources = errors.New("no source directories")

// Unmatched bundles a skipped file with its normalized name so
// reporting does not have to normalize again.
type Unmatched struct {
	Path       string
	Normalized string
}

// Result partitions the scanned files. A file appears in exactly one
// of the three sets, or in none when its normalized name is empty.
type Result struct {
	Candidates map[string]string // file path -> the single alias that matched
	Ambiguous  []string          // file paths that matched more than one alias
	Unmatched  []Unmatched       // file paths no alias matched (reporting only)
}

// Search scans the direct file entries of each source directory and
// matches their normalized names against every alias in table.
// Exactly one whole-word match makes a file a candidate; two or more
// make it ambiguous and it is never resolved automatically. Source
// paths that are not directories are skipped; nested directories
// inside a source are skipped too.
func Search(table map[string]string, sources []string) (Result, error) {
	res := Result{Candidates: make(map[string]string)}
	if len(sources) == 0 {
		return res, ErrNoSources
	}

	keys := sortKeys(table)
	patterns := make(map[string]*regexp.Regexp, len(keys))
	for _, key := range keys {
		// Literal alias text, bounded so "war" never matches inside "warsaw".
		patterns[key] = regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
	}

	for _, dir := range sources {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return Result{}, fmt.Errorf("read source %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			name := Normalize(entry.Name())
			if name == "" {
				continue
			}
			matched := matchAliases(name, keys, patterns)
			switch len(matched) {
			case 0:
				res.Unmatched = append(res.Unmatched, Unmatched{Path: path, Normalized: name})
			case 1:
				res.Candidates[path] = matched[0]
			default:
				res.Ambiguous = append(res.Ambiguous, path)
			}
		}
	}
	return res, nil
}

// matchAliases tests name against every alias pattern, fanning out
// across a bounded worker pool. Alias tests are independent, so the
// collected set is identical to sequential evaluation; only the
// accumulator needs a lock.
func matchAliases(name string, keys []string, patterns map[string]*regexp.Regexp) []string {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(keys) {
		workers = len(keys)
	}
	if workers < 1 {
		return nil
	}

	var (
		mu      sync.Mutex
		matched []string
	)
	jobs := make(chan string)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for key := range jobs {
				if patterns[key].MatchString(name) {
					mu.Lock()
					matched = append(matched, key)
					mu.Unlock()
				}
			}
		}()
	}
	for _, key := range keys {
		jobs <- key
	}
	close(jobs)
	wg.Wait()
	return matched
}

// sortKeys returns the alias keys longest first so more specific
// aliases are considered ahead of their substrings; equal lengths fall
// back to lexicographic order for determinism.
func sortKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
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
