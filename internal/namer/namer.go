// Package namer computes collision-free destination paths by
// appending or incrementing a " (N)" suffix before the extension.
package namer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotDirectory reports a destination that does not exist or is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// reSuffix captures the numeric suffix in "example file (1)".
var reSuffix = regexp.MustCompile(` \((\d+)\)$`)

// Destination returns targetDir joined with sourcePath's base name,
// or the first " (N)"-suffixed variant that does not already exist.
// Every iteration checks the filesystem again, so directories with
// gap-filled suffixes resolve to the lowest free slot. A file without
// an extension is treated as having the empty extension.
//
// Known limitation: very long results are not truncated and may
// exceed name or path limits on some filesystems.
func Destination(sourcePath, targetDir string) (string, error) {
	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("destination %s: %w", targetDir, ErrNotDirectory)
	}

	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	candidate := filepath.Join(targetDir, base)

	for {
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}

		stem := strings.TrimSuffix(filepath.Base(candidate), ext)
		m := reSuffix.FindStringSubmatchIndex(stem)
		if m == nil {
			candidate = filepath.Join(targetDir, stem+" (1)"+ext)
			continue
		}
		// Slice on the match span, then re-emit with N+1.
		n, err := strconv.Atoi(stem[m[2]:m[3]])
		if err != nil {
			return "", fmt.Errorf("suffix in %s: %w", candidate, err)
		}
		candidate = filepath.Join(targetDir, fmt.Sprintf("%s (%d)%s", stem[:m[0]], n+1, ext))
	}
}
