// Package mover is the thin collaborator that performs the actual
// moves via the platform's atomic rename.
package mover

import "os"

// Move renames src to dst. It does not create parent directories;
// destinations come from the alias table and already exist. Moving a
// path onto itself is a no-op.
func Move(src, dst string) error {
	if src == dst {
		return nil
	}
	if _, err := os.Stat(src); err != nil {
		return err
	}
	return os.Rename(src, dst)
}
