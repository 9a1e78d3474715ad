// internal/discover/discover.go
//
// Best-effort recursive discovery of .json metadata files. A retrieve tree
// can contain folders the process cannot read (permissions, concurrent
// cleanup); those subtrees are skipped rather than failing the whole run.

package discover

import (
	"os"
	"path/filepath"
)

// Files returns the paths of all regular files ending in .json (exact,
// case-sensitive) under root, walking subdirectories to any depth. The
// result is deterministic: os.ReadDir lists each directory sorted by name.
// A root that does not exist or cannot be read yields nil.
func Files(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			files = append(files, Files(path)...)
			continue
		}
		if filepath.Ext(entry.Name()) == ".json" {
			files = append(files, path)
		}
	}
	return files
}
