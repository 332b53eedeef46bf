// Package planos resolves engineering drawings (planos) by name. Drawings
// live as .jpg files in a nested directory tree; the index maps each base
// name to its public URL path under /planos/.
package planos

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index is the plano-name → public-path map.
type Index struct {
	dir     string
	entries map[string]string
}

// Build scans the planos directory recursively. A missing directory yields an
// empty index, not an error (the viewer just finds nothing).
func Build(dir string) (*Index, error) {
	entries := make(map[string]string)

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return &Index{dir: dir, entries: entries}, nil
		}
		return nil, err
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.EqualFold(filepath.Ext(name), ".jpg") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := strings.TrimSuffix(name, filepath.Ext(name))
		entries[key] = "/planos/" + filepath.ToSlash(rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Index{dir: dir, entries: entries}, nil
}

// Lookup resolves a plano name to its public path.
func (ix *Index) Lookup(name string) (string, bool) {
	path, ok := ix.entries[name]
	return path, ok
}

// Len returns the number of indexed drawings.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Names returns the sorted plano names, mostly for diagnostics.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.entries))
	for name := range ix.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteIndex emits the index as pretty-printed JSON, the same artifact the
// drawing viewer consumes.
func (ix *Index) WriteIndex(path string) error {
	data, err := json.MarshalIndent(ix.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find resolves a plano name directly against the filesystem, picking up
// drawings added after the index was built.
func Find(dir, name string) (string, bool) {
	found := ""
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		base := d.Name()
		if base == name+".jpg" || base == name+".JPG" {
			if rel, relErr := filepath.Rel(dir, path); relErr == nil {
				found = "/planos/" + filepath.ToSlash(rel)
				return filepath.SkipAll
			}
		}
		return nil
	})
	return found, found != ""
}
