package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading user patterns from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// DefaultDir returns ~/.life/patterns, or empty if home is unavailable.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "patterns")
}

// LoadAll recursively scans and loads all pattern files.
// Invalid files are skipped and reported in the returned error slice.
// Returns patterns sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pattern, []error) {
	var (
		found []Pattern
		errs  []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		found = append(found, p)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		errs = append(errs, fmt.Errorf("scan %s: %w", l.Root, err))
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].ID < found[j].ID
	})
	return found, errs
}

// LoadFile loads a single pattern file.
func (l *Loader) LoadFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := ParseYAML(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// RegisterAll loads every pattern under the root and registers the ones
// whose IDs are not taken yet. It returns the number registered and any
// per-file problems (duplicates included).
func (l *Loader) RegisterAll() (int, []error) {
	found, errs := l.LoadAll()
	n := 0
	for _, p := range found {
		if Exists(p.ID) {
			errs = append(errs, fmt.Errorf("%s: pattern %q already registered", p.FilePath, p.ID))
			continue
		}
		Register(p)
		n++
	}
	return n, errs
}
