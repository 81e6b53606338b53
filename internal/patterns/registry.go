package patterns

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed library/*.yaml
var library embed.FS

var (
	registered = make(map[string]Pattern)
	mu         sync.RWMutex
)

func init() {
	entries, err := fs.ReadDir(library, "library")
	if err != nil {
		panic(fmt.Sprintf("patterns: read embedded library: %v", err))
	}
	for _, e := range entries {
		data, err := library.ReadFile("library/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("patterns: read %s: %v", e.Name(), err))
		}
		p, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("patterns: parse %s: %v", e.Name(), err))
		}
		Register(p)
	}
}

// Register adds a pattern to the registry.
// Panics if a pattern with the same ID is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[p.ID]; exists {
		panic(fmt.Sprintf("patterns: pattern %q already registered", p.ID))
	}
	registered[p.ID] = p
}

// List returns all registered patterns, sorted by ID.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(registered))
	for _, p := range registered {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the pattern registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := registered[id]
	if !ok {
		return Pattern{}, fmt.Errorf("patterns: unknown pattern %q", id)
	}
	return p, nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}
