// Package registry provides a global registry of entity libraries.
// Libraries register themselves in init() functions, allowing the CLI to
// pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bubble-arena/internal/entity"
)

// LibraryInfo contains metadata about a registered library.
type LibraryInfo struct {
	Name  string
	Title string
}

// Factory creates a library instance with the given tuning.
type Factory func(t entity.Tuning) entity.Library

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a library factory to the registry.
// Panics if a library with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: library %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns all registered libraries, sorted by name.
func List() []LibraryInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LibraryInfo, 0, len(factories))
	for name := range factories {
		result = append(result, LibraryInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a library by name.
func Create(name string, t entity.Tuning) (entity.Library, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown library %q", name)
	}

	return f(t), nil
}

// Exists checks if a library with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
