// Package registry provides a global registry of level factories.
// Built-in level packs register themselves in init() functions, allowing the
// platform to list and instantiate levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/balloon-math/internal/level"
)

// Factory builds a fresh level. The seed drives generated levels and is
// ignored by fixed layouts.
type Factory func(seed int64) level.Level

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
	Order int
}

type entry struct {
	info    LevelInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a level factory to the registry.
// Order controls the position in menus; ties are broken by ID.
// Panics if a level with the same ID is already registered.
func Register(id, title string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	entries[id] = entry{
		info:    LevelInfo{ID: id, Title: title, Order: order},
		factory: f,
	}
}

// List returns information about all registered levels in menu order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a level by its ID.
// Returns an error if the ID is not registered.
func Create(id string, seed int64) (level.Level, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return level.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}

	lvl := e.factory(seed)
	if lvl.ID == "" {
		lvl.ID = id
	}
	if lvl.Name == "" {
		lvl.Name = e.info.Title
	}
	return lvl, nil
}

// Title returns the display title of a registered level.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info.Title, ok
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
