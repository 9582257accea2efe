package level

import (
	"strings"
	"sync"
)

// Library holds the custom levels created during a session.
// It is safe for concurrent use.
type Library struct {
	mu     sync.RWMutex
	levels map[string]Level
	order  []string
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		levels: make(map[string]Level),
	}
}

// Save stores a level under its name.
// If a level with the same name exists, Save returns ErrExists unless
// overwrite is set, in which case the level is replaced in place.
func (lib *Library) Save(l Level, overwrite bool) error {
	name := strings.TrimSpace(l.Name)
	if name == "" {
		return ErrEmptyName
	}
	l.Name = name
	l = l.Clone()

	lib.mu.Lock()
	defer lib.mu.Unlock()

	if _, exists := lib.levels[name]; exists {
		if !overwrite {
			return ErrExists
		}
	} else {
		lib.order = append(lib.order, name)
	}
	lib.levels[name] = l
	return nil
}

// Exists reports whether a level with the given name is stored.
func (lib *Library) Exists(name string) bool {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	_, ok := lib.levels[strings.TrimSpace(name)]
	return ok
}

// Get returns a copy of the named level.
func (lib *Library) Get(name string) (Level, error) {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	l, ok := lib.levels[strings.TrimSpace(name)]
	if !ok {
		return Level{}, ErrNotFound
	}
	return l.Clone(), nil
}

// Delete removes a level. Deleting a missing level is a no-op.
func (lib *Library) Delete(name string) {
	name = strings.TrimSpace(name)

	lib.mu.Lock()
	defer lib.mu.Unlock()

	if _, ok := lib.levels[name]; !ok {
		return
	}
	delete(lib.levels, name)
	for i, n := range lib.order {
		if n == name {
			lib.order = append(lib.order[:i], lib.order[i+1:]...)
			break
		}
	}
}

// Names returns level names in the order they were first saved.
func (lib *Library) Names() []string {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	out := make([]string, len(lib.order))
	copy(out, lib.order)
	return out
}

// Len returns the number of stored levels.
func (lib *Library) Len() int {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return len(lib.levels)
}
