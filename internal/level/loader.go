package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads level files from a directory tree. With a plane set, every
// level must also pass Validate against it.
type Loader struct {
	Root string

	plane    bool
	min, max float64
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// WithPlane makes the loader reject levels that do not fit [min, max].
func (l *Loader) WithPlane(min, max float64) *Loader {
	l.plane, l.min, l.max = true, min, max
	return l
}

// LoadAll recursively scans Root and loads every .yaml/.yml file, sorted by
// name. Files that fail to parse or validate are skipped; the returned error
// then lists them, and the levels that did load are still returned.
func (l *Loader) LoadAll() ([]Level, error) {
	var (
		levels  []Level
		skipped []error
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

		lvl, err := l.LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, errors.Join(skipped...)
}

// LoadFile loads a single level file. A level without a name is named after
// its file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if l.plane {
		if err := lvl.Validate(l.min, l.max); err != nil {
			return Level{}, fmt.Errorf("file %s: %w", path, err)
		}
	}
	return lvl, nil
}

// LoadInto loads every level under Root into lib, replacing same-named
// levels, and returns how many were stored. Skipped files are reported as
// in LoadAll.
func (l *Loader) LoadInto(lib *Library) (int, error) {
	levels, err := l.LoadAll()
	if levels == nil && err != nil {
		return 0, err
	}
	for _, lvl := range levels {
		if serr := lib.Save(lvl, true); serr != nil {
			return 0, serr
		}
	}
	return len(levels), err
}
