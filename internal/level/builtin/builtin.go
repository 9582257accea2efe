// Package builtin registers the levels that ship with the game: the
// generated random level and the embedded YAML layouts.
package builtin

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"

	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/registry"
)

//go:embed levels/*.yaml
var levelFS embed.FS

// Random level parameters, matching the classic default level.
const (
	RandomCount = 10
	RandomMix   = 0.3
)

// Levels returns the embedded layouts in file order.
func Levels() ([]level.Level, error) {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("builtin: reading embedded levels: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make([]level.Level, 0, len(entries))
	for _, e := range entries {
		data, err := levelFS.ReadFile(path.Join("levels", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("builtin: reading %s: %w", e.Name(), err)
		}
		lvl, err := level.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("builtin: parsing %s: %w", e.Name(), err)
		}
		out = append(out, lvl)
	}
	return out, nil
}

func init() {
	registry.Register(level.RandomID, "Default Level", 0, func(seed int64) level.Level {
		lvl := level.Random(rand.New(rand.NewSource(seed)), RandomCount, level.DefaultMin, level.DefaultMax, RandomMix)
		lvl.Name = "Default Level"
		return lvl
	})

	levels, err := Levels()
	if err != nil {
		panic(err)
	}
	for i, lvl := range levels {
		lvl := lvl
		registry.Register(lvl.ID, lvl.Name, i+1, func(int64) level.Level {
			return lvl.Clone()
		})
	}
}
