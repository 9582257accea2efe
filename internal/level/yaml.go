package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk structure of a level file.
type yamlLevel struct {
	ID       string        `yaml:"id,omitempty"`
	Name     string        `yaml:"name"`
	Balloons []yamlBalloon `yaml:"balloons"`
}

// yamlBalloon is a single balloon in a level file.
type yamlBalloon struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Tier string  `yaml:"type"`
}

// ParseYAML decodes a level file.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Balloons: make([]Balloon, 0, len(yl.Balloons)),
	}
	for i, b := range yl.Balloons {
		tier, ok := ParseTier(b.Tier)
		if !ok {
			return Level{}, fmt.Errorf("balloon %d: unknown type %q", i, b.Tier)
		}
		lvl.Balloons = append(lvl.Balloons, Balloon{X: b.X, Y: b.Y, Tier: tier})
	}
	return lvl, nil
}

// MarshalYAML encodes a level in the level file format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := yamlLevel{
		ID:       l.ID,
		Name:     l.Name,
		Balloons: make([]yamlBalloon, len(l.Balloons)),
	}
	for i, b := range l.Balloons {
		yl.Balloons[i] = yamlBalloon{X: b.X, Y: b.Y, Tier: b.Tier.String()}
	}
	return yaml.Marshal(yl)
}

// Export writes a level to path as YAML, creating parent directories.
func Export(l Level, path string) error {
	data, err := MarshalYAML(l)
	if err != nil {
		return fmt.Errorf("encoding level %q: %w", l.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing level %s: %w", path, err)
	}
	return nil
}
