package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
id: arch
name: Arch
balloons:
  - {x: -4, y: 0, type: red}
  - {x: 0, y: 4, type: blue}
  - {x: 4, y: 0, type: green}
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if l.ID != "arch" || l.Name != "Arch" {
		t.Errorf("header = %q/%q", l.ID, l.Name)
	}
	if len(l.Balloons) != 3 {
		t.Fatalf("got %d balloons", len(l.Balloons))
	}
	if l.Balloons[1] != (Balloon{X: 0, Y: 4, Tier: TierBlue}) {
		t.Errorf("balloon 1 = %+v", l.Balloons[1])
	}
}

func TestParseYAMLUnknownTier(t *testing.T) {
	_, err := ParseYAML([]byte("name: x\nballoons:\n  - {x: 0, y: 0, type: gold}\n"))
	if err == nil || !strings.Contains(err.Error(), "gold") {
		t.Errorf("expected unknown type error, got %v", err)
	}
}

func TestExportThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "mine.yaml")

	orig := Level{Name: "mine", Balloons: []Balloon{{X: 2, Y: -3, Tier: TierGreen}}}
	if err := Export(orig, path); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	loaded, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if loaded.Name != "mine" || len(loaded.Balloons) != 1 || loaded.Balloons[0] != orig.Balloons[0] {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("zeta.yaml", "name: Zeta\nballoons:\n  - {x: 1, y: 1, type: red}\n")
	write("alpha.yml", "balloons:\n  - {x: 2, y: 2, type: blue}\n")
	write("broken.yaml", "name: [oops\n")
	write("notes.txt", "not a level")

	levels, err := NewLoader(dir).LoadAll()
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("LoadAll() should report the broken file, got %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, expected 2 (broken and non-yaml skipped)", len(levels))
	}
	// Unnamed file takes its base name, and results are sorted
	if levels[0].Name != "Zeta" || levels[1].Name != "alpha" {
		t.Errorf("names = %q, %q", levels[0].Name, levels[1].Name)
	}

	lib := NewLibrary()
	n, err := NewLoader(dir).LoadInto(lib)
	if err == nil || n != 2 || !lib.Exists("alpha") {
		t.Errorf("LoadInto() = %d, %v", n, err)
	}
}

func TestLoaderRejectsLevelsOffThePlane(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"empty.yaml": "name: Empty\nballoons: []\n",
		"far.yaml":   "name: Far\nballoons:\n  - {x: 50, y: 50, type: red}\n",
		"twins.yaml": "name: Twins\nballoons:\n  - {x: 1, y: 1, type: red}\n  - {x: 1, y: 1, type: blue}\n",
		"good.yaml":  "name: Good\nballoons:\n  - {x: 3, y: -3, type: green}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lib := NewLibrary()
	n, err := NewLoader(dir).WithPlane(-10, 10).LoadInto(lib)
	if n != 1 || lib.Len() != 1 || !lib.Exists("Good") {
		t.Fatalf("LoadInto() stored %d levels %v, expected only Good", n, lib.Names())
	}
	for _, name := range []string{"empty.yaml", "far.yaml", "twins.yaml"} {
		if err == nil || !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s, got %v", name, err)
		}
	}

	// Without a plane only parsing is checked
	levels, err := NewLoader(dir).LoadAll()
	if err != nil || len(levels) != 4 {
		t.Errorf("unbounded LoadAll() = %d levels, %v", len(levels), err)
	}
}

func TestLoaderMissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
