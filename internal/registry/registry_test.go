package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-math/internal/level"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("test-fixed", "Fixed", 50, func(int64) level.Level {
		return level.Level{Balloons: []level.Balloon{{X: 1, Y: 2}}}
	})

	if !Exists("test-fixed") {
		t.Fatal("Exists() = false after Register")
	}

	lvl, err := Create("test-fixed", 0)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	// Missing ID and name are filled from the registration
	if lvl.ID != "test-fixed" || lvl.Name != "Fixed" {
		t.Errorf("Create() = %q/%q", lvl.ID, lvl.Name)
	}
	if title, ok := Title("test-fixed"); !ok || title != "Fixed" {
		t.Errorf("Title() = %q, %v", title, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", 0)
	if err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Errorf("Create() error = %v", err)
	}
}

func TestListOrder(t *testing.T) {
	noop := func(int64) level.Level { return level.Level{} }
	Register("test-order-b", "B", -20, noop)
	Register("test-order-a", "A", -20, noop)
	Register("test-order-first", "First", -30, noop)

	list := List()
	if len(list) < 3 {
		t.Fatalf("List() returned %d entries", len(list))
	}
	got := []string{list[0].ID, list[1].ID, list[2].ID}
	want := []string{"test-order-first", "test-order-a", "test-order-b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List() order = %v, expected %v", got, want)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	noop := func(int64) level.Level { return level.Level{} }
	Register("test-dup", "Dup", 0, noop)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", 0, noop)
}
