// Package level defines balloon layouts: tiers, balloons and levels, plus
// the in-memory library that holds levels built during a session.
package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// Plane bounds used when a level does not say otherwise.
const (
	DefaultMin = -10.0
	DefaultMax = 10.0
)

var (
	// ErrEmptyName is returned when saving a level without a name.
	ErrEmptyName = errors.New("level: name is empty")

	// ErrExists is returned when saving over an existing level without overwrite.
	ErrExists = errors.New("level: a level with this name already exists")

	// ErrNotFound is returned when a named level is not in the library.
	ErrNotFound = errors.New("level: not found")
)

// Tier is the color class of a balloon. Higher tiers take more hits.
type Tier int

const (
	TierRed Tier = iota
	TierGreen
	TierBlue
)

// Tiers lists all tiers from weakest to strongest.
var Tiers = []Tier{TierRed, TierGreen, TierBlue}

// String returns the tier's name as used in level files.
func (t Tier) String() string {
	switch t {
	case TierRed:
		return "red"
	case TierGreen:
		return "green"
	case TierBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Color returns the screen color for the tier.
func (t Tier) Color() core.Color {
	switch t {
	case TierGreen:
		return core.ColorBrightGreen
	case TierBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightRed
	}
}

// Downgrade returns the tier after one hit.
// popped is true when a red balloon is hit and should be removed.
func (t Tier) Downgrade() (next Tier, popped bool) {
	switch t {
	case TierBlue:
		return TierGreen, false
	case TierGreen:
		return TierRed, false
	default:
		return TierRed, true
	}
}

// Next cycles through tiers, used by the level creator's tier selector.
func (t Tier) Next() Tier {
	return Tier((int(t) + 1) % len(Tiers))
}

// ParseTier converts a tier name to a Tier.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return TierRed, true
	case "green", "g":
		return TierGreen, true
	case "blue", "b":
		return TierBlue, true
	default:
		return TierRed, false
	}
}

// Balloon is a target on the plane, positioned in math coordinates.
type Balloon struct {
	X, Y float64
	Tier Tier
}

// Pos returns the balloon's position.
func (b Balloon) Pos() core.Vec {
	return core.V(b.X, b.Y)
}

// Level is a named, ordered set of balloons.
type Level struct {
	ID       string
	Name     string
	Balloons []Balloon
}

// Clone returns a deep copy so gameplay can mutate balloons freely.
func (l Level) Clone() Level {
	out := l
	out.Balloons = make([]Balloon, len(l.Balloons))
	copy(out.Balloons, l.Balloons)
	return out
}

// Key returns the identifier used for scores: the ID if set, the name otherwise.
func (l Level) Key() string {
	if l.ID != "" {
		return l.ID
	}
	return "custom:" + l.Name
}

// BalloonAt returns the index of the balloon at exactly (x, y), or -1.
func (l Level) BalloonAt(x, y float64) int {
	for i, b := range l.Balloons {
		if b.X == x && b.Y == y {
			return i
		}
	}
	return -1
}

// Validate checks that the level is playable on a plane spanning [min, max].
func (l Level) Validate(min, max float64) error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if len(l.Balloons) == 0 {
		return fmt.Errorf("level %q: no balloons", l.Name)
	}

	seen := make(map[core.Vec]bool, len(l.Balloons))
	for i, b := range l.Balloons {
		if b.X < min || b.X > max || b.Y < min || b.Y > max {
			return fmt.Errorf("level %q: balloon %d at (%g, %g) is outside [%g, %g]", l.Name, i, b.X, b.Y, min, max)
		}
		if b.Tier < TierRed || b.Tier > TierBlue {
			return fmt.Errorf("level %q: balloon %d has unknown tier %d", l.Name, i, b.Tier)
		}
		p := b.Pos()
		if seen[p] {
			return fmt.Errorf("level %q: two balloons at (%g, %g)", l.Name, b.X, b.Y)
		}
		seen[p] = true
	}
	return nil
}
