package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// RandomID is the level ID of the generated default level.
const RandomID = "random"

// Random generates the default level: count balloons at distinct integer
// coordinates in [min, max]. Each balloon is red unless it is upgraded,
// which happens with probability mix; upgraded balloons are blue or green
// with equal odds.
func Random(rng *rand.Rand, count int, min, max, mix float64) Level {
	lo, hi := int(math.Ceil(min)), int(math.Floor(max))
	span := hi - lo + 1
	if span <= 0 {
		return Level{ID: RandomID, Name: "Random"}
	}
	count = core.Clamp(count, 0, span*span)

	balloons := make([]Balloon, 0, count)
	taken := make(map[[2]int]bool, count)
	for len(balloons) < count {
		x := lo + rng.Intn(span)
		y := lo + rng.Intn(span)
		if taken[[2]int{x, y}] {
			continue
		}
		taken[[2]int{x, y}] = true

		tier := TierRed
		if rng.Float64() < mix {
			if rng.Float64() < 0.5 {
				tier = TierBlue
			} else {
				tier = TierGreen
			}
		}
		balloons = append(balloons, Balloon{X: float64(x), Y: float64(y), Tier: tier})
	}

	return Level{ID: RandomID, Name: "Random", Balloons: balloons}
}
