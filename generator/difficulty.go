package generator

// Difficulty selects a generation tier.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
)

// ParseDifficulty maps a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case Easy, Medium, Hard, Extreme:
		return Difficulty(s), true
	}
	return "", false
}

// tier bundles the knobs a difficulty controls: the per-island bridge-end
// capacity, the odds that a new bridge is single rather than double, the
// island density target (cells per island) used to derive the minimum island
// count, and whether bridge lengths are biased shorter.
type tier struct {
	maxDegree        int
	singleBridgeOdds float64
	maxIslandDensity float64
	shorterBridges   bool
}

var tiers = map[Difficulty]tier{
	Easy:    {maxDegree: 8, singleBridgeOdds: 0.45, maxIslandDensity: 5.5},
	Medium:  {maxDegree: 7, singleBridgeOdds: 0.5, maxIslandDensity: 4.5},
	Hard:    {maxDegree: 6, singleBridgeOdds: 0.55, maxIslandDensity: 3.5},
	Extreme: {maxDegree: 5, singleBridgeOdds: 0.6, maxIslandDensity: 2.5, shorterBridges: true},
}
