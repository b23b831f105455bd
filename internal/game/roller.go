package game

import (
	"math/rand"
	"time"

	"github.com/user/pixel-clicker/internal/types"
)

// Roller resolves the game's random outcomes. The manager holds one
// behind this interface so tests can substitute a deterministic stub.
type Roller interface {
	// Chance runs an independent Bernoulli trial with probability p.
	Chance(p float64) bool

	// Rarity samples the weighted rarity table.
	Rarity() types.Rarity

	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// rarityTable is the ordered tier list with cumulative weights over a
// uniform draw in [0, 100). Selection probabilities: 50/30/15/4/1.
var rarityOrder = []types.Rarity{
	types.RarityCommon,
	types.RarityRare,
	types.RarityEpic,
	types.RarityLegendary,
	types.RarityMythic,
}

var rarityWeights = []float64{50, 30, 15, 4, 1}

// DiceRoller is the production Roller, backed by a seeded source.
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller creates a dice roller seeded from the wall clock.
func NewDiceRoller() *DiceRoller {
	return NewDiceRollerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewDiceRollerWithSource creates a dice roller with a caller-owned
// source, used for reproducible sequences.
func NewDiceRollerWithSource(src rand.Source) *DiceRoller {
	return &DiceRoller{rng: rand.New(src)}
}

// Chance runs an independent Bernoulli trial with probability p.
func (dr *DiceRoller) Chance(p float64) bool {
	return dr.rng.Float64() < p
}

// Rarity draws a uniform value in [0, 100) and walks the ordered
// rarity list; the first tier whose cumulative weight meets the draw
// is selected.
func (dr *DiceRoller) Rarity() types.Rarity {
	draw := dr.rng.Float64() * 100

	cumulative := 0.0
	for i, weight := range rarityWeights {
		cumulative += weight
		if draw <= cumulative {
			return rarityOrder[i]
		}
	}
	return types.RarityCommon
}

// Intn returns a uniform value in [0, n).
func (dr *DiceRoller) Intn(n int) int {
	return dr.rng.Intn(n)
}
