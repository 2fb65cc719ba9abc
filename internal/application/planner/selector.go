package planner

import (
	"math/rand"
	"sort"
	"time"

	"github.com/platewise/v1/internal/domain/dish"
)

// ScoredDish is an ephemeral pairing of a dish with its suitability score
type ScoredDish struct {
	Dish  dish.Dish
	Score float64
}

const (
	// DefaultRankedCount is how many top dishes a ranked listing keeps
	DefaultRankedCount = 5
	// DefaultPickPool is how many top dishes a single pick randomizes over.
	// Choosing among near-equally-good dishes gives day-to-day variety
	// without sacrificing quality.
	DefaultPickPool = 3
)

// Selector ranks scored dishes and picks one with bounded randomness.
// The random source is injected so tests can seed it; a Selector is not
// safe for concurrent use because of that source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. A nil source gets seeded from the clock.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Rank returns the top dishes sorted by descending score. The sort is
// stable, so equal scores keep their filter order. The input is not
// modified.
func (s *Selector) Rank(scored []ScoredDish, limit int) []ScoredDish {
	ranked := make([]ScoredDish, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Pick selects one dish uniformly at random from the top pool entries.
// An empty input returns false rather than an error; a fully exhausted
// slot is an expected outcome.
func (s *Selector) Pick(scored []ScoredDish, pool int) (dish.Dish, bool) {
	top := s.Rank(scored, pool)
	if len(top) == 0 {
		return dish.Dish{}, false
	}
	return top[s.rng.Intn(len(top))].Dish, true
}
