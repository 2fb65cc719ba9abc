package planner

import (
	"math"
	"strings"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/profile"
)

// ScoreWeights holds the multipliers for the seven scoring factors.
// AllergyPenalty is carried as a negative weight; scoring applies its
// magnitude, so the factor can only subtract.
type ScoreWeights struct {
	AttributeRankings float64
	DietaryMatch      float64
	AllergyPenalty    float64
	MealTiming        float64
	CaloricAlignment  float64
	PersonaBonus      float64
	ProteinAlignment  float64
}

// DefaultScoreWeights returns the production weighting
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		AttributeRankings: 1.0,
		DietaryMatch:      2.0,
		AllergyPenalty:    -10.0,
		MealTiming:        0.5,
		CaloricAlignment:  0.3,
		PersonaBonus:      0.8,
		ProteinAlignment:  1.5,
	}
}

// SlotTargets carries one slot's calorie and protein goals into scoring.
// Zero values disable the corresponding alignment factors.
type SlotTargets struct {
	Calories     int
	ProteinGrams float64
}

// caloricDensityCategory keys the dish ranking table used by the caloric
// alignment factor.
const caloricDensityCategory = "caloric_density"

// dietaryConflicts lists dish tags that clash with a dietary strictness.
// Unlike hardDietConflicts these only reduce the score.
var dietaryConflicts = map[string][]string{
	"vegan":             {"non-vegetarian", "dairy"},
	"vegetarian":        {"non-vegetarian"},
	"diabetic-friendly": {"high-sugar", "sweet"},
	"gluten-free":       {"gluten"},
}

// dayParts are the recognized preferred-meal-time tokens
var dayParts = map[string]struct{}{
	"morning":   {},
	"afternoon": {},
	"evening":   {},
	"night":     {},
	"snacks":    {},
}

// Scorer computes a weighted multi-factor suitability score for a dish
// against a user profile and slot targets. Scoring is deterministic:
// identical inputs always produce identical scores.
type Scorer struct {
	weights ScoreWeights
}

// NewScorer creates a scorer with the given factor weights
func NewScorer(weights ScoreWeights) *Scorer {
	return &Scorer{weights: weights}
}

// Score computes the dish's total suitability score as the weighted sum of
// seven independent factors. The scale is not normalized; it grows with the
// number of matching categories. Ties are broken by the selector, not here.
func (s *Scorer) Score(d dish.Dish, user profile.UserProfile, targets SlotTargets) float64 {
	var total float64

	total += float64(s.attributeScore(d, user)) * s.weights.AttributeRankings

	if targets.Calories > 0 {
		if densityRankings, ok := d.AttributeRankings[caloricDensityCategory]; ok {
			total += float64(densityRankings[string(d.CaloricDensity())]) * s.weights.CaloricAlignment
		}
	}

	if targets.ProteinGrams > 0 {
		total += proteinAlignment(d.ProteinGrams, targets.ProteinGrams) * s.weights.ProteinAlignment
	}

	total += s.dietaryCompatibility(d, user) * s.weights.DietaryMatch
	total += allergyRisk(d, user) * math.Abs(s.weights.AllergyPenalty)
	total += mealTimingScore(d, user) * s.weights.MealTiming
	total += personaBonus(d, user) * s.weights.PersonaBonus

	return total
}

// attributeScore sums the dish's ranking contributions for each of the
// user's normalized preference categories.
func (s *Scorer) attributeScore(d dish.Dish, user profile.UserProfile) int {
	var score int
	for category, value := range user.NormalizedPreferences() {
		score += d.AttributeRankings.Contribution(category, value)
	}
	return score
}

// proteinAlignment bands the dish-to-target protein ratio, checked from
// the tightest band outward. A ratio of exactly 1.4 lands in the 2-point
// band because [0.6,1.4] is tested before [0.4,1.6].
func proteinAlignment(dishProtein int, targetProtein float64) float64 {
	ratio := float64(dishProtein) / targetProtein

	switch {
	case ratio >= 0.8 && ratio <= 1.2:
		return 3
	case ratio >= 0.6 && ratio <= 1.4:
		return 2
	case ratio >= 0.4 && ratio <= 1.6:
		return 1
	default:
		return -1
	}
}

// dietaryCompatibility rewards a verbatim strictness tag match (+3) and
// punishes conflicting tags (-5) from the closed conflict table.
func (s *Scorer) dietaryCompatibility(d dish.Dish, user profile.UserProfile) float64 {
	strictness := user.NormalizedStrictness()
	if strictness == "" {
		return 0
	}

	var score float64
	if d.HasDietTag(strictness) {
		score += 3
	}

	for _, conflict := range dietaryConflicts[strictness] {
		if d.HasDietTag(conflict) {
			score -= 5
			break
		}
	}

	return score
}

// allergyRisk is the negative count of allergen overlaps, 0 when none
func allergyRisk(d dish.Dish, user profile.UserProfile) float64 {
	allergies := user.AllergySet()
	if len(allergies) == 0 {
		return 0
	}

	var conflicts int
	for allergen := range d.AllergenSet() {
		if _, ok := allergies[allergen]; ok {
			conflicts++
		}
	}
	return -float64(conflicts)
}

// mealTimingScore counts dish suitability tags containing one of the
// user's preferred day parts (case-insensitive substring match),
// deduplicated, at half a point per tag.
func mealTimingScore(d dish.Dish, user profile.UserProfile) float64 {
	if len(user.PreferredMealTimes) == 0 || len(d.TimeOfDaySuitability) == 0 {
		return 0
	}

	matched := make(map[string]struct{})
	for _, preferred := range user.PreferredMealTimes {
		token := strings.ToLower(preferred)
		if _, ok := dayParts[token]; !ok {
			continue
		}
		for _, tag := range d.TimeOfDaySuitability {
			if strings.Contains(strings.ToLower(tag), token) {
				matched[tag] = struct{}{}
			}
		}
	}

	return float64(len(matched)) * 0.5
}

// personaBonus is half a point per overlapping persona tag
func personaBonus(d dish.Dish, user profile.UserProfile) float64 {
	personas := user.PersonaSet()
	if len(personas) == 0 || len(d.PersonaTags) == 0 {
		return 0
	}

	var matches int
	seen := make(map[string]struct{}, len(d.PersonaTags))
	for _, tag := range d.PersonaTags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if _, ok := personas[tag]; ok {
			matches++
		}
	}
	return float64(matches) * 0.5
}
