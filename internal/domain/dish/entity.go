// Package dish contains the core domain model for the dish catalog.
// Dishes are read-only catalog records: loaded once, never mutated.
package dish

import "strings"

// MealType categorizes a dish by the meal occasion it is served at
type MealType string

// Supported meal types
const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid reports whether the meal type is one of the supported values
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// CaloricDensity buckets a dish by its calorie count
type CaloricDensity string

// Caloric density buckets
const (
	DensityLow      CaloricDensity = "low"
	DensityModerate CaloricDensity = "moderate"
	DensityHigh     CaloricDensity = "high"
)

// RankingTable maps a preference category to per-value integer score
// contributions, e.g. "flavor_profile" -> {"spicy": 3, "mild": 1}.
// Missing categories and values contribute 0.
type RankingTable map[string]map[string]int

// Contribution returns the score contribution for a category/value pair
func (t RankingTable) Contribution(category, value string) int {
	values, ok := t[category]
	if !ok {
		return 0
	}
	return values[value]
}

// Dish represents a single catalog record
type Dish struct {
	Name                 string       `json:"name"`
	MealType             MealType     `json:"meal_type"`
	Calories             int          `json:"calories"`
	ProteinGrams         int          `json:"protein_grams"`
	DietTags             []string     `json:"diet_tags"`
	AllergyRisks         []string     `json:"allergy_risks"`
	Region               string       `json:"region"`
	AttributeRankings    RankingTable `json:"attribute_rankings"`
	TimeOfDaySuitability []string     `json:"time_of_day_suitability"`
	PersonaTags          []string     `json:"persona_tags"`
	CulturalSignificance string       `json:"cultural_significance"`
	HealthBenefits       []string     `json:"health_benefits"`
	ProteinSourceType    string       `json:"protein_source_type"`
}

// Validate checks that the record is usable by the planning engine
func (d Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if !d.MealType.IsValid() {
		return ErrInvalidMealType
	}
	if d.Calories < 0 {
		return ErrNegativeCalories
	}
	if d.ProteinGrams < 0 {
		return ErrNegativeProtein
	}
	return nil
}

// CaloricDensity buckets the dish: <200 low, 200-500 moderate, >500 high
func (d Dish) CaloricDensity() CaloricDensity {
	switch {
	case d.Calories < 200:
		return DensityLow
	case d.Calories > 500:
		return DensityHigh
	default:
		return DensityModerate
	}
}

// AllergenSet returns the dish's allergens, lowercased
func (d Dish) AllergenSet() map[string]struct{} {
	return lowerSet(d.AllergyRisks)
}

// HasDietTag reports whether the dish carries a diet tag (case-insensitive)
func (d Dish) HasDietTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range d.DietTags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// MatchesRegion reports whether the dish belongs to a region
// (case-insensitive). An empty region argument matches everything.
func (d Dish) MatchesRegion(region string) bool {
	if region == "" {
		return true
	}
	return strings.EqualFold(d.Region, region)
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
