// Package profile contains the user profile domain model and the
// normalization rules that map profile fields onto dish attribute
// vocabularies.
package profile

import "strings"

// Dish attribute categories that user preferences normalize onto.
// Each one keys a table inside a dish's attribute rankings.
const (
	CategoryHealthSuitability       = "health_suitability"
	CategoryLifestyleSuitability    = "lifestyle_suitability"
	CategoryDietarySuitability      = "dietary_suitability"
	CategoryFlavorProfile           = "flavor_profile"
	CategoryPrepComplexity          = "prep_complexity"
	CategoryIngredientAffordability = "ingredient_affordability"
)

// UserProfile describes one user's physiology and preferences for a single
// planning request. It is immutable for the lifetime of the request.
type UserProfile struct {
	Name                    string
	Age                     int
	Gender                  string
	HeightCm                int
	WeightKg                float64
	Region                  string
	PrimaryGoal             string
	LifestyleType           string
	DietaryStrictness       string
	KnownAllergies          []string
	PreferredMealTimes      []string
	FlavorPreference        string
	PrepSkillLevel          string
	AffordabilityPreference string
	PersonaTags             []string
}

// healthGoalAliases maps normalized goal tokens onto the vocabulary used by
// dish health_suitability ranking tables.
var healthGoalAliases = map[string]string{
	"weight_loss":     "weight loss",
	"muscle_gain":     "muscle gain",
	"medical_therapy": "medical recovery",
	"cardiac":         "cardiac",
	"diabetes":        "diabetes",
	"maintenance":     "maintenance",
	"recovery":        "recovery",
}

// NormalizedPreferences maps the user's preference fields onto the dish
// attribute categories. Values are lowercased with spaces collapsed to
// underscores; the health goal additionally goes through its alias table.
// Empty fields are omitted.
func (p UserProfile) NormalizedPreferences() map[string]string {
	prefs := make(map[string]string, 6)

	put := func(category, value string) {
		if value == "" {
			return
		}
		prefs[category] = normalizeValue(value)
	}

	if p.PrimaryGoal != "" {
		prefs[CategoryHealthSuitability] = normalizeHealthGoal(normalizeValue(p.PrimaryGoal))
	}
	put(CategoryLifestyleSuitability, p.LifestyleType)
	put(CategoryDietarySuitability, p.DietaryStrictness)
	put(CategoryFlavorProfile, p.FlavorPreference)
	put(CategoryPrepComplexity, p.PrepSkillLevel)
	put(CategoryIngredientAffordability, p.AffordabilityPreference)

	return prefs
}

// NormalizedGoal returns the primary goal lowercased with underscores
// replaced by spaces, the form used by the protein requirement table.
func (p UserProfile) NormalizedGoal() string {
	goal := strings.ToLower(p.PrimaryGoal)
	return strings.ReplaceAll(goal, "_", " ")
}

// NormalizedLifestyle returns the lifestyle type lowercased
func (p UserProfile) NormalizedLifestyle() string {
	return strings.ToLower(p.LifestyleType)
}

// NormalizedStrictness returns the dietary strictness lowercased
func (p UserProfile) NormalizedStrictness() string {
	return strings.ToLower(p.DietaryStrictness)
}

// AllergySet returns the user's known allergies as a lowercased,
// trimmed set. Blank entries are dropped.
func (p UserProfile) AllergySet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.KnownAllergies))
	for _, allergy := range p.KnownAllergies {
		allergy = strings.ToLower(strings.TrimSpace(allergy))
		if allergy != "" {
			set[allergy] = struct{}{}
		}
	}
	return set
}

// PersonaSet returns the user's persona tags as a set
func (p UserProfile) PersonaSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.PersonaTags))
	for _, tag := range p.PersonaTags {
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

func normalizeValue(value string) string {
	return strings.ReplaceAll(strings.ToLower(value), " ", "_")
}

func normalizeHealthGoal(goal string) string {
	if alias, ok := healthGoalAliases[goal]; ok {
		return alias
	}
	return strings.ReplaceAll(goal, "_", " ")
}
