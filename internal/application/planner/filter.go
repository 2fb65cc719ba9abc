package planner

import (
	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/profile"
)

// hardDietConflicts is the closed table of strict-diet exclusions. Only
// these (diet -> forbidden tag) pairs are enforced as hard constraints;
// softer diet mismatches are handled by scoring instead.
var hardDietConflicts = map[string]string{
	"vegan":      "non-vegetarian",
	"vegetarian": "non-vegetarian",
}

// FilterByConstraints removes dishes that hard-violate the user's allergy,
// strict-diet or region constraints. Input order is preserved and an empty
// result is a valid outcome, not an error.
func FilterByConstraints(dishes []dish.Dish, user profile.UserProfile) []dish.Dish {
	allergies := user.AllergySet()

	var survivors []dish.Dish
	for _, d := range dishes {
		if hasAllergyConflict(d, allergies) {
			continue
		}
		if hasHardDietConflict(d, user) {
			continue
		}
		if !d.MatchesRegion(user.Region) {
			continue
		}
		survivors = append(survivors, d)
	}
	return survivors
}

func hasAllergyConflict(d dish.Dish, allergies map[string]struct{}) bool {
	if len(allergies) == 0 {
		return false
	}
	for allergen := range d.AllergenSet() {
		if _, ok := allergies[allergen]; ok {
			return true
		}
	}
	return false
}

func hasHardDietConflict(d dish.Dish, user profile.UserProfile) bool {
	forbidden, ok := hardDietConflicts[user.NormalizedStrictness()]
	if !ok {
		return false
	}
	return d.HasDietTag(forbidden)
}
