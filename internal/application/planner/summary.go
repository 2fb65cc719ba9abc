package planner

import (
	"fmt"
	"strings"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/profile"
)

// goalRecommendations keys are normalized health goals (lowercase,
// underscores replaced with spaces).
var goalRecommendations = map[string]string{
	"weight loss":      "Calorie-controlled plan with an emphasis on satiety and lean protein.",
	"muscle gain":      "Calorie surplus plan prioritizing protein density across every meal.",
	"maintenance":      "Balanced plan holding your current intake steady.",
	"medical recovery": "Gentle, nutrient-dense plan supporting recovery.",
}

// buildSummary produces the human-readable roll-up attached to every plan
func (s *PlanningService) buildSummary(user profile.UserProfile, dailyPlan *plan.DailyPlan) map[string]string {
	summary := map[string]string{
		"total_daily_calories": fmt.Sprintf("%d kcal", dailyPlan.TotalCalories()),
		"daily_protein_target": fmt.Sprintf("%.0f g", dailyPlan.DailyProteinTarget),
		"total_protein":        fmt.Sprintf("%d g", dailyPlan.TotalProtein()),
		"protein_adequacy":     fmt.Sprintf("%.0f%%", dailyPlan.ProteinAdequacy()),
		"meal_distribution":    mealDistribution(dailyPlan),
	}

	if rec, ok := goalRecommendations[user.NormalizedGoal()]; ok {
		summary["primary_focus"] = rec
	}
	if notes := dietaryNotes(user); notes != "" {
		summary["dietary_notes"] = notes
	}

	return summary
}

// mealDistribution reports the calories actually recorded for the three
// main meals, in plan order.
func mealDistribution(dailyPlan *plan.DailyPlan) string {
	parts := make([]string, 0, 3)
	for _, slot := range []plan.MealSlot{plan.SlotBreakfast, plan.SlotLunch, plan.SlotDinner} {
		if r, ok := dailyPlan.Slot(slot); ok {
			parts = append(parts, fmt.Sprintf("%s %d kcal", slot.Label(), r.Calories))
		}
	}
	return strings.Join(parts, ", ")
}

func dietaryNotes(user profile.UserProfile) string {
	notes := make([]string, 0, 2)
	if strictness := user.NormalizedStrictness(); strictness != "" && strictness != "none" {
		notes = append(notes, fmt.Sprintf("Plan respects a %s dietary pattern.", strictness))
	}
	if len(user.KnownAllergies) > 0 {
		notes = append(notes, fmt.Sprintf("Dishes containing %s were excluded.", strings.Join(user.KnownAllergies, ", ")))
	}
	return strings.Join(notes, " ")
}
