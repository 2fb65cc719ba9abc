package openai

import (
	"fmt"
	"strings"

	"github.com/platewise/v1/internal/ports/outbound"
)

// buildSystemPrompt creates the system prompt for meal descriptions
func buildSystemPrompt() string {
	return strings.Join([]string{
		"You are a friendly nutrition coach writing short meal descriptions.",
		"Write two to three sentences in plain prose. Mention why the dish",
		"suits the person's goal and note its protein contribution.",
		"Do not use markdown, lists, or headings.",
	}, " ")
}

// buildUserPrompt creates the user prompt from the description request
func buildUserPrompt(req outbound.DescriptionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Describe %q as the %s for %s.\n", req.Dish.Name, req.Slot.Label(), displayName(req.User.Name))
	fmt.Fprintf(&b, "Their goal is %s with a %s lifestyle.\n", req.User.NormalizedGoal(), req.User.NormalizedLifestyle())
	fmt.Fprintf(&b, "The dish provides %d kcal and %d g protein against a slot target of %d kcal and %.0f g protein.\n",
		req.Dish.Calories, req.Dish.ProteinGrams, req.TargetCalories, req.TargetProteinGrams)
	fmt.Fprintf(&b, "Their daily protein target is %.0f g.\n", req.DailyProteinGrams)

	if req.Dish.CulturalSignificance != "" {
		fmt.Fprintf(&b, "Background: %s\n", req.Dish.CulturalSignificance)
	}
	if len(req.Dish.HealthBenefits) > 0 {
		fmt.Fprintf(&b, "Health benefits: %s\n", strings.Join(req.Dish.HealthBenefits, ", "))
	}

	return b.String()
}

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "the user"
	}
	return name
}
