package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/profile"
	"github.com/platewise/v1/internal/ports/outbound"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Run("FullRequest_ShouldMentionDishGoalAndTargets", func(t *testing.T) {
		req := outbound.DescriptionRequest{
			User: profile.UserProfile{
				Name:          "Asha",
				PrimaryGoal:   "Weight_Loss",
				LifestyleType: "Active",
			},
			Slot: plan.SlotSnack1,
			Dish: dish.Dish{
				Name:                 "Roasted Chana",
				Calories:             150,
				ProteinGrams:         8,
				CulturalSignificance: "A street-corner staple.",
				HealthBenefits:       []string{"high fiber", "iron rich"},
			},
			TargetCalories:     120,
			TargetProteinGrams: 3.85,
			DailyProteinGrams:  77,
		}

		prompt := buildUserPrompt(req)

		assert.Contains(t, prompt, `"Roasted Chana"`)
		assert.Contains(t, prompt, "snack 1")
		assert.Contains(t, prompt, "Asha")
		assert.Contains(t, prompt, "weight loss")
		assert.Contains(t, prompt, "active lifestyle")
		assert.Contains(t, prompt, "150 kcal and 8 g protein")
		assert.Contains(t, prompt, "120 kcal and 4 g protein")
		assert.Contains(t, prompt, "daily protein target is 77 g")
		assert.Contains(t, prompt, "A street-corner staple.")
		assert.Contains(t, prompt, "high fiber, iron rich")
	})

	t.Run("BlankName_ShouldFallBackToGenericAddress", func(t *testing.T) {
		req := outbound.DescriptionRequest{
			User: profile.UserProfile{Name: "  "},
			Slot: plan.SlotLunch,
			Dish: dish.Dish{Name: "Dal Tadka"},
		}

		prompt := buildUserPrompt(req)

		assert.Contains(t, prompt, "for the user.")
	})
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt()

	assert.Contains(t, prompt, "nutrition coach")
	assert.Contains(t, prompt, "Do not use markdown")
}
