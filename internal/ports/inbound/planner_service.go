// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/profile"
)

// PlannerService defines the meal planning use cases.
// This is the primary port that HTTP handlers and other driving adapters use.
type PlannerService interface {
	// GeneratePlan assembles a full daily meal plan for a validated profile
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*MealPlanDTO, error)

	// CatalogStats summarizes the loaded dish catalog
	CatalogStats(ctx context.Context) (*dish.Stats, error)
}

// GeneratePlanCommand contains the inputs for one planning request
type GeneratePlanCommand struct {
	Profile     profile.UserProfile
	MealCadence string
	// TargetCalories overrides the computed daily target when positive.
	TargetCalories int
}

// CalculatedDataDTO carries the derived physiological numbers
type CalculatedDataDTO struct {
	BMI            float64 `json:"bmi"`
	BMICategory    string  `json:"bmi_category"`
	BMR            float64 `json:"bmr"`
	ActivityFactor float64 `json:"activity_factor"`
	CaloricIntake  int     `json:"caloric_intake"`
}

// SlotDTO is the outcome for one meal slot. Fulfilled is false when no
// dish survived filtering and scoring; DishName is then empty and
// Description carries a placeholder.
type SlotDTO struct {
	Slot               string  `json:"slot"`
	Fulfilled          bool    `json:"fulfilled"`
	DishName           string  `json:"dish_name,omitempty"`
	Description        string  `json:"description"`
	Calories           int     `json:"calories"`
	ProteinGrams       int     `json:"protein_grams"`
	TargetCalories     int     `json:"target_calories"`
	TargetProteinGrams float64 `json:"target_protein_grams"`
}

// MealPlanDTO is the full planning response
type MealPlanDTO struct {
	PlanID             uuid.UUID         `json:"plan_id"`
	CreatedAt          time.Time         `json:"created_at"`
	Calculated         CalculatedDataDTO `json:"calculated_data"`
	Slots              []SlotDTO         `json:"meal_plan"`
	MealCalories       map[string]int    `json:"meal_calories"`
	MealProteins       map[string]int    `json:"meal_proteins"`
	TotalCalories      int               `json:"total_calories"`
	TotalProtein       int               `json:"total_protein"`
	DailyProteinTarget int               `json:"daily_protein_target"`
	NutritionalSummary map[string]string `json:"nutritional_summary"`
}
