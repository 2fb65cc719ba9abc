package planner

import (
	"math"

	"github.com/platewise/v1/internal/domain/plan"
)

// Cadence enumerates the supported meal frequencies
type Cadence string

// Recognized cadence values
const (
	CadenceThreeMeals          Cadence = "3 meals"
	CadenceThreeMealsTwoSnacks Cadence = "3 meals + 2 snacks"
)

// Fixed calorie shares for the three main meals. The remainder funds the
// snacks when the cadence includes them.
const (
	breakfastShare = 0.275
	lunchShare     = 0.325
	dinnerShare    = 0.275
)

// proteinShares distributes the daily protein target per slot meal type:
// 25/35/30% for the main meals and 5% per snack.
var proteinShares = map[plan.MealSlot]float64{
	plan.SlotBreakfast: 0.25,
	plan.SlotLunch:     0.35,
	plan.SlotDinner:    0.30,
	plan.SlotSnack1:    0.05,
	plan.SlotSnack2:    0.05,
}

// Slots returns the plan slots for the cadence, in serving order
func (c Cadence) Slots() []plan.MealSlot {
	slots := []plan.MealSlot{plan.SlotBreakfast, plan.SlotLunch, plan.SlotDinner}
	if c == CadenceThreeMealsTwoSnacks {
		slots = append(slots, plan.SlotSnack1, plan.SlotSnack2)
	}
	return slots
}

// IsValid reports whether the cadence is one of the recognized values
func (c Cadence) IsValid() bool {
	return c == CadenceThreeMeals || c == CadenceThreeMealsTwoSnacks
}

// SplitCalories splits a daily calorie total across the cadence's slots.
// Main meals get 27.5/32.5/27.5% each rounded to the nearest 10 kcal; the
// two snacks split the residual evenly, again rounded to the nearest 10.
// Because of rounding the slot sum may differ from the input total by up
// to 20 kcal; that slack is accepted behavior.
func SplitCalories(total int, cadence Cadence) (map[plan.MealSlot]int, error) {
	if total <= 0 {
		return nil, ErrNonPositiveCalories
	}
	if !cadence.IsValid() {
		return nil, ErrUnknownCadence
	}

	budgets := map[plan.MealSlot]int{
		plan.SlotBreakfast: roundToTen(float64(total) * breakfastShare),
		plan.SlotLunch:     roundToTen(float64(total) * lunchShare),
		plan.SlotDinner:    roundToTen(float64(total) * dinnerShare),
	}

	if cadence == CadenceThreeMealsTwoSnacks {
		residual := total - budgets[plan.SlotBreakfast] - budgets[plan.SlotLunch] - budgets[plan.SlotDinner]
		snack := roundToTen(float64(residual) / 2)
		budgets[plan.SlotSnack1] = snack
		budgets[plan.SlotSnack2] = snack
	}

	return budgets, nil
}

// SlotProteinTarget returns the slot's share of the daily protein target
func SlotProteinTarget(dailyProtein float64, slot plan.MealSlot) float64 {
	share, ok := proteinShares[slot]
	if !ok {
		share = 0.25
	}
	return dailyProtein * share
}

func roundToTen(v float64) int {
	return int(math.Round(v/10)) * 10
}
