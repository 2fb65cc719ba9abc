// Package plan contains the daily meal plan domain model. A plan is
// constructed fresh per request, returned, and discarded - there is no
// server-side retention.
package plan

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/dish"
)

// MealSlot is a named meal occasion with its own calorie and protein target
type MealSlot string

// The meal slots of a daily plan
const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack1    MealSlot = "snack_1"
	SlotSnack2    MealSlot = "snack_2"
)

// MealType maps the slot onto the dish meal type used for catalog
// filtering. Every snack slot maps to the snack meal type.
func (s MealSlot) MealType() dish.MealType {
	if strings.HasPrefix(string(s), "snack") {
		return dish.MealTypeSnack
	}
	return dish.MealType(s)
}

// Label returns a human-readable slot name, e.g. "snack 1"
func (s MealSlot) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// SlotResult records the outcome for one slot. Dish is nil when no
// candidate survived filtering and scoring; Description then carries a
// placeholder explanation instead of a dish write-up.
type SlotResult struct {
	Slot               MealSlot
	Dish               *dish.Dish
	Description        string
	Calories           int
	ProteinGrams       int
	TargetCalories     int
	TargetProteinGrams float64
}

// Fulfilled reports whether a dish was selected for the slot
func (r SlotResult) Fulfilled() bool {
	return r.Dish != nil
}

// DailyPlan is the engine's output: one result per slot, in cadence order
type DailyPlan struct {
	ID                 uuid.UUID
	CreatedAt          time.Time
	Slots              []SlotResult
	DailyProteinTarget float64
}

// NewDailyPlan creates an empty plan shell
func NewDailyPlan(proteinTarget float64) *DailyPlan {
	return &DailyPlan{
		ID:                 uuid.New(),
		CreatedAt:          time.Now(),
		DailyProteinTarget: proteinTarget,
	}
}

// Record appends a slot outcome
func (p *DailyPlan) Record(result SlotResult) {
	p.Slots = append(p.Slots, result)
}

// Slot returns the result for one slot
func (p *DailyPlan) Slot(slot MealSlot) (SlotResult, bool) {
	for _, r := range p.Slots {
		if r.Slot == slot {
			return r, true
		}
	}
	return SlotResult{}, false
}

// TotalCalories sums the actual calories recorded across slots
func (p *DailyPlan) TotalCalories() int {
	var total int
	for _, r := range p.Slots {
		total += r.Calories
	}
	return total
}

// TotalProtein sums the actual protein grams recorded across slots
func (p *DailyPlan) TotalProtein() int {
	var total int
	for _, r := range p.Slots {
		total += r.ProteinGrams
	}
	return total
}

// ProteinAdequacy reports achieved protein as a percentage of the daily
// target, or 0 when no target is set.
func (p *DailyPlan) ProteinAdequacy() float64 {
	if p.DailyProteinTarget <= 0 {
		return 0
	}
	return float64(p.TotalProtein()) / p.DailyProteinTarget * 100
}
