// Package planner provides the dish selection engine: nutrition target
// computation, constraint filtering, weighted scoring and slot-by-slot
// plan assembly. The engine is computationally pure; it owns no I/O and
// keeps no state between requests.
package planner

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/profile"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// RandFactory produces the random source used for dish selection. Each
// request gets its own source, so concurrent requests never share one.
type RandFactory func() *rand.Rand

// PlanningService implements the meal planning use cases
type PlanningService struct {
	dishes       outbound.DishRepository
	descriptions outbound.DescriptionService
	newRand      RandFactory
	calc         NutritionCalculator
	weights      ScoreWeights
	logger       *zap.Logger
}

// NewPlanningService creates a new planning service. A nil RandFactory
// falls back to clock-seeded sources; tests inject a seeded one for
// reproducible selection.
func NewPlanningService(
	dishes outbound.DishRepository,
	descriptions outbound.DescriptionService,
	newRand RandFactory,
	logger *zap.Logger,
) inbound.PlannerService {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &PlanningService{
		dishes:       dishes,
		descriptions: descriptions,
		newRand:      newRand,
		weights:      DefaultScoreWeights(),
		logger:       logger.Named("planning-service"),
	}
}

// GeneratePlan assembles a full daily meal plan: calorie and protein
// targets, per-slot budgets, then one dish per slot. A slot with no
// surviving candidate is recorded as a placeholder; assembly never aborts
// because of a single slot.
func (s *PlanningService) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*inbound.MealPlanDTO, error) {
	user := cmd.Profile

	bmi := s.calc.BMI(user.WeightKg, user.HeightCm)
	bmr := s.calc.BMR(user.WeightKg, user.HeightCm, user.Age, user.Gender)
	activityFactor := s.calc.ActivityFactor(user.LifestyleType)

	target := cmd.TargetCalories
	if target <= 0 {
		target = s.calc.CaloricTarget(bmr, activityFactor, user.PrimaryGoal)
	}

	proteinTarget := s.calc.DailyProteinTarget(user.WeightKg, user.NormalizedGoal(), user.NormalizedLifestyle())

	cadence := Cadence(cmd.MealCadence)
	if cmd.MealCadence == "" {
		cadence = CadenceThreeMealsTwoSnacks
	}

	budgets, err := SplitCalories(target, cadence)
	if err != nil {
		return nil, errors.NewInvalidInputError(err.Error()).WithCause(err)
	}

	s.logger.Info("Generating meal plan",
		zap.String("goal", user.PrimaryGoal),
		zap.String("cadence", string(cadence)),
		zap.Int("target_calories", target),
		zap.Float64("target_protein", proteinTarget),
	)

	catalog, err := s.dishes.Catalog(ctx)
	if err != nil {
		// A missing catalog degrades every slot to a placeholder
		// instead of failing the request.
		s.logger.Error("Dish catalog unavailable, planning with empty catalog", zap.Error(err))
		catalog = dish.NewCatalog(nil)
	}

	scorer := NewScorer(s.weights)
	selector := NewSelector(s.newRand())

	dailyPlan := plan.NewDailyPlan(proteinTarget)
	for _, slot := range cadence.Slots() {
		result := s.assembleSlot(ctx, catalog, user, slot, budgets[slot], SlotProteinTarget(proteinTarget, slot), scorer, selector)
		dailyPlan.Record(result)
	}

	dto := s.planToDTO(user, dailyPlan, bmi, bmr, activityFactor, target)

	s.logger.Info("Meal plan generated",
		zap.String("plan_id", dailyPlan.ID.String()),
		zap.Int("total_calories", dailyPlan.TotalCalories()),
		zap.Int("total_protein", dailyPlan.TotalProtein()),
	)

	return dto, nil
}

// CatalogStats summarizes the loaded catalog for reporting endpoints
func (s *PlanningService) CatalogStats(ctx context.Context) (*dish.Stats, error) {
	catalog, err := s.dishes.Catalog(ctx)
	if err != nil {
		return nil, errors.NewCatalogUnavailableError(err)
	}
	stats := catalog.Stats()
	return &stats, nil
}

// assembleSlot runs the pipeline for one slot: meal-type prefilter,
// constraint filter, scoring, bounded-random pick, description. Any
// unexpected fault is contained here so the other slots still assemble.
func (s *PlanningService) assembleSlot(
	ctx context.Context,
	catalog *dish.Catalog,
	user profile.UserProfile,
	slot plan.MealSlot,
	targetCalories int,
	targetProtein float64,
	scorer *Scorer,
	selector *Selector,
) (result plan.SlotResult) {
	placeholder := plan.SlotResult{
		Slot:               slot,
		TargetCalories:     targetCalories,
		TargetProteinGrams: targetProtein,
		Description:        fmt.Sprintf("No suitable %s available", slot.Label()),
	}
	result = placeholder

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Slot assembly fault contained",
				zap.String("slot", string(slot)),
				zap.Any("panic", r),
			)
			result = placeholder
		}
	}()

	candidates := catalog.ByMealType(slot.MealType())
	if len(candidates) == 0 {
		return result
	}

	survivors := FilterByConstraints(candidates, user)
	if len(survivors) == 0 {
		s.logger.Warn("No dishes left after constraint filtering",
			zap.String("slot", string(slot)),
		)
		result.Description = fmt.Sprintf("No suitable %s found for your preferences", slot.Label())
		return result
	}

	targets := SlotTargets{Calories: targetCalories, ProteinGrams: targetProtein}
	scored := make([]ScoredDish, 0, len(survivors))
	for _, d := range survivors {
		scored = append(scored, ScoredDish{Dish: d, Score: scorer.Score(d, user, targets)})
	}

	chosen, ok := selector.Pick(scored, DefaultPickPool)
	if !ok {
		return result
	}

	// Record the dish's own declared numbers; the targets are scoring
	// inputs, not output overrides.
	result.Dish = &chosen
	result.Calories = chosen.Calories
	result.ProteinGrams = chosen.ProteinGrams
	result.Description = s.describe(ctx, user, slot, chosen, targetCalories, targetProtein)

	return result
}

// describe asks the text model for a meal write-up and falls back to the
// dish's own catalog text when the model is unavailable or fails. Plan
// results never depend on the model.
func (s *PlanningService) describe(
	ctx context.Context,
	user profile.UserProfile,
	slot plan.MealSlot,
	chosen dish.Dish,
	targetCalories int,
	targetProtein float64,
) string {
	if s.descriptions == nil || !s.descriptions.Available() {
		return fallbackDescription(chosen, slot)
	}

	text, err := s.descriptions.GenerateMealDescription(ctx, outbound.DescriptionRequest{
		User:               user,
		Slot:               slot,
		Dish:               chosen,
		TargetCalories:     targetCalories,
		TargetProteinGrams: targetProtein,
		DailyProteinGrams:  s.calc.DailyProteinTarget(user.WeightKg, user.NormalizedGoal(), user.NormalizedLifestyle()),
	})
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			s.logger.Warn("Meal description generation failed, using fallback",
				zap.String("slot", string(slot)),
				zap.Error(err),
			)
		}
		return fallbackDescription(chosen, slot)
	}

	return strings.TrimSpace(text)
}

func fallbackDescription(d dish.Dish, slot plan.MealSlot) string {
	if d.CulturalSignificance != "" {
		return d.CulturalSignificance
	}
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("Recommended %s", slot.Label())
}

// planToDTO flattens the domain plan into the transport shape
func (s *PlanningService) planToDTO(
	user profile.UserProfile,
	dailyPlan *plan.DailyPlan,
	bmi, bmr, activityFactor float64,
	targetCalories int,
) *inbound.MealPlanDTO {
	slots := make([]inbound.SlotDTO, 0, len(dailyPlan.Slots))
	mealCalories := make(map[string]int, len(dailyPlan.Slots))
	mealProteins := make(map[string]int, len(dailyPlan.Slots))

	for _, r := range dailyPlan.Slots {
		slotDTO := inbound.SlotDTO{
			Slot:               string(r.Slot),
			Fulfilled:          r.Fulfilled(),
			Description:        r.Description,
			Calories:           r.Calories,
			ProteinGrams:       r.ProteinGrams,
			TargetCalories:     r.TargetCalories,
			TargetProteinGrams: r.TargetProteinGrams,
		}
		if r.Dish != nil {
			slotDTO.DishName = r.Dish.Name
		}
		slots = append(slots, slotDTO)
		mealCalories[string(r.Slot)] = r.Calories
		mealProteins[string(r.Slot)] = r.ProteinGrams
	}

	return &inbound.MealPlanDTO{
		PlanID:    dailyPlan.ID,
		CreatedAt: dailyPlan.CreatedAt,
		Calculated: inbound.CalculatedDataDTO{
			BMI:            bmi,
			BMICategory:    string(s.calc.CategorizeBMI(bmi)),
			BMR:            bmr,
			ActivityFactor: activityFactor,
			CaloricIntake:  targetCalories,
		},
		Slots:              slots,
		MealCalories:       mealCalories,
		MealProteins:       mealProteins,
		TotalCalories:      dailyPlan.TotalCalories(),
		TotalProtein:       dailyPlan.TotalProtein(),
		DailyProteinTarget: int(dailyPlan.DailyProteinTarget),
		NutritionalSummary: s.buildSummary(user, dailyPlan),
	}
}
