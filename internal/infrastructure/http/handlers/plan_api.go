// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/domain/profile"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// PlanHandlers handles meal plan API requests
type PlanHandlers struct {
	plannerService inbound.PlannerService
	metrics        *monitoring.MetricsCollector
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewPlanHandlers creates a new plan handlers instance. The metrics
// collector may be nil.
func NewPlanHandlers(plannerService inbound.PlannerService, metrics *monitoring.MetricsCollector, logger *zap.Logger) *PlanHandlers {
	return &PlanHandlers{
		plannerService: plannerService,
		metrics:        metrics,
		validate:       validator.New(),
		logger:         logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// GeneratePlanRequest is the POST /plans payload. String enums are
// normalized (lowercased, spaces to underscores) before validation, so
// "Weight Loss" and "weight_loss" are both accepted.
type GeneratePlanRequest struct {
	Name     string  `json:"name" validate:"required"`
	Age      int     `json:"age" validate:"required,gte=1,lte=120"`
	Gender   string  `json:"gender" validate:"required,oneof=male female other"`
	HeightCm int     `json:"height_cm" validate:"required,gt=0,lte=272"`
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lte=500"`
	Region   string  `json:"region" validate:"omitempty,oneof=north south"`

	PrimaryGoal       string `json:"primary_goal" validate:"required,oneof=cardiac diabetes maintenance medical_therapy muscle_gain recovery weight_loss"`
	LifestyleType     string `json:"lifestyle_type" validate:"required,oneof=sedentary active athletic elderly"`
	DietaryStrictness string `json:"dietary_strictness" validate:"omitempty,oneof=diabetic-friendly gluten-free non-vegetarian vegan vegetarian"`

	KnownAllergies     []string `json:"known_allergies" validate:"dive,oneof=dairy eggs fish gluten mustard nuts 'tree nuts'"`
	PreferredMealTimes []string `json:"preferred_meal_times" validate:"dive,oneof=afternoon evening morning night snacks"`

	FlavorPreference        string   `json:"flavor_preference" validate:"omitempty,oneof=aromatic creamy earthy mild rich spicy sweet tangy"`
	PrepSkillLevel          string   `json:"prep_skill_level" validate:"omitempty,oneof=beginner expert intermediate"`
	AffordabilityPreference string   `json:"affordability_preference" validate:"omitempty,oneof=affordable expensive moderate"`
	PersonaTags             []string `json:"persona_tags" validate:"dive,oneof=budget-conscious dairy-free elderly-friendly fitness-focused general health-focused muscle-gain quick-meal vegetarian-friendly weight-loss-friendly"`

	MealCadence    string `json:"meal_cadence"`
	TargetCalories int    `json:"target_calories" validate:"gte=0"`
}

// GeneratePlan handles POST /api/v1/plans
func (h *PlanHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewInvalidInputError("request body must be valid JSON"))
		return
	}

	req.normalize()

	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, apperrors.NewValidationError(validationDetails(err)))
		return
	}

	if req.MealCadence != "" && !planner.Cadence(req.MealCadence).IsValid() {
		h.writeError(w, apperrors.NewInvalidInputError("meal_cadence must be either '3 meals' or '3 meals + 2 snacks'"))
		return
	}

	cmd := inbound.GeneratePlanCommand{
		Profile:        req.toProfile(),
		MealCadence:    req.MealCadence,
		TargetCalories: req.TargetCalories,
	}

	started := time.Now()
	mealPlan, err := h.plannerService.GeneratePlan(r.Context(), cmd)
	if err != nil {
		h.logger.Error("Plan generation failed", zap.Error(err))
		h.writeError(w, err)
		return
	}

	if h.metrics != nil {
		cadence := req.MealCadence
		if cadence == "" {
			cadence = string(planner.CadenceThreeMealsTwoSnacks)
		}
		h.metrics.RecordPlanGenerated(req.PrimaryGoal, cadence, time.Since(started))
		for _, slot := range mealPlan.Slots {
			if !slot.Fulfilled {
				h.metrics.RecordSlotUnfulfilled(slot.Slot)
			}
		}
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    mealPlan,
		Message: "Meal plan generated successfully",
	})
}

// CatalogStats handles GET /api/v1/catalog/stats
func (h *PlanHandlers) CatalogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.plannerService.CatalogStats(r.Context())
	if err != nil {
		h.logger.Error("Catalog stats failed", zap.Error(err))
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    stats,
		Message: "Catalog statistics retrieved successfully",
	})
}

// normalize lowers the string enums so validation and the engine see
// one canonical form.
func (r *GeneratePlanRequest) normalize() {
	r.Gender = normalizeEnum(r.Gender)
	r.PrimaryGoal = normalizeEnum(r.PrimaryGoal)
	r.LifestyleType = normalizeEnum(r.LifestyleType)
	r.Region = strings.ToLower(strings.TrimSpace(r.Region))
	r.DietaryStrictness = strings.ToLower(strings.TrimSpace(r.DietaryStrictness))
	r.FlavorPreference = strings.ToLower(strings.TrimSpace(r.FlavorPreference))
	r.PrepSkillLevel = strings.ToLower(strings.TrimSpace(r.PrepSkillLevel))
	r.AffordabilityPreference = strings.ToLower(strings.TrimSpace(r.AffordabilityPreference))
	r.MealCadence = strings.ToLower(strings.TrimSpace(r.MealCadence))
	normalizeList(r.KnownAllergies)
	normalizeList(r.PreferredMealTimes)
	normalizeList(r.PersonaTags)
}

func normalizeEnum(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.ReplaceAll(v, " ", "_")
}

func normalizeList(values []string) {
	for i, v := range values {
		values[i] = strings.ToLower(strings.TrimSpace(v))
	}
}

func (r *GeneratePlanRequest) toProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:                    r.Name,
		Age:                     r.Age,
		Gender:                  r.Gender,
		HeightCm:                r.HeightCm,
		WeightKg:                r.WeightKg,
		Region:                  r.Region,
		PrimaryGoal:             r.PrimaryGoal,
		LifestyleType:           r.LifestyleType,
		DietaryStrictness:       r.DietaryStrictness,
		KnownAllergies:          r.KnownAllergies,
		PreferredMealTimes:      r.PreferredMealTimes,
		FlavorPreference:        r.FlavorPreference,
		PrepSkillLevel:          r.PrepSkillLevel,
		AffordabilityPreference: r.AffordabilityPreference,
		PersonaTags:             r.PersonaTags,
	}
}

func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed on '"+fe.Tag()+"'")
	}
	return strings.Join(parts, "; ")
}

func (h *PlanHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *PlanHandlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.StatusCode()
		message = appErr.Message
		if appErr.Details != "" {
			message = appErr.Message + ": " + appErr.Details
		}
	}

	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}
