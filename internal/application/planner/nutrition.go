package planner

import (
	"math"
	"strings"
)

// BMICategory classifies a body mass index value
type BMICategory string

// BMI categories with WHO thresholds 18.5 / 25 / 30
const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// activityFactors maps lifestyle type to the BMR multiplier
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"active":    1.55,
	"elderly":   1.2,
	"athletic":  1.725,
}

// goalAdjustments scales the activity-adjusted calorie figure per goal
var goalAdjustments = map[string]float64{
	"weight loss": 0.85,
	"muscle gain": 1.15,
	"maintenance": 1.0,
	"recovery":    1.1,
}

// proteinRequirements is grams of protein per kg body weight, keyed by
// normalized goal
var proteinRequirements = map[string]float64{
	"muscle gain":     2.2,
	"weight loss":     1.6,
	"recovery":        1.8,
	"cardiac":         1.2,
	"diabetes":        1.2,
	"maintenance":     1.0,
	"medical therapy": 1.4,
}

// proteinActivityMultipliers adjusts the protein requirement by lifestyle
var proteinActivityMultipliers = map[string]float64{
	"athletic":  1.2,
	"active":    1.1,
	"sedentary": 1.0,
	"elderly":   0.9,
}

// NutritionCalculator derives calorie and protein targets from a user
// profile. It is stateless and safe for concurrent use.
type NutritionCalculator struct{}

// BMI computes body mass index from weight in kg and height in cm.
// Height is assumed positive, validated upstream.
func (NutritionCalculator) BMI(weightKg float64, heightCm int) float64 {
	heightM := float64(heightCm) / 100
	return weightKg / (heightM * heightM)
}

// CategorizeBMI classifies a BMI value
func (NutritionCalculator) CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMR computes the basal metabolic rate using the Mifflin-St Jeor
// equation. Any gender other than male gets the female offset; this is a
// deliberate simplification, not a medical claim.
func (NutritionCalculator) BMR(weightKg float64, heightCm, age int, gender string) float64 {
	base := 10*weightKg + 6.25*float64(heightCm) - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		return base + 5
	}
	return base - 161
}

// ActivityFactor returns the BMR multiplier for a lifestyle type,
// defaulting to sedentary for unknown values.
func (NutritionCalculator) ActivityFactor(lifestyle string) float64 {
	if factor, ok := activityFactors[strings.ToLower(lifestyle)]; ok {
		return factor
	}
	return 1.2
}

// CaloricTarget computes the goal-adjusted daily calorie target
func (NutritionCalculator) CaloricTarget(bmr, activityFactor float64, goal string) int {
	adjustment := 1.0
	if adj, ok := goalAdjustments[normalizeGoal(goal)]; ok {
		adjustment = adj
	}
	return int(math.Round(bmr * activityFactor * adjustment))
}

// DailyProteinTarget computes the daily protein target in grams from body
// weight, normalized goal and lifestyle. Unknown goals and lifestyles fall
// back to multiplier 1.0.
func (NutritionCalculator) DailyProteinTarget(weightKg float64, goal, lifestyle string) float64 {
	requirement := 1.0
	if r, ok := proteinRequirements[normalizeGoal(goal)]; ok {
		requirement = r
	}

	multiplier := 1.0
	if m, ok := proteinActivityMultipliers[strings.ToLower(lifestyle)]; ok {
		multiplier = m
	}

	return weightKg * requirement * multiplier
}

func normalizeGoal(goal string) string {
	return strings.ReplaceAll(strings.ToLower(goal), "_", " ")
}
