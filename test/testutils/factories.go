// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/profile"
)

// DishBuilder provides a fluent interface for building test dishes
type DishBuilder struct {
	d dish.Dish
}

// NewDishBuilder creates a dish builder with sensible defaults
func NewDishBuilder() *DishBuilder {
	faker := gofakeit.New(0)

	return &DishBuilder{
		d: dish.Dish{
			Name:                 fmt.Sprintf("%s %s", faker.Adjective(), faker.Dinner()),
			MealType:             dish.MealTypeLunch,
			Calories:             450,
			ProteinGrams:         20,
			DietTags:             []string{"vegetarian"},
			AllergyRisks:         []string{},
			Region:               "north indian",
			AttributeRankings:    dish.RankingTable{},
			TimeOfDaySuitability: []string{"afternoon"},
			PersonaTags:          []string{},
			CulturalSignificance: faker.Sentence(8),
			HealthBenefits:       []string{"high fiber"},
			ProteinSourceType:    "plant",
		},
	}
}

// WithName sets the dish name
func (b *DishBuilder) WithName(name string) *DishBuilder {
	b.d.Name = name
	return b
}

// WithMealType sets the meal type
func (b *DishBuilder) WithMealType(mt dish.MealType) *DishBuilder {
	b.d.MealType = mt
	return b
}

// WithCalories sets the calorie count
func (b *DishBuilder) WithCalories(calories int) *DishBuilder {
	b.d.Calories = calories
	return b
}

// WithProtein sets the protein grams
func (b *DishBuilder) WithProtein(grams int) *DishBuilder {
	b.d.ProteinGrams = grams
	return b
}

// WithDietTags sets the diet tags
func (b *DishBuilder) WithDietTags(tags ...string) *DishBuilder {
	b.d.DietTags = tags
	return b
}

// WithAllergyRisks sets the allergy risks
func (b *DishBuilder) WithAllergyRisks(risks ...string) *DishBuilder {
	b.d.AllergyRisks = risks
	return b
}

// WithRegion sets the region
func (b *DishBuilder) WithRegion(region string) *DishBuilder {
	b.d.Region = region
	return b
}

// WithRankings sets the attribute ranking table
func (b *DishBuilder) WithRankings(rankings dish.RankingTable) *DishBuilder {
	b.d.AttributeRankings = rankings
	return b
}

// WithTimeOfDay sets the time of day suitability tags
func (b *DishBuilder) WithTimeOfDay(tags ...string) *DishBuilder {
	b.d.TimeOfDaySuitability = tags
	return b
}

// WithPersonaTags sets the persona tags
func (b *DishBuilder) WithPersonaTags(tags ...string) *DishBuilder {
	b.d.PersonaTags = tags
	return b
}

// Build returns the constructed dish
func (b *DishBuilder) Build() dish.Dish {
	return b.d
}

// ProfileBuilder provides a fluent interface for building test profiles
type ProfileBuilder struct {
	p profile.UserProfile
}

// NewProfileBuilder creates a profile builder with sensible defaults
func NewProfileBuilder() *ProfileBuilder {
	faker := gofakeit.New(0)

	return &ProfileBuilder{
		p: profile.UserProfile{
			Name:              faker.Name(),
			Age:               30,
			Gender:            "male",
			HeightCm:          175,
			WeightKg:          70,
			PrimaryGoal:       "maintenance",
			LifestyleType:     "active",
			DietaryStrictness: "none",
			KnownAllergies:    []string{},
			PersonaTags:       []string{},
		},
	}
}

// WithAge sets the age
func (b *ProfileBuilder) WithAge(age int) *ProfileBuilder {
	b.p.Age = age
	return b
}

// WithGender sets the gender
func (b *ProfileBuilder) WithGender(gender string) *ProfileBuilder {
	b.p.Gender = gender
	return b
}

// WithBody sets height and weight
func (b *ProfileBuilder) WithBody(heightCm int, weightKg float64) *ProfileBuilder {
	b.p.HeightCm = heightCm
	b.p.WeightKg = weightKg
	return b
}

// WithGoal sets the primary goal
func (b *ProfileBuilder) WithGoal(goal string) *ProfileBuilder {
	b.p.PrimaryGoal = goal
	return b
}

// WithLifestyle sets the lifestyle type
func (b *ProfileBuilder) WithLifestyle(lifestyle string) *ProfileBuilder {
	b.p.LifestyleType = lifestyle
	return b
}

// WithStrictness sets the dietary strictness
func (b *ProfileBuilder) WithStrictness(strictness string) *ProfileBuilder {
	b.p.DietaryStrictness = strictness
	return b
}

// WithAllergies sets the known allergies
func (b *ProfileBuilder) WithAllergies(allergies ...string) *ProfileBuilder {
	b.p.KnownAllergies = allergies
	return b
}

// WithRegion sets the region preference
func (b *ProfileBuilder) WithRegion(region string) *ProfileBuilder {
	b.p.Region = region
	return b
}

// WithMealTimes sets the preferred meal times
func (b *ProfileBuilder) WithMealTimes(times ...string) *ProfileBuilder {
	b.p.PreferredMealTimes = times
	return b
}

// WithPreferences sets the flavor, prep skill and affordability fields
func (b *ProfileBuilder) WithPreferences(flavor, prepSkill, affordability string) *ProfileBuilder {
	b.p.FlavorPreference = flavor
	b.p.PrepSkillLevel = prepSkill
	b.p.AffordabilityPreference = affordability
	return b
}

// WithPersonaTags sets the persona tags
func (b *ProfileBuilder) WithPersonaTags(tags ...string) *ProfileBuilder {
	b.p.PersonaTags = tags
	return b
}

// Build returns the constructed profile
func (b *ProfileBuilder) Build() profile.UserProfile {
	return b.p
}
