// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/platewise/v1/internal/domain/dish"
)

// DishToModel converts a domain dish to a GORM model
func DishToModel(d dish.Dish) *DishModel {
	return &DishModel{
		Name:                 d.Name,
		MealType:             string(d.MealType),
		Calories:             d.Calories,
		ProteinGrams:         d.ProteinGrams,
		DietTags:             StringSlice(d.DietTags),
		AllergyRisks:         StringSlice(d.AllergyRisks),
		Region:               d.Region,
		AttributeRankings:    RankingField(d.AttributeRankings),
		TimeOfDaySuitability: StringSlice(d.TimeOfDaySuitability),
		PersonaTags:          StringSlice(d.PersonaTags),
		CulturalSignificance: d.CulturalSignificance,
		HealthBenefits:       StringSlice(d.HealthBenefits),
		ProteinSourceType:    d.ProteinSourceType,
	}
}

// ModelToDish converts a GORM model to a domain dish
func ModelToDish(model *DishModel) dish.Dish {
	return dish.Dish{
		Name:                 model.Name,
		MealType:             dish.MealType(model.MealType),
		Calories:             model.Calories,
		ProteinGrams:         model.ProteinGrams,
		DietTags:             []string(model.DietTags),
		AllergyRisks:         []string(model.AllergyRisks),
		Region:               model.Region,
		AttributeRankings:    dish.RankingTable(model.AttributeRankings),
		TimeOfDaySuitability: []string(model.TimeOfDaySuitability),
		PersonaTags:          []string(model.PersonaTags),
		CulturalSignificance: model.CulturalSignificance,
		HealthBenefits:       []string(model.HealthBenefits),
		ProteinSourceType:    model.ProteinSourceType,
	}
}
