package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ProfileTestSuite provides a test suite for profile normalization
type ProfileTestSuite struct {
	suite.Suite
}

// TestNormalizedPreferences tests mapping onto dish attribute categories
func (suite *ProfileTestSuite) TestNormalizedPreferences() {
	suite.Run("AllFieldsSet_ShouldFillEveryCategory", func() {
		// Arrange
		p := UserProfile{
			PrimaryGoal:             "Weight_Loss",
			LifestyleType:           "Active",
			DietaryStrictness:       "Vegetarian",
			FlavorPreference:        "Spicy",
			PrepSkillLevel:          "Quick And Easy",
			AffordabilityPreference: "Budget Friendly",
		}

		// Act
		prefs := p.NormalizedPreferences()

		// Assert
		assert.Equal(suite.T(), "weight loss", prefs[CategoryHealthSuitability])
		assert.Equal(suite.T(), "active", prefs[CategoryLifestyleSuitability])
		assert.Equal(suite.T(), "vegetarian", prefs[CategoryDietarySuitability])
		assert.Equal(suite.T(), "spicy", prefs[CategoryFlavorProfile])
		assert.Equal(suite.T(), "quick_and_easy", prefs[CategoryPrepComplexity])
		assert.Equal(suite.T(), "budget_friendly", prefs[CategoryIngredientAffordability])
	})

	suite.Run("EmptyFields_ShouldBeOmitted", func() {
		// Arrange
		p := UserProfile{PrimaryGoal: "maintenance"}

		// Act
		prefs := p.NormalizedPreferences()

		// Assert
		assert.Len(suite.T(), prefs, 1)
		assert.Contains(suite.T(), prefs, CategoryHealthSuitability)
	})

	suite.Run("HealthGoalAliases_ShouldMapToDishVocabulary", func() {
		cases := map[string]string{
			"weight_loss":     "weight loss",
			"muscle_gain":     "muscle gain",
			"medical_therapy": "medical recovery",
			"maintenance":     "maintenance",
			"cardiac":         "cardiac",
		}

		for goal, expected := range cases {
			p := UserProfile{PrimaryGoal: goal}
			assert.Equalf(suite.T(), expected, p.NormalizedPreferences()[CategoryHealthSuitability], "goal %s", goal)
		}
	})
}

// TestNormalizedFields tests the scalar normalizers
func (suite *ProfileTestSuite) TestNormalizedFields() {
	suite.Run("NormalizedGoal_ShouldLowercaseAndSpace", func() {
		p := UserProfile{PrimaryGoal: "Muscle_Gain"}
		assert.Equal(suite.T(), "muscle gain", p.NormalizedGoal())
	})

	suite.Run("NormalizedLifestyle_ShouldLowercase", func() {
		p := UserProfile{LifestyleType: "Athletic"}
		assert.Equal(suite.T(), "athletic", p.NormalizedLifestyle())
	})

	suite.Run("NormalizedStrictness_ShouldLowercase", func() {
		p := UserProfile{DietaryStrictness: "Vegan"}
		assert.Equal(suite.T(), "vegan", p.NormalizedStrictness())
	})
}

// TestSets tests the allergy and persona set views
func (suite *ProfileTestSuite) TestSets() {
	suite.Run("AllergySet_ShouldLowercaseTrimAndDropBlanks", func() {
		// Arrange
		p := UserProfile{KnownAllergies: []string{"Dairy", " GLUTEN ", "", "  "}}

		// Act
		set := p.AllergySet()

		// Assert
		assert.Len(suite.T(), set, 2)
		assert.Contains(suite.T(), set, "dairy")
		assert.Contains(suite.T(), set, "gluten")
	})

	suite.Run("PersonaSet_ShouldDropBlanks", func() {
		// Arrange
		p := UserProfile{PersonaTags: []string{"gym-goer", "", "student"}}

		// Act
		set := p.PersonaSet()

		// Assert
		assert.Len(suite.T(), set, 2)
		assert.Contains(suite.T(), set, "gym-goer")
		assert.Contains(suite.T(), set, "student")
	})
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}
