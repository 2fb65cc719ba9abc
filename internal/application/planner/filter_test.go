package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/test/testutils"
)

// FilterTestSuite provides a test suite for constraint filtering
type FilterTestSuite struct {
	suite.Suite
}

// TestAllergyFiltering tests hard exclusion of allergen conflicts
func (suite *FilterTestSuite) TestAllergyFiltering() {
	suite.Run("ConflictingAllergen_ShouldExcludeDish", func() {
		// Arrange
		safe := testutils.NewDishBuilder().WithName("Dal Tadka").Build()
		risky := testutils.NewDishBuilder().WithName("Paneer Bhurji").WithAllergyRisks("dairy").Build()
		user := testutils.NewProfileBuilder().WithAllergies("dairy").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{safe, risky}, user)

		// Assert
		require.Len(suite.T(), survivors, 1)
		assert.Equal(suite.T(), "Dal Tadka", survivors[0].Name)
	})

	suite.Run("AllergenMatch_ShouldIgnoreCase", func() {
		// Arrange
		risky := testutils.NewDishBuilder().WithAllergyRisks("Gluten").Build()
		user := testutils.NewProfileBuilder().WithAllergies("GLUTEN").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{risky}, user)

		// Assert
		assert.Empty(suite.T(), survivors)
	})

	suite.Run("NoAllergies_ShouldKeepEverything", func() {
		// Arrange
		dishes := []dish.Dish{
			testutils.NewDishBuilder().WithAllergyRisks("dairy", "gluten").Build(),
			testutils.NewDishBuilder().WithAllergyRisks("fish").Build(),
		}
		user := testutils.NewProfileBuilder().Build()

		// Act
		survivors := FilterByConstraints(dishes, user)

		// Assert
		assert.Len(suite.T(), survivors, 2)
	})
}

// TestStrictDietFiltering tests the closed table of hard diet conflicts
func (suite *FilterTestSuite) TestStrictDietFiltering() {
	suite.Run("VegetarianUser_ShouldExcludeNonVegetarianDish", func() {
		// Arrange
		meat := testutils.NewDishBuilder().WithName("Tandoori Chicken").WithDietTags("non-vegetarian", "high-protein").Build()
		veg := testutils.NewDishBuilder().WithName("Palak Paneer").WithDietTags("vegetarian").Build()
		user := testutils.NewProfileBuilder().WithStrictness("vegetarian").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{meat, veg}, user)

		// Assert
		require.Len(suite.T(), survivors, 1)
		assert.Equal(suite.T(), "Palak Paneer", survivors[0].Name)
	})

	suite.Run("VeganUser_ShouldExcludeNonVegetarianDish", func() {
		// Arrange
		meat := testutils.NewDishBuilder().WithDietTags("non-vegetarian").Build()
		user := testutils.NewProfileBuilder().WithStrictness("vegan").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{meat}, user)

		// Assert
		assert.Empty(suite.T(), survivors)
	})

	suite.Run("VeganUser_ShouldOnlySoftPenalizeDairy", func() {
		// Dairy-tagged dishes survive filtering; the scorer handles them.
		dairy := testutils.NewDishBuilder().WithDietTags("vegetarian", "dairy").Build()
		user := testutils.NewProfileBuilder().WithStrictness("vegan").Build()

		survivors := FilterByConstraints([]dish.Dish{dairy}, user)

		assert.Len(suite.T(), survivors, 1)
	})

	suite.Run("NoStrictness_ShouldKeepNonVegetarianDish", func() {
		// Arrange
		meat := testutils.NewDishBuilder().WithDietTags("non-vegetarian").Build()
		user := testutils.NewProfileBuilder().WithStrictness("none").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{meat}, user)

		// Assert
		assert.Len(suite.T(), survivors, 1)
	})
}

// TestRegionFiltering tests region matching
func (suite *FilterTestSuite) TestRegionFiltering() {
	suite.Run("RegionMismatch_ShouldExcludeDish", func() {
		// Arrange
		north := testutils.NewDishBuilder().WithName("Rajma Chawal").WithRegion("north indian").Build()
		south := testutils.NewDishBuilder().WithName("Idli with Sambar").WithRegion("south indian").Build()
		user := testutils.NewProfileBuilder().WithRegion("south indian").Build()

		// Act
		survivors := FilterByConstraints([]dish.Dish{north, south}, user)

		// Assert
		require.Len(suite.T(), survivors, 1)
		assert.Equal(suite.T(), "Idli with Sambar", survivors[0].Name)
	})

	suite.Run("EmptyUserRegion_ShouldMatchEverything", func() {
		// Arrange
		dishes := []dish.Dish{
			testutils.NewDishBuilder().WithRegion("north indian").Build(),
			testutils.NewDishBuilder().WithRegion("south indian").Build(),
		}
		user := testutils.NewProfileBuilder().Build()

		// Act
		survivors := FilterByConstraints(dishes, user)

		// Assert
		assert.Len(suite.T(), survivors, 2)
	})
}

// TestFilterBehavior tests ordering and the empty-result contract
func (suite *FilterTestSuite) TestFilterBehavior() {
	suite.Run("SurvivorOrder_ShouldMatchInputOrder", func() {
		// Arrange
		dishes := []dish.Dish{
			testutils.NewDishBuilder().WithName("First").Build(),
			testutils.NewDishBuilder().WithName("Second").WithAllergyRisks("egg").Build(),
			testutils.NewDishBuilder().WithName("Third").Build(),
			testutils.NewDishBuilder().WithName("Fourth").Build(),
		}
		user := testutils.NewProfileBuilder().WithAllergies("egg").Build()

		// Act
		survivors := FilterByConstraints(dishes, user)

		// Assert
		require.Len(suite.T(), survivors, 3)
		assert.Equal(suite.T(), "First", survivors[0].Name)
		assert.Equal(suite.T(), "Third", survivors[1].Name)
		assert.Equal(suite.T(), "Fourth", survivors[2].Name)
	})

	suite.Run("EverythingExcluded_ShouldReturnEmptyNotError", func() {
		// Arrange
		dishes := []dish.Dish{
			testutils.NewDishBuilder().WithAllergyRisks("peanut").Build(),
		}
		user := testutils.NewProfileBuilder().WithAllergies("peanut").Build()

		// Act
		survivors := FilterByConstraints(dishes, user)

		// Assert
		assert.Empty(suite.T(), survivors)
	})

	suite.Run("EmptyInput_ShouldReturnEmpty", func() {
		user := testutils.NewProfileBuilder().Build()
		assert.Empty(suite.T(), FilterByConstraints(nil, user))
	})
}

func TestFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}
