package apiserver

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/test/testutils"
)

// APIServerTestSuite provides a test suite for server routing and wiring
type APIServerTestSuite struct {
	suite.Suite
	router http.Handler
}

// SetupSuite wires a full server over a fixed catalog
func (suite *APIServerTestSuite) SetupSuite() {
	dishes := []dish.Dish{
		testutils.NewDishBuilder().WithName("Masala Oats").WithMealType(dish.MealTypeBreakfast).WithCalories(320).WithProtein(12).Build(),
		testutils.NewDishBuilder().WithName("Rajma Chawal").WithMealType(dish.MealTypeLunch).WithCalories(480).WithProtein(18).Build(),
		testutils.NewDishBuilder().WithName("Dal Tadka").WithMealType(dish.MealTypeDinner).WithCalories(420).WithProtein(16).Build(),
		testutils.NewDishBuilder().WithName("Roasted Chana").WithMealType(dish.MealTypeSnack).WithCalories(150).WithProtein(8).Build(),
	}

	service := planner.NewPlanningService(
		testutils.NewStubDishRepository(dishes...),
		nil,
		func() *rand.Rand { return rand.New(rand.NewSource(1)) },
		zap.NewNop(),
	)

	cfg := &config.Config{
		App:    config.AppConfig{Name: "Platewise", Version: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, EnableCORS: true},
		Monitoring: config.MonitoringConfig{
			EnableMetrics:   true,
			MetricsPath:     "/metrics",
			HealthCheckPath: "/health",
		},
	}

	server := NewAPIServer(cfg, zap.NewNop(), service, nil, monitoring.NewMetricsCollector(zap.NewNop()), nil)
	suite.router = server.Router()
}

func (suite *APIServerTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// TestRoutes tests that every public endpoint is routed
func (suite *APIServerTestSuite) TestRoutes() {
	suite.Run("Health_ShouldAnswer", func() {
		// Act
		rec := suite.do(http.MethodGet, "/health", nil)

		// Assert
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"status":"healthy"`)
		assert.Contains(suite.T(), rec.Body.String(), "Platewise")
	})

	suite.Run("Metrics_ShouldAnswer", func() {
		rec := suite.do(http.MethodGet, "/metrics", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})

	suite.Run("GeneratePlan_ShouldAnswer", func() {
		// Arrange
		payload, err := json.Marshal(map[string]interface{}{
			"name":           "Asha",
			"age":            32,
			"gender":         "female",
			"height_cm":      162,
			"weight_kg":      58.5,
			"primary_goal":   "weight_loss",
			"lifestyle_type": "active",
		})
		require.NoError(suite.T(), err)

		// Act
		rec := suite.do(http.MethodPost, "/api/v1/plans", payload)

		// Assert
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"success":true`)
		assert.Contains(suite.T(), rec.Body.String(), "meal_plan")
	})

	suite.Run("CatalogStats_ShouldAnswer", func() {
		rec := suite.do(http.MethodGet, "/api/v1/catalog/stats", nil)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "total_dishes")
	})

	suite.Run("AIStatus_ShouldReportUnconfiguredModel", func() {
		rec := suite.do(http.MethodGet, "/api/v1/ai/status", nil)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"available":false`)
	})

	suite.Run("UnknownRoute_ShouldReturn404", func() {
		rec := suite.do(http.MethodGet, "/api/v1/recipes", nil)
		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	})
}

// TestMiddlewareStack tests that the shared middleware is active
func (suite *APIServerTestSuite) TestMiddlewareStack() {
	suite.Run("SecurityHeaders_ShouldBePresent", func() {
		rec := suite.do(http.MethodGet, "/health", nil)
		assert.Equal(suite.T(), "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	suite.Run("CORSHeaders_ShouldBePresent", func() {
		rec := suite.do(http.MethodGet, "/health", nil)
		assert.Equal(suite.T(), "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	suite.Run("NonJSONPost_ShouldBeRejected", func() {
		// Arrange
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", bytes.NewReader([]byte("name=x")))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()

		// Act
		suite.router.ServeHTTP(rec, req)

		// Assert
		assert.Equal(suite.T(), http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestAPIServerTestSuite(t *testing.T) {
	suite.Run(t, new(APIServerTestSuite))
}
