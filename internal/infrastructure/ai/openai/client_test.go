package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/profile"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/test/testutils"
)

// ClientTestSuite provides a test suite for the description client
type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

// SetupSuite initializes the test suite
func (suite *ClientTestSuite) SetupSuite() {
	suite.ctx = context.Background()
}

func (suite *ClientTestSuite) newConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		Enable:         true,
		BaseURL:        baseURL,
		Model:          "llama3.1:8b",
		MaxTokens:      220,
		Temperature:    0.7,
		RequestTimeout: 5 * time.Second,
	}
}

func (suite *ClientTestSuite) sampleRequest() outbound.DescriptionRequest {
	return outbound.DescriptionRequest{
		User: profile.UserProfile{
			Name:          "Asha",
			PrimaryGoal:   "weight_loss",
			LifestyleType: "active",
		},
		Slot: plan.SlotBreakfast,
		Dish: dish.Dish{
			Name:                 "Masala Oats",
			MealType:             dish.MealTypeBreakfast,
			Calories:             320,
			ProteinGrams:         12,
			CulturalSignificance: "A quick north Indian favorite.",
			HealthBenefits:       []string{"high fiber"},
		},
		TargetCalories:     520,
		TargetProteinGrams: 19.25,
		DailyProteinGrams:  77,
	}
}

// chatServer fakes the chat completions endpoint and counts calls
func (suite *ClientTestSuite) chatServer(reply string, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/models":
			w.WriteHeader(http.StatusOK)
		case "/chat/completions":
			atomic.AddInt32(calls, 1)

			var req ChatCompletionRequest
			require.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(suite.T(), "llama3.1:8b", req.Model)
			require.Len(suite.T(), req.Messages, 2)
			assert.Equal(suite.T(), "system", req.Messages[0].Role)
			assert.Equal(suite.T(), "user", req.Messages[1].Role)

			resp := ChatCompletionResponse{
				Choices: []Choice{{Message: Message{Role: "assistant", Content: reply}}},
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// TestGenerateMealDescription tests the chat completions round trip
func (suite *ClientTestSuite) TestGenerateMealDescription() {
	suite.Run("SuccessfulCall_ShouldReturnTrimmedText", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("  Start your day with warm, spiced oats.  ", &calls)
		defer server.Close()

		client := NewClient(suite.newConfig(server.URL), nil, nil, zap.NewNop())

		// Act
		text, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Start your day with warm, spiced oats.", text)
		assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&calls))
	})

	suite.Run("CachedRequest_ShouldSkipSecondCall", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("Warm oats to fuel your morning.", &calls)
		defer server.Close()

		cfg := suite.newConfig(server.URL)
		cfg.EnableCache = true
		cfg.CacheTTL = time.Hour
		client := NewClient(cfg, testutils.NewInMemoryCache(), nil, zap.NewNop())

		// Act
		first, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())
		require.NoError(suite.T(), err)
		second, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), first, second)
		assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&calls))
	})

	suite.Run("DifferentDish_ShouldMissCache", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("A description.", &calls)
		defer server.Close()

		cfg := suite.newConfig(server.URL)
		cfg.EnableCache = true
		client := NewClient(cfg, testutils.NewInMemoryCache(), nil, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())
		require.NoError(suite.T(), err)

		other := suite.sampleRequest()
		other.Dish.Name = "Moong Dal Chilla"
		_, err = client.GenerateMealDescription(suite.ctx, other)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), int32(2), atomic.LoadInt32(&calls))
	})

	suite.Run("ServerError_ShouldReturnError", func() {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model overloaded", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(suite.newConfig(server.URL), nil, nil, zap.NewNop())

		// Act
		text, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.Error(suite.T(), err)
		assert.Empty(suite.T(), text)
		assert.Contains(suite.T(), err.Error(), "API error 500")
	})

	suite.Run("NoChoices_ShouldReturnError", func() {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(ChatCompletionResponse{})
		}))
		defer server.Close()

		client := NewClient(suite.newConfig(server.URL), nil, nil, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		assert.ErrorContains(suite.T(), err, "no response choices")
	})

	suite.Run("APIKey_ShouldBeSentAsBearer", func() {
		// Arrange
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(ChatCompletionResponse{
				Choices: []Choice{{Message: Message{Content: "ok"}}},
			})
		}))
		defer server.Close()

		cfg := suite.newConfig(server.URL)
		cfg.APIKey = "sk-test"
		client := NewClient(cfg, nil, nil, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Bearer sk-test", gotAuth)
	})
}

// recordedCall captures one metrics observation
type recordedCall struct {
	model  string
	status string
}

// stubMetricsRecorder collects RecordDescriptionRequest observations
type stubMetricsRecorder struct {
	calls []recordedCall
}

func (s *stubMetricsRecorder) RecordDescriptionRequest(model, status string, _ time.Duration) {
	s.calls = append(s.calls, recordedCall{model: model, status: status})
}

// TestMetrics tests that model call outcomes are recorded
func (suite *ClientTestSuite) TestMetrics() {
	suite.Run("SuccessfulCall_ShouldRecordSuccess", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("A warm breakfast bowl.", &calls)
		defer server.Close()

		recorder := &stubMetricsRecorder{}
		client := NewClient(suite.newConfig(server.URL), nil, recorder, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), recorder.calls, 1)
		assert.Equal(suite.T(), "llama3.1:8b", recorder.calls[0].model)
		assert.Equal(suite.T(), "success", recorder.calls[0].status)
	})

	suite.Run("FailedCall_ShouldRecordError", func() {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		recorder := &stubMetricsRecorder{}
		client := NewClient(suite.newConfig(server.URL), nil, recorder, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.Error(suite.T(), err)
		require.Len(suite.T(), recorder.calls, 1)
		assert.Equal(suite.T(), "error", recorder.calls[0].status)
	})

	suite.Run("CacheHit_ShouldNotRecordModelCall", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("A warm breakfast bowl.", &calls)
		defer server.Close()

		cfg := suite.newConfig(server.URL)
		cfg.EnableCache = true
		cfg.CacheTTL = time.Minute
		recorder := &stubMetricsRecorder{}
		client := NewClient(cfg, testutils.NewInMemoryCache(), recorder, zap.NewNop())

		// Act
		_, err := client.GenerateMealDescription(suite.ctx, suite.sampleRequest())
		require.NoError(suite.T(), err)
		_, err = client.GenerateMealDescription(suite.ctx, suite.sampleRequest())

		// Assert
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), recorder.calls, 1)
	})
}

// TestAvailable tests the availability probe and its caching
func (suite *ClientTestSuite) TestAvailable() {
	suite.Run("ReachableEndpoint_ShouldReportAvailable", func() {
		// Arrange
		var calls int32
		server := suite.chatServer("unused", &calls)
		defer server.Close()

		client := NewClient(suite.newConfig(server.URL), nil, nil, zap.NewNop())

		// Assert
		assert.True(suite.T(), client.Available())
	})

	suite.Run("Disabled_ShouldReportUnavailableWithoutProbing", func() {
		// Arrange
		probed := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probed = true
		}))
		defer server.Close()

		cfg := suite.newConfig(server.URL)
		cfg.Enable = false
		client := NewClient(cfg, nil, nil, zap.NewNop())

		// Assert
		assert.False(suite.T(), client.Available())
		assert.False(suite.T(), probed)
	})

	suite.Run("UnreachableEndpoint_ShouldReportUnavailable", func() {
		// Arrange
		client := NewClient(suite.newConfig("http://127.0.0.1:1"), nil, nil, zap.NewNop())

		// Assert
		assert.False(suite.T(), client.Available())
	})

	suite.Run("ProbeResult_ShouldBeCachedBetweenCalls", func() {
		// Arrange
		var probes int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/models" {
				atomic.AddInt32(&probes, 1)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(suite.newConfig(server.URL), nil, nil, zap.NewNop())

		// Act
		client.Available()
		client.Available()
		client.Available()

		// Assert
		assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&probes))
	})
}

// TestModelName tests the model identifier accessor
func (suite *ClientTestSuite) TestModelName() {
	client := NewClient(suite.newConfig("http://localhost:11434/v1"), nil, nil, zap.NewNop())
	assert.Equal(suite.T(), "llama3.1:8b", client.ModelName())
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
