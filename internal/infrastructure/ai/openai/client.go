// Package openai generates meal descriptions through the OpenAI chat
// completions API. A local Ollama endpoint serves the same API, so the
// base URL decides which backend is used.
package openai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

const availabilityRecheckInterval = time.Minute

// MetricsRecorder records model call outcomes
type MetricsRecorder interface {
	RecordDescriptionRequest(model, status string, duration time.Duration)
}

// Client implements the DescriptionService interface
type Client struct {
	cfg     config.AIConfig
	client  *http.Client
	cache   outbound.CacheRepository
	metrics MetricsRecorder
	logger  *zap.Logger

	mu          sync.Mutex
	available   bool
	lastChecked time.Time
}

// NewClient creates a new description client. The cache may be nil, in
// which case every request hits the model. The metrics recorder may also
// be nil.
func NewClient(cfg config.AIConfig, cache outbound.CacheRepository, metrics MetricsRecorder, logger *zap.Logger) *Client {
	logger.Info("Description client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Bool("enabled", cfg.Enable),
	)

	return &Client{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		cache:   cache,
		metrics: metrics,
		logger:  logger.Named("openai-client"),
	}
}

var _ outbound.DescriptionService = (*Client)(nil)

// OpenAI API structures
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ModelName returns the configured model identifier
func (c *Client) ModelName() string {
	return c.cfg.Model
}

// Available reports whether the model endpoint is reachable. The probe
// result is cached and rechecked at most once per minute, so an outage
// degrades to catalog fallbacks instead of per-request timeouts.
func (c *Client) Available() bool {
	if !c.cfg.Enable {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.lastChecked) < availabilityRecheckInterval {
		return c.available
	}

	c.available = c.probe()
	c.lastChecked = time.Now()
	return c.available
}

func (c *Client) probe() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/models", nil)
	if err != nil {
		return false
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("Model endpoint unreachable", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// GenerateMealDescription produces a short personalized write-up for a
// selected dish. Identical requests are served from cache.
func (c *Client) GenerateMealDescription(ctx context.Context, req outbound.DescriptionRequest) (string, error) {
	key := c.cacheKey(req)
	if c.cache != nil && c.cfg.EnableCache {
		if cached, err := c.cache.Get(ctx, key); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	started := time.Now()
	text, err := c.callChatCompletions(ctx, buildSystemPrompt(), buildUserPrompt(req))
	if c.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		c.metrics.RecordDescriptionRequest(c.cfg.Model, status, time.Since(started))
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if c.cache != nil && c.cfg.EnableCache && text != "" {
		if err := c.cache.Set(ctx, key, []byte(text), c.cfg.CacheTTL); err != nil {
			c.logger.Debug("Failed to cache description", zap.Error(err))
		}
	}

	return text, nil
}

// cacheKey hashes the request inputs that change the output text
func (c *Client) cacheKey(req outbound.DescriptionRequest) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		c.cfg.Model,
		string(req.Slot),
		req.Dish.Name,
		req.User.PrimaryGoal,
		req.User.LifestyleType,
		fmt.Sprintf("%d:%.0f", req.TargetCalories, req.TargetProteinGrams),
	}, "|")))
	return "meal-desc:" + hex.EncodeToString(sum[:16])
}

// callChatCompletions makes the actual API call
func (c *Client) callChatCompletions(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Debug("Chat completion successful",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}
