package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// AIHandlers reports on the meal description model
type AIHandlers struct {
	descriptions outbound.DescriptionService
	logger       *zap.Logger
}

// NewAIHandlers creates a new AI handlers instance
func NewAIHandlers(descriptions outbound.DescriptionService, logger *zap.Logger) *AIHandlers {
	return &AIHandlers{
		descriptions: descriptions,
		logger:       logger,
	}
}

// Status handles GET /api/v1/ai/status
func (h *AIHandlers) Status(w http.ResponseWriter, r *http.Request) {
	available := h.descriptions != nil && h.descriptions.Available()

	data := map[string]interface{}{
		"available":  available,
		"checked_at": time.Now().Unix(),
	}
	if h.descriptions != nil {
		data["model"] = h.descriptions.ModelName()
	}

	message := "Description model is available"
	if !available {
		message = "Description model is unavailable, plans use catalog descriptions"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
