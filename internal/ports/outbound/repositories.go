// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/profile"
)

// DishRepository supplies the dish catalog. Implementations load the
// catalog once and hand out the same immutable snapshot afterwards; the
// engine never triggers a reload.
type DishRepository interface {
	Catalog(ctx context.Context) (*dish.Catalog, error)
}

// DescriptionRequest carries everything the text model needs to write a
// meal description: the chosen dish plus the numeric targets it was
// chosen against.
type DescriptionRequest struct {
	User               profile.UserProfile
	Slot               plan.MealSlot
	Dish               dish.Dish
	TargetCalories     int
	TargetProteinGrams float64
	DailyProteinGrams  float64
}

// DescriptionService turns a chosen dish into a natural-language meal
// description. It is an enrichment layer: plan results stay valid when
// the model is unavailable or errors out.
type DescriptionService interface {
	GenerateMealDescription(ctx context.Context, req DescriptionRequest) (string, error)
	Available() bool
	ModelName() string
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
