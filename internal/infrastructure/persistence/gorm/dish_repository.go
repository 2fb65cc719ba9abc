package gorm

import (
	"context"
	"fmt"
	"sync"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DishRepository serves the dish catalog from the database. The catalog
// is read-mostly, so the first load is cached as an immutable snapshot.
type DishRepository struct {
	db     *gorm.DB
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *dish.Catalog
}

// NewDishRepository creates a new database-backed dish repository
func NewDishRepository(db *gorm.DB, logger *zap.Logger) *DishRepository {
	return &DishRepository{
		db:     db,
		logger: logger.Named("dish-repository"),
	}
}

var _ outbound.DishRepository = (*DishRepository)(nil)

// Catalog returns the catalog snapshot, loading it on first use
func (r *DishRepository) Catalog(ctx context.Context) (*dish.Catalog, error) {
	r.mu.RLock()
	if r.snapshot != nil {
		defer r.mu.RUnlock()
		return r.snapshot, nil
	}
	r.mu.RUnlock()

	return r.Reload(ctx)
}

// Reload re-reads the catalog from the database and replaces the snapshot
func (r *DishRepository) Reload(ctx context.Context) (*dish.Catalog, error) {
	var models []DishModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load dish catalog: %w", err)
	}

	dishes := make([]dish.Dish, 0, len(models))
	for i := range models {
		d := ModelToDish(&models[i])
		if err := d.Validate(); err != nil {
			r.logger.Warn("Skipping invalid dish row",
				zap.String("dish", d.Name),
				zap.Error(err),
			)
			continue
		}
		dishes = append(dishes, d)
	}

	catalog := dish.NewCatalog(dishes)

	r.mu.Lock()
	r.snapshot = catalog
	r.mu.Unlock()

	r.logger.Info("Dish catalog snapshot refreshed", zap.Int("dishes", catalog.Len()))
	return catalog, nil
}

// Save inserts or updates a single dish record
func (r *DishRepository) Save(ctx context.Context, d dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	// The query destination must be distinct from the assign source:
	// GORM scans a found row into the destination before applying assigns.
	model := DishToModel(d)
	var row DishModel
	err := r.db.WithContext(ctx).
		Where("name = ?", model.Name).
		Assign(model).
		FirstOrCreate(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save dish %q: %w", d.Name, err)
	}

	// Invalidate the snapshot so the next read sees the change.
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()

	return nil
}

// Count returns the number of dish rows
func (r *DishRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DishModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count dishes: %w", err)
	}
	return count, nil
}
