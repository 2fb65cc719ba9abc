// Package catalog loads the dish catalog from its JSON source file
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// LoadFile reads and validates a JSON dish catalog. Dishes that fail
// validation are skipped, not fatal; an unreadable or unparseable file is.
func LoadFile(path string, logger *zap.Logger) (*dish.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var dishes []dish.Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	valid := make([]dish.Dish, 0, len(dishes))
	for _, d := range dishes {
		if err := d.Validate(); err != nil {
			logger.Warn("Skipping invalid catalog entry",
				zap.String("dish", d.Name),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, d)
	}

	logger.Info("Dish catalog loaded",
		zap.String("path", path),
		zap.Int("dishes", len(valid)),
		zap.Int("skipped", len(dishes)-len(valid)),
	)

	return dish.NewCatalog(valid), nil
}

// FileRepository serves the catalog straight from the JSON file,
// loading it once on first use.
type FileRepository struct {
	path   string
	logger *zap.Logger

	once    sync.Once
	catalog *dish.Catalog
	loadErr error
}

// NewFileRepository creates a file-backed dish repository
func NewFileRepository(path string, logger *zap.Logger) outbound.DishRepository {
	return &FileRepository{path: path, logger: logger.Named("catalog-file")}
}

// Catalog returns the loaded catalog snapshot
func (r *FileRepository) Catalog(ctx context.Context) (*dish.Catalog, error) {
	r.once.Do(func() {
		r.catalog, r.loadErr = LoadFile(r.path, r.logger)
	})
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.catalog, nil
}
