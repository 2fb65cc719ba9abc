// Package testutils provides common testing utilities and infrastructure setup
package testutils

import (
	"testing"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDatabase creates an in-memory SQLite database with the
// schema migrated, optionally seeded with the given dishes.
func SetupTestDatabase(t *testing.T, dishes ...dish.Dish) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase(":memory:", logger.Silent)
	require.NoError(t, err, "failed to set up test database")

	if len(dishes) > 0 {
		require.NoError(t, sqlite.SeedDatabase(db, dish.NewCatalog(dishes)), "failed to seed test database")
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
