package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite provides a test suite for configuration loading
type ConfigTestSuite struct {
	suite.Suite
}

// TestLoad tests loading from defaults, files and the environment
func (suite *ConfigTestSuite) TestLoad() {
	suite.Run("NoConfigFile_ShouldFallBackToDefaults", func() {
		// Act: no file on the search path, so defaults apply
		cfg, err := Load("")

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Platewise", cfg.App.Name)
		assert.Equal(suite.T(), 8080, cfg.Server.Port)
		assert.Equal(suite.T(), "database", cfg.Catalog.Source)
		assert.Equal(suite.T(), "data/menu.json", cfg.Catalog.Path)
		assert.Equal(suite.T(), "memory", cfg.Cache.Backend)
		assert.True(suite.T(), cfg.AI.Enable)
		assert.Equal(suite.T(), "http://localhost:11434/v1", cfg.AI.BaseURL)
		assert.Equal(suite.T(), "localhost:6379", cfg.RedisAddr())
	})

	suite.Run("ConfigFile_ShouldOverrideDefaults", func() {
		// Arrange
		path := filepath.Join(suite.T().TempDir(), "config.yaml")
		content := `
app:
  name: "Platewise Test"
  environment: "production"
server:
  port: 9090
catalog:
  source: "file"
  path: "testdata/menu.json"
cache:
  backend: "memory"
`
		require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o644))

		// Act
		cfg, err := Load(path)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Platewise Test", cfg.App.Name)
		assert.Equal(suite.T(), 9090, cfg.Server.Port)
		assert.Equal(suite.T(), "file", cfg.Catalog.Source)
		assert.True(suite.T(), cfg.IsProduction())
		assert.False(suite.T(), cfg.IsDevelopment())

		// Untouched sections keep their defaults
		assert.Equal(suite.T(), "llama3.1:8b", cfg.AI.Model)
		assert.Equal(suite.T(), 60, cfg.RateLimit.RequestsPerMin)
		assert.Equal(suite.T(), "/metrics", cfg.Monitoring.MetricsPath)
	})

	suite.Run("InvalidFileValues_ShouldFailValidation", func() {
		// Arrange
		path := filepath.Join(suite.T().TempDir(), "config.yaml")
		content := `
server:
  port: 99999
`
		require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o644))

		// Act
		cfg, err := Load(path)

		// Assert
		require.Error(suite.T(), err)
		assert.Nil(suite.T(), cfg)
		assert.Contains(suite.T(), err.Error(), "server.port")
	})
}

// TestValidate tests the validation rules directly
func (suite *ConfigTestSuite) TestValidate() {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Name: "Platewise"},
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Path: "platewise.db"},
			Catalog:  CatalogConfig{Source: "database", Path: "data/menu.json"},
			Cache:    CacheConfig{Backend: "memory"},
		}
	}

	suite.Run("ValidConfig_ShouldPass", func() {
		assert.NoError(suite.T(), valid().Validate())
	})

	suite.Run("MissingAppName_ShouldFail", func() {
		cfg := valid()
		cfg.App.Name = ""
		assert.ErrorContains(suite.T(), cfg.Validate(), "app.name")
	})

	suite.Run("PortOutOfRange_ShouldFail", func() {
		cfg := valid()
		cfg.Server.Port = 0
		assert.ErrorContains(suite.T(), cfg.Validate(), "server.port")
	})

	suite.Run("UnknownCatalogSource_ShouldFail", func() {
		cfg := valid()
		cfg.Catalog.Source = "s3"
		assert.ErrorContains(suite.T(), cfg.Validate(), "catalog.source")
	})

	suite.Run("UnknownCacheBackend_ShouldFail", func() {
		cfg := valid()
		cfg.Cache.Backend = "memcached"
		assert.ErrorContains(suite.T(), cfg.Validate(), "cache.backend")
	})

	suite.Run("DatabaseSourceWithoutPath_ShouldFail", func() {
		cfg := valid()
		cfg.Database.Path = ""
		assert.ErrorContains(suite.T(), cfg.Validate(), "database.path")
	})
}

// TestRedisAddr tests the Redis address helper
func (suite *ConfigTestSuite) TestRedisAddr() {
	cfg := &Config{Cache: CacheConfig{RedisHost: "cache.internal", RedisPort: 6380}}
	assert.Equal(suite.T(), "cache.internal:6380", cfg.RedisAddr())
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
