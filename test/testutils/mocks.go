// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/platewise/v1/internal/domain/dish"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// MockDishRepository provides a mock implementation of DishRepository
type MockDishRepository struct {
	mock.Mock
}

// NewMockDishRepository creates a new mock dish repository
func NewMockDishRepository() *MockDishRepository {
	return &MockDishRepository{}
}

// Catalog returns the configured catalog
func (m *MockDishRepository) Catalog(ctx context.Context) (*dish.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Catalog), args.Error(1)
}

// StubDishRepository serves a fixed catalog without expectations
type StubDishRepository struct {
	catalog *dish.Catalog
	err     error
}

// NewStubDishRepository creates a repository that always serves the
// given dishes.
func NewStubDishRepository(dishes ...dish.Dish) *StubDishRepository {
	return &StubDishRepository{catalog: dish.NewCatalog(dishes)}
}

// NewFailingDishRepository creates a repository whose Catalog always fails
func NewFailingDishRepository(err error) *StubDishRepository {
	return &StubDishRepository{err: err}
}

// Catalog returns the fixed catalog or the configured error
func (s *StubDishRepository) Catalog(ctx context.Context) (*dish.Catalog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

// MockDescriptionService provides a mock implementation of DescriptionService
type MockDescriptionService struct {
	mock.Mock
}

// NewMockDescriptionService creates a new mock description service
func NewMockDescriptionService() *MockDescriptionService {
	return &MockDescriptionService{}
}

// GenerateMealDescription returns the configured description
func (m *MockDescriptionService) GenerateMealDescription(ctx context.Context, req outbound.DescriptionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Available reports the configured availability
func (m *MockDescriptionService) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

// ModelName returns the configured model name
func (m *MockDescriptionService) ModelName() string {
	args := m.Called()
	return args.String(0)
}

// ErrCacheMiss is returned by InMemoryCache for missing keys
var ErrCacheMiss = errors.New("cache miss")

// InMemoryCache is a minimal cache repository for tests, without TTL
// eviction or background goroutines.
type InMemoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewInMemoryCache creates an empty test cache
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{data: make(map[string][]byte)}
}

// Get retrieves a value
func (c *InMemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, ErrCacheMiss
}

// Set stores a value, ignoring the TTL
func (c *InMemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

// Delete removes a key
func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}
