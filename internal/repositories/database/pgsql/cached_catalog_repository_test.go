package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) FindMaterialsByIDs(ctx context.Context, materialIDs []string) (map[string]domain.Material, error) {
	args := m.Called(ctx, materialIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Material), args.Error(1)
}

func (m *MockCatalogReader) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockCatalogReader) FindDivisionByID(ctx context.Context, divisionID string) (*domain.Division, error) {
	args := m.Called(ctx, divisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Division), args.Error(1)
}

func (m *MockCatalogReader) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

// unreachableRedis fails every command quickly, exercising the database fallback.
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedCatalogReader_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalogReader)
	reader := NewCachedCatalogReader(next, unreachableRedis(t), time.Minute)

	next.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{SupplierID: "sup-1", Name: "Office Supplies Ltd"}, nil).Once()
	next.On("FindMaterialsByIDs", ctx, []string{"mat-1", "mat-2"}).
		Return(map[string]domain.Material{"mat-1": {MaterialID: "mat-1", Code: "PAP-A4"}}, nil).Once()

	supplier, err := reader.FindSupplierByID(ctx, "sup-1")
	require.NoError(t, err)
	assert.Equal(t, "Office Supplies Ltd", supplier.Name)

	materials, err := reader.FindMaterialsByIDs(ctx, []string{"mat-1", "mat-2"})
	require.NoError(t, err)
	assert.Len(t, materials, 1)
	assert.Equal(t, "PAP-A4", materials["mat-1"].Code)

	next.AssertExpectations(t)
}

func TestCachedCatalogReader_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalogReader)
	reader := NewCachedCatalogReader(next, unreachableRedis(t), time.Minute)

	next.On("FindDivisionByID", ctx, "div-x").Return(nil, apperrors.NewNotFoundError("division", "div-x")).Once()

	_, err := reader.FindDivisionByID(ctx, "div-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	next.AssertExpectations(t)
}

func TestCachedCatalogReader_EmptyMaterialListSkipsEverything(t *testing.T) {
	next := new(MockCatalogReader)
	reader := NewCachedCatalogReader(next, unreachableRedis(t), time.Minute)

	materials, err := reader.FindMaterialsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, materials)
	next.AssertNotCalled(t, "FindMaterialsByIDs", mock.Anything, mock.Anything)
}

func TestNewRepositoryProvider_SnapshotsBypassTheCache(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	repos := NewRepositoryProvider(nil, client, time.Minute)
	assert.IsType(t, &CachedCatalogReader{}, repos.CatalogRepo)
	assert.IsType(t, &PgxCatalogRepository{}, repos.SnapshotCatalogRepo)

	uncached := NewRepositoryProvider(nil, nil, 0)
	assert.IsType(t, &PgxCatalogRepository{}, uncached.CatalogRepo)
	assert.Same(t, uncached.CatalogRepo, uncached.SnapshotCatalogRepo)
}
