package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/go-redis/redis/v8"
)

const (
	materialCachePrefix = "catalog:material:"
	supplierCachePrefix = "catalog:supplier:"
	divisionCachePrefix = "catalog:division:"
	serviceCachePrefix  = "catalog:service:"
)

// CachedCatalogReader is a read-through Redis cache in front of the catalog tables.
// Redis failures are logged and fall back to the database; misses are never cached.
type CachedCatalogReader struct {
	next  portsrepo.CatalogReader
	redis redis.Cmdable
	ttl   time.Duration
}

// NewCachedCatalogReader wraps next with a cache of the given TTL.
func NewCachedCatalogReader(next portsrepo.CatalogReader, client redis.Cmdable, ttl time.Duration) *CachedCatalogReader {
	return &CachedCatalogReader{next: next, redis: client, ttl: ttl}
}

var _ portsrepo.CatalogReader = (*CachedCatalogReader)(nil)

func (c *CachedCatalogReader) FindMaterialsByIDs(ctx context.Context, materialIDs []string) (map[string]domain.Material, error) {
	out := make(map[string]domain.Material, len(materialIDs))
	if len(materialIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(materialIDs))
	for i, id := range materialIDs {
		keys[i] = materialCachePrefix + id
	}
	var missing []string
	vals, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		c.logCacheError(ctx, "MGET", err)
		missing = materialIDs
	} else {
		for i, v := range vals {
			s, ok := v.(string)
			var m domain.Material
			if !ok || json.Unmarshal([]byte(s), &m) != nil {
				missing = append(missing, materialIDs[i])
				continue
			}
			out[m.MaterialID] = m
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	found, err := c.next.FindMaterialsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, m := range found {
		out[id] = m
		c.store(ctx, materialCachePrefix+id, m)
	}
	return out, nil
}

func (c *CachedCatalogReader) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return readThrough(ctx, c, supplierCachePrefix+supplierID, func() (*domain.Supplier, error) {
		return c.next.FindSupplierByID(ctx, supplierID)
	})
}

func (c *CachedCatalogReader) FindDivisionByID(ctx context.Context, divisionID string) (*domain.Division, error) {
	return readThrough(ctx, c, divisionCachePrefix+divisionID, func() (*domain.Division, error) {
		return c.next.FindDivisionByID(ctx, divisionID)
	})
}

func (c *CachedCatalogReader) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	return readThrough(ctx, c, serviceCachePrefix+serviceID, func() (*domain.Service, error) {
		return c.next.FindServiceByID(ctx, serviceID)
	})
}

func readThrough[T any](ctx context.Context, c *CachedCatalogReader, key string, load func() (*T, error)) (*T, error) {
	val, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		var cached T
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logCacheError(ctx, "GET", err)
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, v)
	return v, nil
}

func (c *CachedCatalogReader) store(ctx context.Context, key string, v any) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		c.logCacheError(ctx, "SET", err)
	}
}

func (c *CachedCatalogReader) logCacheError(ctx context.Context, op string, err error) {
	middleware.GetLoggerFromCtx(ctx).Warn("Catalog cache unavailable, falling back to database",
		slog.String("op", op), slog.String("error", err.Error()))
}
