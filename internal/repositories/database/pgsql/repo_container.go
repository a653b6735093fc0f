package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. With a non-nil redisClient the
// catalog existence checks go through a cache of catalogTTL; order snapshots always read
// the tables directly.
func NewRepositoryProvider(dbPool *pgxpool.Pool, redisClient *redis.Client, catalogTTL time.Duration) portsrepo.RepositoryProvider {
	directCatalog := newPgxCatalogRepository(dbPool)
	var catalogRepo portsrepo.CatalogReader = directCatalog
	if redisClient != nil {
		catalogRepo = NewCachedCatalogReader(directCatalog, redisClient, catalogTTL)
	}

	return portsrepo.RepositoryProvider{
		NeedExpressionRepo:  newPgxNeedExpressionRepository(dbPool),
		PurchaseOrderRepo:   newPgxPurchaseOrderRepository(dbPool),
		ReceptionRepo:       newPgxReceptionRepository(dbPool),
		SequenceRepo:        newPgxSequenceRepository(dbPool),
		CatalogRepo:         catalogRepo,
		SnapshotCatalogRepo: directCatalog,
	}
}
