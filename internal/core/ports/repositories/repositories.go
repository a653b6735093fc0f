package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	NeedExpressionRepo NeedExpressionRepositoryWithTx
	PurchaseOrderRepo  PurchaseOrderRepositoryWithTx
	ReceptionRepo      ReceptionRepositoryWithTx
	SequenceRepo       SequenceRepository
	CatalogRepo        CatalogReader

	// SnapshotCatalogRepo reads the catalog without any cache. Order snapshots use it so
	// they carry the display fields current at call time. Nil means CatalogRepo.
	SnapshotCatalogRepo CatalogReader
}
