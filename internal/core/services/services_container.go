package services

import (
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		NeedExpression: NewNeedExpressionService(
			repos.NeedExpressionRepo,
			repos.SequenceRepo,
			repos.CatalogRepo,
			publisher,
		),
		PurchaseOrder: NewPurchaseOrderService(repos, publisher, cfg.CurrencyPrecision),
		Reception: NewReceptionService(
			repos.ReceptionRepo,
			repos.PurchaseOrderRepo,
			repos.SequenceRepo,
			publisher,
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.NeedExpressionSvcFacade = (*needExpressionService)(nil)
	_ portssvc.PurchaseOrderSvcFacade  = (*purchaseOrderService)(nil)
	_ portssvc.ReceptionSvcFacade      = (*receptionService)(nil)
)
