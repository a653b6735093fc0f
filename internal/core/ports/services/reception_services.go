package services

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/dto"
)

// ReceptionReaderSvc defines read operations for receptions
type ReceptionReaderSvc interface {
	GetReception(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error)

	ListReceptionsByOrder(ctx context.Context, actor domain.Actor, orderID string) ([]domain.Reception, error)
}

// ReceptionLedgerSvc defines the delivery recording operations
type ReceptionLedgerSvc interface {
	// RecordReception validates and appends a delivery, all or nothing, and returns the
	// order's progress as of the commit.
	RecordReception(ctx context.Context, actor domain.Actor, orderID string, req dto.RecordReceptionRequest) (*domain.Reception, *domain.FulfillmentStats, error)

	// MarkConfirmationGenerated sets the one-way confirmation flag. Idempotent.
	MarkConfirmationGenerated(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error)
}

// ReceptionSvcFacade combines all reception service interfaces
type ReceptionSvcFacade interface {
	ReceptionReaderSvc
	ReceptionLedgerSvc
}
