package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// receptionService is the append-only delivery ledger.
type receptionService struct {
	BaseService
	receptionRepo portsrepo.ReceptionRepositoryWithTx
	orderRepo     portsrepo.PurchaseOrderRepositoryWithTx
	sequenceRepo  portsrepo.SequenceRepository
}

// NewReceptionService creates a new ReceptionService.
func NewReceptionService(
	receptionRepo portsrepo.ReceptionRepositoryWithTx,
	orderRepo portsrepo.PurchaseOrderRepositoryWithTx,
	sequenceRepo portsrepo.SequenceRepository,
	publisher portssvc.EventPublisher,
) portssvc.ReceptionSvcFacade {
	return &receptionService{
		BaseService:   newBaseService(publisher),
		receptionRepo: receptionRepo,
		orderRepo:     orderRepo,
		sequenceRepo:  sequenceRepo,
	}
}

var _ portssvc.ReceptionSvcFacade = (*receptionService)(nil)

// RecordReception validates a delivery against the locked order and applies it, all or nothing.
// Receptions against one order serialize on the order row lock, so the remaining quantity
// checked here is the one the increment is applied to.
func (s *receptionService) RecordReception(ctx context.Context, actor domain.Actor, orderID string, req dto.RecordReceptionRequest) (*domain.Reception, *domain.FulfillmentStats, error) {
	logger := s.GetLogger(ctx)

	if err := domain.RequireCapability(actor, domain.CapRecordReceptions); err != nil {
		s.LogRejected(ctx, err, "Record reception refused", slog.String("user_id", actor.ID))
		return nil, nil, err
	}

	lines := dto.ToReceptionLines(req.Lines)

	var reception domain.Reception
	var order *domain.PurchaseOrder
	var priorCount int
	err := inTx(ctx, s.receptionRepo, func(tx pgx.Tx) error {
		var err error
		order, err = s.orderRepo.FindPurchaseOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := domain.ValidateReception(*order, lines); err != nil {
			return err
		}
		// other receptions of this order wait on the lock, so the committed count is exact
		priorCount, err = s.receptionRepo.CountReceptionsByOrder(ctx, orderID)
		if err != nil {
			return err
		}

		number, err := s.sequenceRepo.NextValue(ctx, tx, domain.SequenceReception)
		if err != nil {
			return err
		}

		now := s.now()
		receivedAt := now
		if req.ReceivedAt != nil {
			receivedAt = req.ReceivedAt.UTC()
		}
		kept := domain.ReceivedLines(lines)
		for i := range kept {
			kept[i].LineID = uuid.NewString()
		}
		reception = domain.Reception{
			ReceptionID:  uuid.NewString(),
			Number:       strconv.FormatInt(number, 10),
			OrderID:      order.OrderID,
			ReceivedAt:   receivedAt,
			Carrier:      req.Carrier,
			Observations: req.Observations,
			Lines:        kept,
			AuditFields:  domain.NewAuditFields(actor.ID, now),
		}
		if err := s.receptionRepo.SaveReception(ctx, tx, reception); err != nil {
			return err
		}

		order.ApplyReception(kept, actor.ID, now)
		return s.orderRepo.UpdatePurchaseOrderProgress(ctx, tx, *order)
	})
	if err != nil {
		s.LogRejected(ctx, err, "Record reception failed", slog.String("order_id", orderID))
		return nil, nil, err
	}

	logger.Info("Reception recorded",
		slog.String("reception_id", reception.ReceptionID),
		slog.String("order_id", orderID),
		slog.String("order_status", string(order.Status)))
	s.publish(ctx, domain.NewDomainEvent(domain.EventReceptionRecorded, reception.ReceptionID, actor.ID, reception.CreatedAt,
		"order_id", orderID, "order_status", string(order.Status)))

	stats := domain.ComputeFulfillment(*order, priorCount+1)
	return &reception, &stats, nil
}

// MarkConfirmationGenerated sets the confirmation flag. Calling it again is not an error.
func (s *receptionService) MarkConfirmationGenerated(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error) {
	if err := domain.RequireCapability(actor, domain.CapConfirmReceptions); err != nil {
		s.LogRejected(ctx, err, "Confirm reception refused", slog.String("user_id", actor.ID))
		return nil, err
	}
	if err := s.receptionRepo.MarkConfirmationGenerated(ctx, receptionID, actor.ID, s.now()); err != nil {
		s.LogRejected(ctx, err, "Confirm reception failed", slog.String("reception_id", receptionID))
		return nil, err
	}
	return s.receptionRepo.FindReceptionByID(ctx, receptionID)
}

func (s *receptionService) GetReception(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error) {
	if err := domain.RequireCapability(actor, domain.CapViewOrders); err != nil {
		return nil, err
	}
	return s.receptionRepo.FindReceptionByID(ctx, receptionID)
}

func (s *receptionService) ListReceptionsByOrder(ctx context.Context, actor domain.Actor, orderID string) ([]domain.Reception, error) {
	if err := domain.RequireCapability(actor, domain.CapViewOrders); err != nil {
		return nil, err
	}
	if _, err := s.orderRepo.FindPurchaseOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.receptionRepo.ListReceptionsByOrder(ctx, orderID)
}
