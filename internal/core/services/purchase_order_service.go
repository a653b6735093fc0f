package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// purchaseOrderService is the order ledger: creation from an approved expression,
// regeneration, cancellation and the derived progress views.
type purchaseOrderService struct {
	BaseService
	orderRepo      portsrepo.PurchaseOrderRepositoryWithTx
	expressionRepo portsrepo.NeedExpressionRepositoryWithTx
	receptionRepo  portsrepo.ReceptionRepositoryWithTx
	sequenceRepo   portsrepo.SequenceRepository
	catalogRepo    portsrepo.CatalogReader
	places         int32
}

// NewPurchaseOrderService creates a new PurchaseOrderService. places is the currency minor unit.
func NewPurchaseOrderService(repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher, places int32) portssvc.PurchaseOrderSvcFacade {
	if places < 0 {
		places = domain.DefaultCurrencyPlaces
	}
	catalogRepo := repos.SnapshotCatalogRepo
	if catalogRepo == nil {
		catalogRepo = repos.CatalogRepo
	}
	return &purchaseOrderService{
		BaseService:    newBaseService(publisher),
		orderRepo:      repos.PurchaseOrderRepo,
		expressionRepo: repos.NeedExpressionRepo,
		receptionRepo:  repos.ReceptionRepo,
		sequenceRepo:   repos.SequenceRepo,
		catalogRepo:    catalogRepo,
		places:         places,
	}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) CurrencyPlaces() int32 {
	return s.places
}

// CreatePurchaseOrder converts an approved expression into an order. The expression row is
// locked for the whole transaction, so two concurrent creations for one expression serialize
// and the second sees the first order.
func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	logger := s.GetLogger(ctx)

	if err := domain.RequireCapability(actor, domain.CapManageOrders); err != nil {
		s.LogRejected(ctx, err, "Create purchase order refused", slog.String("user_id", actor.ID))
		return nil, err
	}

	var created *domain.PurchaseOrder
	err := inTx(ctx, s.orderRepo, func(tx pgx.Tx) error {
		expression, err := s.expressionRepo.FindNeedExpressionForUpdate(ctx, tx, req.ExpressionID)
		if err != nil {
			return err
		}

		existing, err := s.orderRepo.FindActivePurchaseOrderByExpression(ctx, tx, expression.ExpressionID)
		if err == nil {
			return fmt.Errorf("%w: order %s", apperrors.ErrOrderAlreadyExists, existing.OrderID)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if expression.Status != domain.ExpressionApproved {
			return fmt.Errorf("%w: status is %s", apperrors.ErrExpressionNotApproved, expression.Status)
		}

		terms, lines, err := s.resolveTerms(ctx, req.OrderTermsRequest)
		if err != nil {
			return err
		}

		number, err := s.sequenceRepo.NextValue(ctx, tx, domain.SequencePurchaseOrder)
		if err != nil {
			return err
		}

		now := s.now()
		for i := range lines {
			lines[i].LineID = uuid.NewString()
		}
		order := domain.PurchaseOrder{
			OrderID:      uuid.NewString(),
			Number:       strconv.FormatInt(number, 10),
			ExpressionID: expression.ExpressionID,
			Status:       domain.OrderPending,
			EmittedAt:    now,
			Lines:        lines,
			AuditFields:  domain.NewAuditFields(actor.ID, now),
		}
		order.ApplyTerms(terms)
		order.TotalAmount = order.Totals().Rounded(s.places)

		if err := s.orderRepo.SavePurchaseOrder(ctx, tx, order); err != nil {
			return err
		}
		if err := expression.Apply(domain.EventStartProgress, actor.ID, now); err != nil {
			return err
		}
		if err := s.expressionRepo.UpdateNeedExpressionStatus(ctx, tx, *expression); err != nil {
			return err
		}
		created = &order
		return nil
	})
	if err != nil {
		s.LogRejected(ctx, err, "Create purchase order failed", slog.String("expression_id", req.ExpressionID))
		return nil, err
	}

	logger.Info("Purchase order created",
		slog.String("order_id", created.OrderID),
		slog.String("number", created.Number),
		slog.String("expression_id", created.ExpressionID),
		slog.String("total", created.TotalAmount.String()))
	s.publish(ctx, domain.NewDomainEvent(domain.EventOrderCreated, created.OrderID, actor.ID, created.EmittedAt,
		"expression_id", created.ExpressionID, "number", created.Number))
	return created, nil
}

// RegeneratePurchaseOrder overwrites terms and lines of an order, keeping what was already received.
func (s *purchaseOrderService) RegeneratePurchaseOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.RegeneratePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	if err := domain.RequireCapability(actor, domain.CapManageOrders); err != nil {
		s.LogRejected(ctx, err, "Regenerate purchase order refused", slog.String("user_id", actor.ID))
		return nil, err
	}

	var regenerated *domain.PurchaseOrder
	err := inTx(ctx, s.orderRepo, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindPurchaseOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order.IsCancelled() {
			return apperrors.ErrOrderCancelled
		}

		terms, lines, err := s.resolveTerms(ctx, req.OrderTermsRequest)
		if err != nil {
			return err
		}
		plan, err := domain.PlanRegeneration(order.Lines, lines, uuid.NewString)
		if err != nil {
			return err
		}

		order.ApplyTerms(terms)
		order.Lines = plan.Lines
		order.RefreshStatus()
		order.TotalAmount = order.Totals().Rounded(s.places)
		order.LastUpdatedAt = s.now()
		order.LastUpdatedBy = actor.ID

		if err := s.orderRepo.ReplacePurchaseOrder(ctx, tx, *order, plan.RemovedLineIDs); err != nil {
			return err
		}
		regenerated = order
		return nil
	})
	if err != nil {
		s.LogRejected(ctx, err, "Regenerate purchase order failed", slog.String("order_id", orderID))
		return nil, err
	}

	s.GetLogger(ctx).Info("Purchase order regenerated",
		slog.String("order_id", orderID),
		slog.String("status", string(regenerated.Status)),
		slog.String("total", regenerated.TotalAmount.String()))
	return regenerated, nil
}

// CancelPurchaseOrder freezes an order against further receptions and regeneration.
func (s *purchaseOrderService) CancelPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error) {
	if err := domain.RequireCapability(actor, domain.CapManageOrders); err != nil {
		s.LogRejected(ctx, err, "Cancel purchase order refused", slog.String("user_id", actor.ID))
		return nil, err
	}

	var cancelled *domain.PurchaseOrder
	err := inTx(ctx, s.orderRepo, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindPurchaseOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := order.Cancel(actor.ID, s.now()); err != nil {
			return err
		}
		if err := s.orderRepo.UpdatePurchaseOrderProgress(ctx, tx, *order); err != nil {
			return err
		}
		cancelled = order
		return nil
	})
	if err != nil {
		s.LogRejected(ctx, err, "Cancel purchase order failed", slog.String("order_id", orderID))
		return nil, err
	}
	s.GetLogger(ctx).Info("Purchase order cancelled", slog.String("order_id", orderID))
	return cancelled, nil
}

func (s *purchaseOrderService) GetPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error) {
	if err := domain.RequireCapability(actor, domain.CapViewOrders); err != nil {
		return nil, err
	}
	return s.orderRepo.FindPurchaseOrderByID(ctx, orderID)
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, actor domain.Actor, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error) {
	if err := domain.RequireCapability(actor, domain.CapViewOrders); err != nil {
		return nil, err
	}

	filter := domain.PurchaseOrderFilter{ExpressionID: params.ExpressionID}
	if params.Status != nil {
		status := domain.OrderStatus(*params.Status)
		filter.Status = &status
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, nextToken, err := s.orderRepo.ListPurchaseOrders(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders")
		return nil, err
	}
	return &dto.ListPurchaseOrdersResponse{
		Orders:    dto.ToPurchaseOrderResponses(orders, s.places),
		NextToken: nextToken,
	}, nil
}

// GetFulfillmentStats recomputes progress from the current state; nothing is cached.
func (s *purchaseOrderService) GetFulfillmentStats(ctx context.Context, actor domain.Actor, orderID string) (*domain.FulfillmentStats, error) {
	order, err := s.GetPurchaseOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	return s.statsOf(ctx, *order)
}

// GetOrderDocument resolves the order with its expression, progress and receptions.
func (s *purchaseOrderService) GetOrderDocument(ctx context.Context, actor domain.Actor, orderID string) (*dto.OrderDocument, error) {
	order, err := s.GetPurchaseOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	expression, err := s.expressionRepo.FindNeedExpressionByID(ctx, order.ExpressionID)
	if err != nil {
		return nil, err
	}
	receptions, err := s.receptionRepo.ListReceptionsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	doc := dto.ToOrderDocument(dto.OrderDocumentSource{
		Expression: *expression,
		Order:      *order,
		Stats:      domain.ComputeFulfillment(*order, len(receptions)),
		Receptions: receptions,
	}, s.places)
	return &doc, nil
}

func (s *purchaseOrderService) statsOf(ctx context.Context, order domain.PurchaseOrder) (*domain.FulfillmentStats, error) {
	count, err := s.receptionRepo.CountReceptionsByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeFulfillment(order, count)
	return &stats, nil
}

// resolveTerms validates the request and snapshots catalog data onto it.
func (s *purchaseOrderService) resolveTerms(ctx context.Context, req dto.OrderTermsRequest) (domain.OrderTerms, []domain.OrderLine, error) {
	terms := req.ToOrderTerms()
	if err := terms.Validate(); err != nil {
		return domain.OrderTerms{}, nil, err
	}
	lines := dto.ToOrderLines(req.Lines)
	if err := domain.ValidateOrderLines(lines); err != nil {
		return domain.OrderTerms{}, nil, err
	}

	materials, err := s.catalogRepo.FindMaterialsByIDs(ctx, domain.MaterialIDsOfOrderLines(lines))
	if err != nil {
		return domain.OrderTerms{}, nil, err
	}
	if err := domain.SnapshotMaterials(lines, materials); err != nil {
		return domain.OrderTerms{}, nil, err
	}

	if terms.SupplierID != nil {
		supplier, err := s.catalogRepo.FindSupplierByID(ctx, *terms.SupplierID)
		if err != nil {
			return domain.OrderTerms{}, nil, err
		}
		name := supplier.Name
		terms.SupplierName = &name
	}
	return terms, lines, nil
}
