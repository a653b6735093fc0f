package handlers_test

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock NeedExpressionService ---
type MockNeedExpressionService struct {
	mock.Mock
}

func (m *MockNeedExpressionService) expression(args mock.Arguments) (*domain.NeedExpression, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NeedExpression), args.Error(1)
}

func (m *MockNeedExpressionService) GetNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID))
}
func (m *MockNeedExpressionService) ListNeedExpressions(ctx context.Context, actor domain.Actor, params dto.ListNeedExpressionsParams) (*dto.ListNeedExpressionsResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListNeedExpressionsResponse), args.Error(1)
}
func (m *MockNeedExpressionService) CreateNeedExpression(ctx context.Context, actor domain.Actor, req dto.CreateNeedExpressionRequest) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, req))
}
func (m *MockNeedExpressionService) EditNeedExpression(ctx context.Context, actor domain.Actor, expressionID string, req dto.EditNeedExpressionRequest) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID, req))
}
func (m *MockNeedExpressionService) DeleteNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) error {
	return m.Called(ctx, actor, expressionID).Error(0)
}
func (m *MockNeedExpressionService) Submit(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID))
}
func (m *MockNeedExpressionService) Withdraw(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID))
}
func (m *MockNeedExpressionService) Decide(ctx context.Context, actor domain.Actor, expressionID string, outcome domain.DecisionOutcome, comment *string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID, outcome, comment))
}
func (m *MockNeedExpressionService) MarkInProgress(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID))
}
func (m *MockNeedExpressionService) Reopen(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return m.expression(m.Called(ctx, actor, expressionID))
}

// Ensure mock implements the interface
var _ portssvc.NeedExpressionSvcFacade = (*MockNeedExpressionService)(nil)

// --- Mock PurchaseOrderService ---
type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) order(args mock.Arguments) (*domain.PurchaseOrder, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderService) GetPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error) {
	return m.order(m.Called(ctx, actor, orderID))
}
func (m *MockPurchaseOrderService) ListPurchaseOrders(ctx context.Context, actor domain.Actor, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPurchaseOrdersResponse), args.Error(1)
}
func (m *MockPurchaseOrderService) GetOrderDocument(ctx context.Context, actor domain.Actor, orderID string) (*dto.OrderDocument, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrderDocument), args.Error(1)
}
func (m *MockPurchaseOrderService) CurrencyPlaces() int32 {
	return 2
}
func (m *MockPurchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	return m.order(m.Called(ctx, actor, req))
}
func (m *MockPurchaseOrderService) RegeneratePurchaseOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.RegeneratePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	return m.order(m.Called(ctx, actor, orderID, req))
}
func (m *MockPurchaseOrderService) CancelPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error) {
	return m.order(m.Called(ctx, actor, orderID))
}
func (m *MockPurchaseOrderService) GetFulfillmentStats(ctx context.Context, actor domain.Actor, orderID string) (*domain.FulfillmentStats, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FulfillmentStats), args.Error(1)
}

var _ portssvc.PurchaseOrderSvcFacade = (*MockPurchaseOrderService)(nil)

// --- Mock ReceptionService ---
type MockReceptionService struct {
	mock.Mock
}

func (m *MockReceptionService) GetReception(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error) {
	args := m.Called(ctx, actor, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reception), args.Error(1)
}
func (m *MockReceptionService) ListReceptionsByOrder(ctx context.Context, actor domain.Actor, orderID string) ([]domain.Reception, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reception), args.Error(1)
}
func (m *MockReceptionService) RecordReception(ctx context.Context, actor domain.Actor, orderID string, req dto.RecordReceptionRequest) (*domain.Reception, *domain.FulfillmentStats, error) {
	args := m.Called(ctx, actor, orderID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Reception), args.Get(1).(*domain.FulfillmentStats), args.Error(2)
}
func (m *MockReceptionService) MarkConfirmationGenerated(ctx context.Context, actor domain.Actor, receptionID string) (*domain.Reception, error) {
	args := m.Called(ctx, actor, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reception), args.Error(1)
}

var _ portssvc.ReceptionSvcFacade = (*MockReceptionService)(nil)
