package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReceptionRepository ---
type MockReceptionRepository struct {
	mock.Mock
}

var _ portsrepo.ReceptionRepositoryWithTx = (*MockReceptionRepository)(nil)

func (m *MockReceptionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReceptionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReceptionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReceptionRepository) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	args := m.Called(ctx, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reception), args.Error(1)
}

func (m *MockReceptionRepository) ListReceptionsByOrder(ctx context.Context, orderID string) ([]domain.Reception, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reception), args.Error(1)
}

func (m *MockReceptionRepository) CountReceptionsByOrder(ctx context.Context, orderID string) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockReceptionRepository) SaveReception(ctx context.Context, tx pgx.Tx, reception domain.Reception) error {
	args := m.Called(ctx, tx, reception)
	return args.Error(0)
}

func (m *MockReceptionRepository) MarkConfirmationGenerated(ctx context.Context, receptionID string, userID string, at time.Time) error {
	args := m.Called(ctx, receptionID, userID, at)
	return args.Error(0)
}

// --- Mock PurchaseOrderRepository ---
type MockPurchaseOrderRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseOrderRepositoryWithTx = (*MockPurchaseOrderRepository)(nil)

func (m *MockPurchaseOrderRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindActivePurchaseOrderByExpression(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tx, expressionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, filter domain.PurchaseOrderFilter, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.PurchaseOrder), returnedNextToken, args.Error(2)
}

func (m *MockPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) ReplacePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder, removedLineIDs []string) error {
	args := m.Called(ctx, tx, order, removedLineIDs)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdatePurchaseOrderProgress(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextValue(ctx context.Context, tx pgx.Tx, entity domain.SequenceEntity) (int64, error) {
	args := m.Called(ctx, tx, entity)
	return args.Get(0).(int64), args.Error(1)
}

// mockTx is the opaque transaction handed around by the mocks.
type mockTx struct {
	pgx.Tx
}

// --- Test Suite ---
type ReceptionServiceTestSuite struct {
	suite.Suite
	receptionRepo *MockReceptionRepository
	orderRepo     *MockPurchaseOrderRepository
	sequenceRepo  *MockSequenceRepository
	tx            pgx.Tx
	order         *domain.PurchaseOrder
}

func (s *ReceptionServiceTestSuite) SetupTest() {
	s.receptionRepo = new(MockReceptionRepository)
	s.orderRepo = new(MockPurchaseOrderRepository)
	s.sequenceRepo = new(MockSequenceRepository)
	s.tx = &mockTx{}
	s.order = &domain.PurchaseOrder{
		OrderID: "order-1",
		Status:  domain.OrderPending,
		Lines:   []domain.OrderLine{{LineID: "line-1", Description: "Paper", Quantity: 10}},
	}
}

func TestReceptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceptionServiceTestSuite))
}

func (s *ReceptionServiceTestSuite) service() portssvc.ReceptionSvcFacade {
	return services.NewReceptionService(s.receptionRepo, s.orderRepo, s.sequenceRepo, nil)
}

func (s *ReceptionServiceTestSuite) TestRecordReception_BeginFails() {
	ctx := context.Background()
	beginErr := apperrors.NewAppError(500, "failed to begin transaction", errors.New("pool exhausted"))
	s.receptionRepo.On("Begin", ctx).Return(nil, beginErr).Once()

	_, _, err := s.service().RecordReception(ctx, admin, "order-1", receive("line-1", 1, 1, 0))

	s.ErrorIs(err, beginErr)
	s.orderRepo.AssertNotCalled(s.T(), "FindPurchaseOrderForUpdate", mock.Anything, mock.Anything, mock.Anything)
	s.receptionRepo.AssertExpectations(s.T())
}

func (s *ReceptionServiceTestSuite) TestRecordReception_SaveFailsRollsBack() {
	ctx := context.Background()
	saveErr := errors.New("insert failed")

	s.receptionRepo.On("Begin", ctx).Return(s.tx, nil).Once()
	s.orderRepo.On("FindPurchaseOrderForUpdate", ctx, s.tx, "order-1").Return(s.order, nil).Once()
	s.receptionRepo.On("CountReceptionsByOrder", ctx, "order-1").Return(0, nil).Once()
	s.sequenceRepo.On("NextValue", ctx, s.tx, domain.SequenceReception).Return(int64(7), nil).Once()
	s.receptionRepo.On("SaveReception", ctx, s.tx, mock.MatchedBy(func(r domain.Reception) bool {
		return r.Number == "7" && r.OrderID == "order-1" && len(r.Lines) == 1
	})).Return(saveErr).Once()
	s.receptionRepo.On("Rollback", ctx, s.tx).Return(nil).Once()

	_, _, err := s.service().RecordReception(ctx, admin, "order-1", receive("line-1", 2, 2, 0))

	s.ErrorIs(err, saveErr)
	s.receptionRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
	s.orderRepo.AssertNotCalled(s.T(), "UpdatePurchaseOrderProgress", mock.Anything, mock.Anything, mock.Anything)
	s.receptionRepo.AssertExpectations(s.T())
	s.orderRepo.AssertExpectations(s.T())
	s.sequenceRepo.AssertExpectations(s.T())
}

func (s *ReceptionServiceTestSuite) TestRecordReception_Success() {
	ctx := context.Background()

	s.receptionRepo.On("Begin", ctx).Return(s.tx, nil).Once()
	s.orderRepo.On("FindPurchaseOrderForUpdate", ctx, s.tx, "order-1").Return(s.order, nil).Once()
	s.receptionRepo.On("CountReceptionsByOrder", ctx, "order-1").Return(2, nil).Once()
	s.sequenceRepo.On("NextValue", ctx, s.tx, domain.SequenceReception).Return(int64(3), nil).Once()
	s.receptionRepo.On("SaveReception", ctx, s.tx, mock.AnythingOfType("domain.Reception")).Return(nil).Once()
	s.orderRepo.On("UpdatePurchaseOrderProgress", ctx, s.tx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return o.Status == domain.OrderPartiallyDelivered && o.Lines[0].ReceivedQuantity == 4
	})).Return(nil).Once()
	s.receptionRepo.On("Commit", ctx, s.tx).Return(nil).Once()
	s.receptionRepo.On("Rollback", ctx, s.tx).Return(nil).Maybe()

	reception, stats, err := s.service().RecordReception(ctx, admin, "order-1", receive("line-1", 4, 4, 0))

	s.Require().NoError(err)
	s.Equal("3", reception.Number)
	s.Equal(3, stats.ReceptionCount)
	s.Equal(int64(40), stats.PercentGlobal)
	s.receptionRepo.AssertExpectations(s.T())
	s.orderRepo.AssertExpectations(s.T())
}

func (s *ReceptionServiceTestSuite) TestRecordReception_ZeroLinesAreNotPersisted() {
	ctx := context.Background()
	s.order.Lines = append(s.order.Lines, domain.OrderLine{LineID: "line-2", Description: "Toner", Quantity: 2})

	s.receptionRepo.On("Begin", ctx).Return(s.tx, nil).Once()
	s.orderRepo.On("FindPurchaseOrderForUpdate", ctx, s.tx, "order-1").Return(s.order, nil).Once()
	s.receptionRepo.On("CountReceptionsByOrder", ctx, "order-1").Return(0, nil).Once()
	s.sequenceRepo.On("NextValue", ctx, s.tx, domain.SequenceReception).Return(int64(1), nil).Once()
	s.receptionRepo.On("SaveReception", ctx, s.tx, mock.MatchedBy(func(r domain.Reception) bool {
		return len(r.Lines) == 1 && r.Lines[0].OrderLineID == "line-2"
	})).Return(nil).Once()
	s.orderRepo.On("UpdatePurchaseOrderProgress", ctx, s.tx, mock.Anything).Return(nil).Once()
	s.receptionRepo.On("Commit", ctx, s.tx).Return(nil).Once()
	s.receptionRepo.On("Rollback", ctx, s.tx).Return(nil).Maybe()

	req := receive("line-1", 0, 0, 0)
	req.Lines = append(req.Lines, receive("line-2", 2, 2, 0).Lines...)
	_, _, err := s.service().RecordReception(ctx, admin, "order-1", req)

	s.Require().NoError(err)
	s.receptionRepo.AssertExpectations(s.T())
}
