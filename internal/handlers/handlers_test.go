package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/SscSPs/procurement_tracker/internal/handlers"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/SscSPs/procurement_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "handlers-test-secret"

var (
	requester = domain.Actor{ID: "user-requester", Role: domain.RoleRequester}
	approver  = domain.Actor{ID: "user-approver", Role: domain.RoleApprover}
	admin     = domain.Actor{ID: "user-admin", Role: domain.RoleAdministrator}
)

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	expressions *MockNeedExpressionService
	orders      *MockPurchaseOrderService
	receptions  *MockReceptionService
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.expressions = new(MockNeedExpressionService)
	s.orders = new(MockPurchaseOrderService)
	s.receptions = new(MockReceptionService)

	cfg := &config.Config{JWTSecret: testJWTSecret, RateLimit: "1000-S", IsProduction: true}
	s.router = gin.New()
	err := handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		NeedExpression: s.expressions,
		PurchaseOrder:  s.orders,
		Reception:      s.receptions,
	})
	s.Require().NoError(err)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.expressions.AssertExpectations(s.T())
	s.orders.AssertExpectations(s.T())
	s.receptions.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) token(actor domain.Actor) string {
	claims := middleware.Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	s.Require().NoError(err)
	return signed
}

func (s *HandlersTestSuite) do(actor *domain.Actor, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(*actor))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func draft(id string) *domain.NeedExpression {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.NeedExpression{
		ExpressionID: id,
		Number:       "42",
		Title:        "Office paper",
		DivisionID:   "div-1",
		Status:       domain.ExpressionDraft,
		Lines:        []domain.NeedLine{{LineID: "nl-1", Description: "A4 paper", Quantity: 10, MaterialID: "mat-paper"}},
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: requester.ID, LastUpdatedAt: now, LastUpdatedBy: requester.ID},
	}
}

func pendingOrder(id string) *domain.PurchaseOrder {
	return &domain.PurchaseOrder{
		OrderID:      id,
		Number:       "7",
		ExpressionID: "exp-1",
		TaxRate:      decimal.NewFromInt(20),
		DiscountRate: decimal.Zero,
		Status:       domain.OrderPending,
		Lines: []domain.OrderLine{
			{LineID: "ol-1", Description: "A4 paper", Quantity: 10, UnitPrice: decimal.RequireFromString("2.50"), MaterialID: "mat-paper"},
		},
	}
}

func (s *HandlersTestSuite) TestMissingTokenIsRejected() {
	w := s.do(nil, http.MethodGet, "/expressions", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.expressions.AssertNotCalled(s.T(), "ListNeedExpressions", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestCreateExpression_Success() {
	req := dto.CreateNeedExpressionRequest{
		Title:      "Office paper",
		DivisionID: "div-1",
		Lines:      []dto.NeedLineRequest{{Description: "A4 paper", Quantity: 10, MaterialID: "mat-paper"}},
	}
	s.expressions.On("CreateNeedExpression", mock.Anything, requester, req).Return(draft("exp-1"), nil).Once()

	w := s.do(&requester, http.MethodPost, "/expressions", req)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.NeedExpressionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("exp-1", resp.ExpressionID)
	s.Equal("EB-000042", resp.DisplayNumber)
	s.Equal(domain.ExpressionDraft, resp.Status)
	s.Len(resp.Lines, 1)
}

func (s *HandlersTestSuite) TestCreateExpression_BindingFailures() {
	cases := map[string]string{
		"no lines":      `{"title":"Paper","divisionID":"div-1","lines":[]}`,
		"blank title":   `{"title":"   ","divisionID":"div-1","lines":[{"description":"x","quantity":1,"materialID":"m"}]}`,
		"zero quantity": `{"title":"Paper","divisionID":"div-1","lines":[{"description":"x","quantity":0,"materialID":"m"}]}`,
		"malformed":     `{"title":`,
	}
	for name, body := range cases {
		w := s.do(&requester, http.MethodPost, "/expressions", body)
		s.Equal(http.StatusBadRequest, w.Code, name)
		s.Equal("validation_error", s.decodeError(w).Code, name)
	}
	s.expressions.AssertNotCalled(s.T(), "CreateNeedExpression", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestGetExpression_NotOwner() {
	s.expressions.On("GetNeedExpression", mock.Anything, requester, "exp-9").
		Return(nil, apperrors.ErrNotOwner).Once()

	w := s.do(&requester, http.MethodGet, "/expressions/exp-9", nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("not_owner", s.decodeError(w).Code)
}

func (s *HandlersTestSuite) TestGetExpression_NotFound() {
	s.expressions.On("GetNeedExpression", mock.Anything, approver, "missing").
		Return(nil, apperrors.NewNotFoundError("need expression", "missing")).Once()

	w := s.do(&approver, http.MethodGet, "/expressions/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("not_found", s.decodeError(w).Code)
}

func (s *HandlersTestSuite) TestSubmit_IllegalTransitionCarriesDetails() {
	s.expressions.On("Submit", mock.Anything, requester, "exp-1").
		Return(nil, &apperrors.TransitionError{Entity: "need expression", Current: "APPROVED", Attempted: "SUBMIT"}).Once()

	w := s.do(&requester, http.MethodPost, "/expressions/exp-1/submit", nil)

	s.Require().Equal(http.StatusConflict, w.Code)
	resp := s.decodeError(w)
	s.Equal("invalid_transition", resp.Code)
	s.Equal("APPROVED", resp.Details["current"])
	s.Equal("SUBMIT", resp.Details["attempted"])
}

func (s *HandlersTestSuite) TestDecide() {
	comment := "ok"
	approved := draft("exp-1")
	approved.Status = domain.ExpressionApproved
	s.expressions.On("Decide", mock.Anything, approver, "exp-1", domain.OutcomeApproved, &comment).Return(approved, nil).Once()

	w := s.do(&approver, http.MethodPost, "/expressions/exp-1/decision", dto.DecideNeedExpressionRequest{Outcome: domain.OutcomeApproved, Comment: &comment})
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(&approver, http.MethodPost, "/expressions/exp-1/decision", `{"outcome":"MAYBE"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestDecide_InsufficientRole() {
	s.expressions.On("Decide", mock.Anything, requester, "exp-1", domain.OutcomeRejected, (*string)(nil)).
		Return(nil, apperrors.ErrInsufficientRole).Once()

	w := s.do(&requester, http.MethodPost, "/expressions/exp-1/decision", `{"outcome":"REJECTED"}`)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("insufficient_role", s.decodeError(w).Code)
}

func (s *HandlersTestSuite) TestDeleteExpression() {
	s.expressions.On("DeleteNeedExpression", mock.Anything, requester, "exp-1").Return(nil).Once()

	w := s.do(&requester, http.MethodDelete, "/expressions/exp-1", nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestCreateOrder_ValidatesRates() {
	base := `{"expressionID":"exp-1","taxRate":"%s","discountRate":"%s","lines":[{"description":"A4","quantity":1,"unitPrice":"%s","materialID":"m"}]}`
	cases := map[string][3]string{
		"negative price":    {"20", "0", "-1"},
		"negative tax":      {"-5", "0", "1"},
		"discount over 100": {"20", "150", "1"},
	}
	for name, v := range cases {
		w := s.do(&admin, http.MethodPost, "/orders", fmt.Sprintf(base, v[0], v[1], v[2]))
		s.Equal(http.StatusBadRequest, w.Code, name)
	}
	s.orders.AssertNotCalled(s.T(), "CreatePurchaseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestCreateOrder_Success() {
	s.orders.On("CreatePurchaseOrder", mock.Anything, admin, mock.AnythingOfType("dto.CreatePurchaseOrderRequest")).
		Return(pendingOrder("po-1"), nil).Once()

	body := `{"expressionID":"exp-1","taxRate":"20","discountRate":"0","lines":[{"description":"A4 paper","quantity":10,"unitPrice":"2.50","materialID":"mat-paper"}]}`
	w := s.do(&admin, http.MethodPost, "/orders", body)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PurchaseOrderResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("BC-000007", resp.DisplayNumber)
	s.True(decimal.RequireFromString("30").Equal(resp.Totals.Total), resp.Totals.Total.String())
}

func (s *HandlersTestSuite) TestCreateOrder_AlreadyExists() {
	s.orders.On("CreatePurchaseOrder", mock.Anything, admin, mock.Anything).
		Return(nil, apperrors.ErrOrderAlreadyExists).Once()

	body := `{"expressionID":"exp-1","taxRate":"0","discountRate":"0","lines":[{"description":"A4","quantity":1,"unitPrice":"1","materialID":"m"}]}`
	w := s.do(&admin, http.MethodPost, "/orders", body)

	s.Equal(http.StatusConflict, w.Code)
	s.Equal("order_already_exists", s.decodeError(w).Code)
}

func (s *HandlersTestSuite) TestGetOrder_IncludesStats() {
	stats := &domain.FulfillmentStats{OrderID: "po-1", TotalRequested: 10, TotalReceived: 4, PercentGlobal: 40, ReceptionCount: 1, Status: domain.OrderPartiallyDelivered}
	s.orders.On("GetPurchaseOrder", mock.Anything, requester, "po-1").Return(pendingOrder("po-1"), nil).Once()
	s.orders.On("GetFulfillmentStats", mock.Anything, requester, "po-1").Return(stats, nil).Once()

	w := s.do(&requester, http.MethodGet, "/orders/po-1", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PurchaseOrderResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Stats)
	s.Equal(int64(40), resp.Stats.PercentGlobal)
}

func (s *HandlersTestSuite) TestRecordReception_Success() {
	req := dto.RecordReceptionRequest{Lines: []dto.ReceptionLineRequest{{OrderLineID: "ol-1", QuantityReceived: 4, QuantityAccepted: 4}}}
	reception := &domain.Reception{ReceptionID: "rc-1", Number: "3", OrderID: "po-1"}
	stats := &domain.FulfillmentStats{OrderID: "po-1", TotalRequested: 10, TotalReceived: 4, PercentGlobal: 40, ReceptionCount: 1, Status: domain.OrderPartiallyDelivered}
	s.receptions.On("RecordReception", mock.Anything, admin, "po-1", req).Return(reception, stats, nil).Once()

	w := s.do(&admin, http.MethodPost, "/orders/po-1/receptions", req)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.RecordReceptionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("BR-000003", resp.Reception.DisplayNumber)
	s.Equal(domain.OrderPartiallyDelivered, resp.Stats.Status)
}

func (s *HandlersTestSuite) TestRecordReception_OverDelivery() {
	s.receptions.On("RecordReception", mock.Anything, admin, "po-1", mock.Anything).
		Return(nil, nil, &apperrors.OverDeliveryError{OrderLineID: "ol-1", Requested: 5, Remaining: 2}).Once()

	body := `{"lines":[{"orderLineID":"ol-1","quantityReceived":5,"quantityAccepted":5,"quantityRejected":0}]}`
	w := s.do(&admin, http.MethodPost, "/orders/po-1/receptions", body)

	s.Require().Equal(http.StatusConflict, w.Code)
	resp := s.decodeError(w)
	s.Equal("over_delivery", resp.Code)
	s.Equal("ol-1", resp.Details["orderLineID"])
	s.EqualValues(2, resp.Details["remaining"])
}

func (s *HandlersTestSuite) TestRecordReception_ConformityMismatch() {
	s.receptions.On("RecordReception", mock.Anything, admin, "po-1", mock.Anything).
		Return(nil, nil, &apperrors.ConformityError{OrderLineID: "ol-1", Received: 5, Accepted: 3, Rejected: 1}).Once()

	body := `{"lines":[{"orderLineID":"ol-1","quantityReceived":5,"quantityAccepted":3,"quantityRejected":1}]}`
	w := s.do(&admin, http.MethodPost, "/orders/po-1/receptions", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("conformity_mismatch", s.decodeError(w).Code)
}

func (s *HandlersTestSuite) TestConfirmReception() {
	reception := &domain.Reception{ReceptionID: "rc-1", Number: "1", OrderID: "po-1", ConfirmationGenerated: true}
	s.receptions.On("MarkConfirmationGenerated", mock.Anything, admin, "rc-1").Return(reception, nil).Once()

	w := s.do(&admin, http.MethodPost, "/receptions/rc-1/confirmation", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ReceptionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.ConfirmationGenerated)
}

func (s *HandlersTestSuite) TestInfrastructureErrorIsHidden() {
	s.receptions.On("ListReceptionsByOrder", mock.Anything, admin, "po-1").
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "db down", errors.New("dial tcp 10.0.0.1:5432"))).Once()

	w := s.do(&admin, http.MethodGet, "/orders/po-1/receptions", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	resp := s.decodeError(w)
	s.Equal("internal_error", resp.Code)
	s.Equal("internal server error", resp.Error)
	s.NotContains(w.Body.String(), "10.0.0.1")
}
