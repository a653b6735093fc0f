package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders and their receptions.
type purchaseOrderHandler struct {
	orderService     portssvc.PurchaseOrderSvcFacade
	receptionService portssvc.ReceptionSvcFacade
}

func newPurchaseOrderHandler(os portssvc.PurchaseOrderSvcFacade, rs portssvc.ReceptionSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{orderService: os, receptionService: rs}
}

// RegisterPurchaseOrderRoutes registers routes related to purchase orders.
func RegisterPurchaseOrderRoutes(rg *gin.RouterGroup, orderService portssvc.PurchaseOrderSvcFacade, receptionService portssvc.ReceptionSvcFacade) {
	h := newPurchaseOrderHandler(orderService, receptionService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.PUT("/:orderID", h.regenerateOrder)
		orders.POST("/:orderID/cancel", h.cancelOrder)
		orders.GET("/:orderID/stats", h.getOrderStats)
		orders.GET("/:orderID/document", h.getOrderDocument)
		orders.POST("/:orderID/receptions", h.recordReception)
		orders.GET("/:orderID/receptions", h.listReceptions)
	}
}

// createOrder godoc
// @Summary Create a purchase order
// @Description Converts an approved expression into an order and moves the expression to IN_PROGRESS
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Order terms and lines"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Role cannot manage orders"
// @Failure 404 {object} ErrorResponse "Expression, supplier or material not found"
// @Failure 409 {object} ErrorResponse "Expression not approved or order already exists"
// @Security BearerAuth
// @Router /orders [post]
func (h *purchaseOrderHandler) createOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create purchase order")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order, nil, h.orderService.CurrencyPlaces()))
}

// listOrders godoc
// @Summary List purchase orders
// @Tags orders
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   expressionID query string false "Originating expression"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /orders [get]
func (h *purchaseOrderHandler) listOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListPurchaseOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.orderService.ListPurchaseOrders(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getOrder godoc
// @Summary Get a purchase order with totals and progress
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *purchaseOrderHandler) getOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	orderID := c.Param("orderID")

	order, err := h.orderService.GetPurchaseOrder(ctx, actor, orderID)
	if err != nil {
		respondError(c, err, "Failed to get purchase order")
		return
	}
	stats, err := h.orderService.GetFulfillmentStats(ctx, actor, orderID)
	if err != nil {
		respondError(c, err, "Failed to compute purchase order progress")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, stats, h.orderService.CurrencyPlaces()))
}

// regenerateOrder godoc
// @Summary Regenerate a purchase order
// @Description Overwrites terms and lines; received quantities carry over to matching lines
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   order body dto.RegeneratePurchaseOrderRequest true "New terms and lines"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Cancelled order or conflict with receptions"
// @Security BearerAuth
// @Router /orders/{orderID} [put]
func (h *purchaseOrderHandler) regenerateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RegeneratePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := h.orderService.RegeneratePurchaseOrder(c.Request.Context(), actor, c.Param("orderID"), req)
	if err != nil {
		respondError(c, err, "Failed to regenerate purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, nil, h.orderService.CurrencyPlaces()))
}

// cancelOrder godoc
// @Summary Cancel a purchase order
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 409 {object} ErrorResponse "Order cannot be cancelled"
// @Security BearerAuth
// @Router /orders/{orderID}/cancel [post]
func (h *purchaseOrderHandler) cancelOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, err := h.orderService.CancelPurchaseOrder(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to cancel purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, nil, h.orderService.CurrencyPlaces()))
}

// getOrderStats godoc
// @Summary Delivery progress of a purchase order
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} domain.FulfillmentStats
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID}/stats [get]
func (h *purchaseOrderHandler) getOrderStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	stats, err := h.orderService.GetFulfillmentStats(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to compute purchase order progress")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getOrderDocument godoc
// @Summary Resolved document view of a purchase order
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderDocument
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID}/document [get]
func (h *purchaseOrderHandler) getOrderDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	doc, err := h.orderService.GetOrderDocument(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to build order document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// recordReception godoc
// @Summary Record a delivery against a purchase order
// @Tags receptions
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   reception body dto.RecordReceptionRequest true "Delivered quantities per order line"
// @Success 201 {object} dto.RecordReceptionResponse
// @Failure 400 {object} ErrorResponse "Conformity mismatch or empty reception"
// @Failure 409 {object} ErrorResponse "Over-delivery or cancelled order"
// @Security BearerAuth
// @Router /orders/{orderID}/receptions [post]
func (h *purchaseOrderHandler) recordReception(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RecordReceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	reception, stats, err := h.receptionService.RecordReception(c.Request.Context(), actor, c.Param("orderID"), req)
	if err != nil {
		respondError(c, err, "Failed to record reception")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordReceptionResponse{
		Reception: dto.ToReceptionResponse(reception),
		Stats:     stats,
	})
}

// listReceptions godoc
// @Summary List the receptions of a purchase order
// @Tags receptions
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {array} dto.ReceptionResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID}/receptions [get]
func (h *purchaseOrderHandler) listReceptions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	receptions, err := h.receptionService.ListReceptionsByOrder(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to list receptions")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceptionResponses(receptions))
}
