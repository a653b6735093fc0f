package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// needExpressionHandler handles HTTP requests related to need expressions.
type needExpressionHandler struct {
	expressionService portssvc.NeedExpressionSvcFacade
}

func newNeedExpressionHandler(es portssvc.NeedExpressionSvcFacade) *needExpressionHandler {
	return &needExpressionHandler{expressionService: es}
}

// RegisterNeedExpressionRoutes registers routes related to need expressions.
func RegisterNeedExpressionRoutes(rg *gin.RouterGroup, expressionService portssvc.NeedExpressionSvcFacade) {
	h := newNeedExpressionHandler(expressionService)

	expressions := rg.Group("/expressions")
	{
		expressions.POST("", h.createExpression)
		expressions.GET("", h.listExpressions)
		expressions.GET("/:expressionID", h.getExpression)
		expressions.PUT("/:expressionID", h.editExpression)
		expressions.DELETE("/:expressionID", h.deleteExpression)
		expressions.POST("/:expressionID/submit", h.submitExpression)
		expressions.POST("/:expressionID/withdraw", h.withdrawExpression)
		expressions.POST("/:expressionID/decision", h.decideExpression)
		expressions.POST("/:expressionID/reopen", h.reopenExpression)
		expressions.POST("/:expressionID/start", h.startExpression)
	}
}

// requireActor reads the authenticated actor, answering 401 when there is none.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: "unauthorized"})
	}
	return actor, ok
}

// createExpression godoc
// @Summary Create a need expression
// @Description Creates a draft need expression owned by the caller
// @Tags expressions
// @Accept  json
// @Produce  json
// @Param   expression body dto.CreateNeedExpressionRequest true "Expression details"
// @Success 201 {object} dto.NeedExpressionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown material"
// @Failure 403 {object} ErrorResponse "Role cannot create expressions"
// @Failure 404 {object} ErrorResponse "Division, service or material not found"
// @Security BearerAuth
// @Router /expressions [post]
func (h *needExpressionHandler) createExpression(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateNeedExpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expression, err := h.expressionService.CreateNeedExpression(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create need expression")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Need expression created", slog.String("expression_id", expression.ExpressionID))
	c.JSON(http.StatusCreated, dto.ToNeedExpressionResponse(expression))
}

// listExpressions godoc
// @Summary List need expressions
// @Description Lists expressions newest first. Requesters only ever see their own.
// @Tags expressions
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   mine query bool false "Only the caller's expressions"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListNeedExpressionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /expressions [get]
func (h *needExpressionHandler) listExpressions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListNeedExpressionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.expressionService.ListNeedExpressions(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list need expressions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExpression godoc
// @Summary Get a need expression
// @Tags expressions
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Expression not found"
// @Security BearerAuth
// @Router /expressions/{expressionID} [get]
func (h *needExpressionHandler) getExpression(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expression, err := h.expressionService.GetNeedExpression(c.Request.Context(), actor, c.Param("expressionID"))
	if err != nil {
		respondError(c, err, "Failed to get need expression")
		return
	}
	c.JSON(http.StatusOK, dto.ToNeedExpressionResponse(expression))
}

// editExpression godoc
// @Summary Edit a draft need expression
// @Description Replaces the lines and optionally the title. Only the owner, only in DRAFT.
// @Tags expressions
// @Accept  json
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Param   expression body dto.EditNeedExpressionRequest true "New content"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Not a draft"
// @Security BearerAuth
// @Router /expressions/{expressionID} [put]
func (h *needExpressionHandler) editExpression(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.EditNeedExpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	expression, err := h.expressionService.EditNeedExpression(c.Request.Context(), actor, c.Param("expressionID"), req)
	if err != nil {
		respondError(c, err, "Failed to edit need expression")
		return
	}
	c.JSON(http.StatusOK, dto.ToNeedExpressionResponse(expression))
}

// deleteExpression godoc
// @Summary Delete a draft need expression
// @Tags expressions
// @Param   expressionID path string true "Expression ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Not a draft"
// @Security BearerAuth
// @Router /expressions/{expressionID} [delete]
func (h *needExpressionHandler) deleteExpression(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.expressionService.DeleteNeedExpression(c.Request.Context(), actor, c.Param("expressionID")); err != nil {
		respondError(c, err, "Failed to delete need expression")
		return
	}
	c.Status(http.StatusNoContent)
}

// transition runs one lifecycle operation that takes no body.
func (h *needExpressionHandler) transition(c *gin.Context, name string, op func(domain.Actor, string) (*domain.NeedExpression, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expression, err := op(actor, c.Param("expressionID"))
	if err != nil {
		respondError(c, err, "Failed to "+name+" need expression")
		return
	}
	c.JSON(http.StatusOK, dto.ToNeedExpressionResponse(expression))
}

// submitExpression godoc
// @Summary Submit a draft for approval
// @Tags expressions
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /expressions/{expressionID}/submit [post]
func (h *needExpressionHandler) submitExpression(c *gin.Context) {
	h.transition(c, "submit", func(a domain.Actor, id string) (*domain.NeedExpression, error) {
		return h.expressionService.Submit(c.Request.Context(), a, id)
	})
}

// withdrawExpression godoc
// @Summary Withdraw a pending expression back to draft
// @Tags expressions
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /expressions/{expressionID}/withdraw [post]
func (h *needExpressionHandler) withdrawExpression(c *gin.Context) {
	h.transition(c, "withdraw", func(a domain.Actor, id string) (*domain.NeedExpression, error) {
		return h.expressionService.Withdraw(c.Request.Context(), a, id)
	})
}

// reopenExpression godoc
// @Summary Reopen a rejected expression as a draft
// @Tags expressions
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /expressions/{expressionID}/reopen [post]
func (h *needExpressionHandler) reopenExpression(c *gin.Context) {
	h.transition(c, "reopen", func(a domain.Actor, id string) (*domain.NeedExpression, error) {
		return h.expressionService.Reopen(c.Request.Context(), a, id)
	})
}

// startExpression godoc
// @Summary Mark an approved expression as in progress
// @Tags expressions
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 403 {object} ErrorResponse "Role cannot start progress"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /expressions/{expressionID}/start [post]
func (h *needExpressionHandler) startExpression(c *gin.Context) {
	h.transition(c, "start", func(a domain.Actor, id string) (*domain.NeedExpression, error) {
		return h.expressionService.MarkInProgress(c.Request.Context(), a, id)
	})
}

// decideExpression godoc
// @Summary Approve or reject a pending expression
// @Tags expressions
// @Accept  json
// @Produce  json
// @Param   expressionID path string true "Expression ID"
// @Param   decision body dto.DecideNeedExpressionRequest true "Outcome and optional comment"
// @Success 200 {object} dto.NeedExpressionResponse
// @Failure 400 {object} ErrorResponse "Invalid outcome"
// @Failure 403 {object} ErrorResponse "Role cannot decide"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /expressions/{expressionID}/decision [post]
func (h *needExpressionHandler) decideExpression(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.DecideNeedExpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	expression, err := h.expressionService.Decide(c.Request.Context(), actor, c.Param("expressionID"), req.Outcome, req.Comment)
	if err != nil {
		respondError(c, err, "Failed to decide need expression")
		return
	}
	c.JSON(http.StatusOK, dto.ToNeedExpressionResponse(expression))
}
