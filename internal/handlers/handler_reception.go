package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type receptionHandler struct {
	receptionService portssvc.ReceptionSvcFacade
}

// RegisterReceptionRoutes registers routes addressing a reception directly.
func RegisterReceptionRoutes(rg *gin.RouterGroup, receptionService portssvc.ReceptionSvcFacade) {
	h := &receptionHandler{receptionService: receptionService}

	receptions := rg.Group("/receptions")
	{
		receptions.GET("/:receptionID", h.getReception)
		receptions.POST("/:receptionID/confirmation", h.confirmReception)
	}
}

// getReception godoc
// @Summary Get a reception
// @Tags receptions
// @Produce  json
// @Param   receptionID path string true "Reception ID"
// @Success 200 {object} dto.ReceptionResponse
// @Failure 404 {object} ErrorResponse "Reception not found"
// @Security BearerAuth
// @Router /receptions/{receptionID} [get]
func (h *receptionHandler) getReception(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	reception, err := h.receptionService.GetReception(c.Request.Context(), actor, c.Param("receptionID"))
	if err != nil {
		respondError(c, err, "Failed to get reception")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceptionResponse(reception))
}

// confirmReception godoc
// @Summary Mark a reception's confirmation document as generated
// @Description Idempotent; the flag never goes back to false
// @Tags receptions
// @Produce  json
// @Param   receptionID path string true "Reception ID"
// @Success 200 {object} dto.ReceptionResponse
// @Failure 403 {object} ErrorResponse "Role cannot confirm receptions"
// @Failure 404 {object} ErrorResponse "Reception not found"
// @Security BearerAuth
// @Router /receptions/{receptionID}/confirmation [post]
func (h *receptionHandler) confirmReception(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	reception, err := h.receptionService.MarkConfirmationGenerated(c.Request.Context(), actor, c.Param("receptionID"))
	if err != nil {
		respondError(c, err, "Failed to confirm reception")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceptionResponse(reception))
}
