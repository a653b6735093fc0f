package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// errorMapping is checked in order; the first sentinel err wraps wins.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found"},
	{apperrors.ErrConformityMismatch, http.StatusBadRequest, "conformity_mismatch"},
	{apperrors.ErrEmptyReception, http.StatusBadRequest, "empty_reception"},
	{apperrors.ErrValidation, http.StatusBadRequest, "validation_error"},
	{apperrors.ErrNotOwner, http.StatusForbidden, "not_owner"},
	{apperrors.ErrInsufficientRole, http.StatusForbidden, "insufficient_role"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{apperrors.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{apperrors.ErrExpressionNotApproved, http.StatusConflict, "expression_not_approved"},
	{apperrors.ErrOrderAlreadyExists, http.StatusConflict, "order_already_exists"},
	{apperrors.ErrOverDelivery, http.StatusConflict, "over_delivery"},
	{apperrors.ErrOrderCancelled, http.StatusConflict, "order_cancelled"},
	{apperrors.ErrRegenerationConflict, http.StatusConflict, "regeneration_conflict"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict"},
	{apperrors.ErrDuplicate, http.StatusConflict, "duplicate"},
}

// classifyError maps a service error to its HTTP status and the response body.
func classifyError(err error) (int, ErrorResponse) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return m.status, ErrorResponse{Error: err.Error(), Code: m.code, Details: errorDetails(err)}
		}
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
		return appErr.Code, ErrorResponse{Error: appErr.Message, Code: "bad_request"}
	}
	// Infrastructure detail stays in the log
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal_error"}
}

func errorDetails(err error) map[string]any {
	var transition *apperrors.TransitionError
	var overDelivery *apperrors.OverDeliveryError
	var conformity *apperrors.ConformityError
	var regeneration *apperrors.RegenerationConflictError
	switch {
	case errors.As(err, &transition):
		return map[string]any{"entity": transition.Entity, "current": transition.Current, "attempted": transition.Attempted}
	case errors.As(err, &overDelivery):
		return map[string]any{"orderLineID": overDelivery.OrderLineID, "requested": overDelivery.Requested, "remaining": overDelivery.Remaining}
	case errors.As(err, &conformity):
		return map[string]any{
			"orderLineID": conformity.OrderLineID,
			"received":    conformity.Received,
			"accepted":    conformity.Accepted,
			"rejected":    conformity.Rejected,
		}
	case errors.As(err, &regeneration):
		return map[string]any{
			"orderLineID": regeneration.OrderLineID,
			"description": regeneration.Description,
			"requested":   regeneration.Requested,
			"received":    regeneration.Received,
			"reason":      regeneration.Reason,
		}
	}
	return nil
}

// respondError logs err at a level matching its class and writes the error body.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, body := classifyError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.String("code", body.Code))
	}
	c.JSON(status, body)
}

// respondBindError reports a malformed body or query.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: "validation_error"})
}
