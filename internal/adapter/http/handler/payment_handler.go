package handler

import (
	"irispay/internal/adapter/http/dto"
	"irispay/internal/adapter/http/middleware"
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
	"irispay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler drives authorization attempts for authenticated clients.
type PaymentHandler struct {
	authorizer ports.PaymentAuthorizer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(authorizer ports.PaymentAuthorizer) *PaymentHandler {
	return &PaymentHandler{authorizer: authorizer}
}

// Scan handles POST /api/v1/payments/scan. Client only; starts an attempt
// bound to a pending payment request.
func (h *PaymentHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return
	}

	client := middleware.IdentityFrom(c)
	info, err := h.authorizer.Scan(c.Request.Context(), client, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAttemptResponse(info))
}

// Capture handles POST /api/v1/payments/:id/capture. The capture outcome
// drives the attempt to a terminal state (or leaves it awaiting another
// capture when the payer cancelled the scan).
func (h *PaymentHandler) Capture(c *gin.Context) {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid attempt id"))
		return
	}

	var req dto.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var result domain.CaptureResult
	switch domain.CaptureStatus(req.Status) {
	case domain.CaptureStatusKey:
		if req.Key == "" {
			response.Error(c, apperror.Validation("key is required for status KEY"))
			return
		}
		result = domain.CapturedKey(req.Key)
	case domain.CaptureStatusCancelled:
		result = domain.CaptureCancelled()
	case domain.CaptureStatusFailed:
		result = domain.CaptureFailure(req.Reason)
	}

	client := middleware.IdentityFrom(c)
	outcome, err := h.authorizer.Capture(c.Request.Context(), client.ID, attemptID, result)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOutcomeResponse(outcome))
}

// Cancel handles POST /api/v1/payments/:id/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid attempt id"))
		return
	}

	client := middleware.IdentityFrom(c)
	info, err := h.authorizer.CancelPayment(c.Request.Context(), client.ID, attemptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAttemptResponse(info))
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid attempt id"))
		return
	}

	client := middleware.IdentityFrom(c)
	info, err := h.authorizer.Attempt(c.Request.Context(), client.ID, attemptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAttemptResponse(info))
}
