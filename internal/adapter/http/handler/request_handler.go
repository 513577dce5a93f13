package handler

import (
	"irispay/internal/adapter/http/dto"
	"irispay/internal/adapter/http/middleware"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
	"irispay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles merchant payment-request endpoints.
type RequestHandler struct {
	requests ports.RequestRegistry
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requests ports.RequestRegistry) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// Create handles POST /api/v1/requests. Merchant only.
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	merchant := middleware.IdentityFrom(c)
	created, err := h.requests.Create(c.Request.Context(), merchant.ID, req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewPaymentRequestResponse(created))
}

// Get handles GET /api/v1/requests/:id. Merchant only; lets the merchant
// observe a request's resolution. A foreign merchant's request is
// indistinguishable from a missing one.
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return
	}

	merchant := middleware.IdentityFrom(c)
	req, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if req == nil || req.MerchantID != merchant.ID {
		response.Error(c, apperror.ErrNotFound("Payment request"))
		return
	}

	response.OK(c, dto.NewPaymentRequestResponse(req))
}

// List handles GET /api/v1/requests. Merchant only; returns the merchant's
// own requests in creation order.
func (h *RequestHandler) List(c *gin.Context) {
	merchant := middleware.IdentityFrom(c)
	requests, err := h.requests.ListByMerchant(c.Request.Context(), merchant.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewPaymentRequestResponse(&requests[i]))
	}
	response.OK(c, items)
}
