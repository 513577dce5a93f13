package handler

import (
	"irispay/internal/adapter/http/dto"
	"irispay/internal/adapter/http/middleware"
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
	"irispay/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and transaction-history endpoints.
type WalletHandler struct {
	ledger ports.LedgerStore
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.LedgerStore) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// Fund handles POST /api/v1/wallets/fund. Client only.
func (h *WalletHandler) Fund(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	client := middleware.IdentityFrom(c)
	balance, err := h.ledger.Credit(c.Request.Context(), client.ID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.ledger.Snapshot(c.Request.Context(), client.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance:  balance,
		Currency: snapshot.Currency,
	})
}

// Balance handles GET /api/v1/wallets/balance. Client only.
func (h *WalletHandler) Balance(c *gin.Context) {
	client := middleware.IdentityFrom(c)
	snapshot, err := h.ledger.Snapshot(c.Request.Context(), client.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance:  snapshot.Balance,
		Currency: snapshot.Currency,
	})
}

// Transactions handles GET /api/v1/transactions. Clients see their own
// completed history; merchants see their settlement record.
func (h *WalletHandler) Transactions(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var history []domain.Transaction
	if identity.IsMerchant() {
		record, err := h.ledger.MerchantRecord(c.Request.Context(), identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		history = record
	} else {
		snapshot, err := h.ledger.Snapshot(c.Request.Context(), identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		history = snapshot.History
	}

	items := make([]dto.TransactionResponse, 0, len(history))
	for i := range history {
		items = append(items, dto.NewTransactionResponse(&history[i]))
	}
	response.OK(c, dto.TransactionListResponse{
		Items: items,
		Total: len(items),
	})
}
