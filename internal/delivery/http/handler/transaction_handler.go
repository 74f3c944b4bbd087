package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rsaliba/exchange-service/internal/delivery/http/middleware"
	httpdto "github.com/rsaliba/exchange-service/internal/delivery/http/dto"
	"github.com/rsaliba/exchange-service/internal/usecase"
	transactiondto "github.com/rsaliba/exchange-service/internal/usecase/dto/transaction"
)

type TransactionHandler struct {
	trxUsecase usecase.TransactionUsecase
}

func NewTransactionHandler(trxUsecase usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{trxUsecase: trxUsecase}
}

// CreateTransaction serves POST /transaction: a teller's manual record of an
// exchange that happened outside the offer flow.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req httpdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload"})
		return
	}

	input := &transactiondto.CreateTransactionInput{
		LbpAmount: *req.LbpAmount,
		UsdAmount: *req.UsdAmount,
		UsdToLbp:  *req.UsdToLbp,
	}
	trx, err := h.trxUsecase.CreateTransaction(caller, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainTransaction(trx))
}

// GetTransactions serves GET /transaction.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	trxs, err := h.trxUsecase.ListTransactions(caller)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainTransactions(trxs))
}
