package handler

import (
	"net/http"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/distromate/backoffice-service/internal/transaction/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	uc     transaction.UseCase
	logger *zap.Logger
}

func NewTransactionHandler(uc transaction.UseCase, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, logger: log}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var input dto.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	t, err := h.uc.CreateTransaction(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create transaction", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": t})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete transaction", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TransactionHandler) List(c *gin.Context) {
	items, err := h.uc.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": items})
}

func (h *TransactionHandler) ListToday(c *gin.Context) {
	items, err := h.uc.ListTodayTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list today's transactions", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": items})
}

// ListRange serves transactions between the from/to query dates, inclusive.
func (h *TransactionHandler) ListRange(c *gin.Context) {
	var query struct {
		From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
		To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	items, err := h.uc.ListTransactionsRange(c.Request.Context(), query.From, query.To)
	if err != nil {
		h.logger.Error("failed to list transactions in range", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": items})
}
