package handler

import (
	"net/http"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/payment"
	"github.com/distromate/backoffice-service/internal/payment/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	uc     payment.UseCase
	logger *zap.Logger
}

func NewPaymentHandler(uc payment.UseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: log}
}

// ApplyFirstPayment records the single-shot settlement of an order.
func (h *PaymentHandler) ApplyFirstPayment(c *gin.Context) {
	var input dto.ApplyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.OrderID = c.Param("id")

	o, err := h.uc.ApplyFirstPayment(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to apply payment", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *PaymentHandler) ApplyRepayment(c *gin.Context) {
	var input dto.ApplyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.OrderID = c.Param("id")

	o, err := h.uc.ApplyRepayment(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to apply repayment", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}
