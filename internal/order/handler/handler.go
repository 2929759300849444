package handler

import (
	"net/http"
	"strconv"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/order"
	"github.com/distromate/backoffice-service/internal/order/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

// FillCart adds items to the customer's open cart, creating one when needed.
func (h *OrderHandler) FillCart(c *gin.Context) {
	var input dto.FillCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.CustomerID = c.Param("id")

	o, err := h.uc.FillCart(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to fill cart", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *OrderHandler) RemoveCartLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "line index must be a number"})
		return
	}

	o, err := h.uc.RemoveCartLine(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.logger.Error("failed to remove cart line", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *OrderHandler) Finalize(c *gin.Context) {
	var input dto.FinalizeOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.ID = c.Param("id")

	o, err := h.uc.Finalize(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to finalize order", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.uc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete order", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
