package handler

import (
	"net/http"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/inventory"
	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

// ListMovements serves the stock ledger for one product, optionally
// narrowed to a date window or a customer.
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filters dto.MovementFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	filters.ProductID = c.Param("id")

	movements, err := h.uc.ListMovements(c.Request.Context(), &filters)
	if err != nil {
		h.logger.Error("failed to list movements", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "movements": movements})
}
