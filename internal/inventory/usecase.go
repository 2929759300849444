package inventory

import (
	"context"

	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
)

type UseCase interface {
	// AdjustStock moves stock for one product and records the movement.
	// Direction "decrease" is a sale, "increase" a return. A missing product
	// is a NotFound error and must abort the caller's higher-level step.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.Product, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)
}
