package inventory

import (
	"context"

	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
)

type Repository interface {
	// AdjustStockWithMovement applies a signed stock delta atomically in the
	// database, recomputes in_stock, fills movement.StockQtyLeft with the
	// resulting level and records the movement in the same transaction.
	// Returns (nil, nil) when the product does not exist.
	AdjustStockWithMovement(ctx context.Context, productID string, delta int64, movement *model.StockMovement) (*model.Product, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)
}
