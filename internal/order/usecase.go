package order

import (
	"context"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/order/dto"
)

type UseCase interface {
	// FillCart moves stock for every item and merges the items into the
	// customer's open cart, creating one when none exists. The customer and
	// every referenced product must exist or the whole call fails before any
	// stock moves.
	FillCart(ctx context.Context, input *dto.FillCartInput) (*model.Order, error)

	// RemoveCartLine returns the line's stock and drops the line.
	RemoveCartLine(ctx context.Context, orderID string, index int) (*model.Order, error)

	// Finalize freezes pricing from the cart snapshots, assigns the order
	// number and marks the order saved. The receipt notification is
	// dispatched detached and best-effort.
	Finalize(ctx context.Context, input *dto.FinalizeOrderInput) (*model.Order, error)

	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)

	// DeleteOrder reverses every cart line's stock effect, each line
	// independently, and deletes the order. The first reversal failure is
	// reported after the whole loop has run.
	DeleteOrder(ctx context.Context, id string) error
}
