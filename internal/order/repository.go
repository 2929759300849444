package order

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	// FindOpenCartByCustomer returns the customer's open cart, nil when the
	// customer has none.
	FindOpenCartByCustomer(ctx context.Context, customerID string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id string) error

	// NextOrderNumber is max(order_number)+1 across all orders. A unique
	// index backs it; the residual race between two finalizations surfaces
	// as a unique violation on update.
	NextOrderNumber(ctx context.Context) (int64, error)

	// FindByCreatorInWindow lists a user's orders created inside [from, to],
	// for target progress aggregation.
	FindByCreatorInWindow(ctx context.Context, createdBy string, from, to time.Time) ([]model.Order, error)

	// FindDueUnpaid lists saved orders with no recorded payment whose
	// delivery date falls in [from, to).
	FindDueUnpaid(ctx context.Context, from, to time.Time) ([]model.Order, error)
}
