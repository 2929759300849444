package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/customer"
	"github.com/distromate/backoffice-service/internal/inventory"
	invdto "github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/notifier"
	"github.com/distromate/backoffice-service/internal/order"
	"github.com/distromate/backoffice-service/internal/order/dto"
	"github.com/distromate/backoffice-service/internal/product"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TargetRecomputer refreshes a user's target progress after cart mutations.
// Failures are logged, never propagated.
type TargetRecomputer interface {
	RecomputeForUser(ctx context.Context, userID string) error
}

type orderUseCase struct {
	repo      order.Repository
	customers customer.Repository
	products  product.Repository
	inventory inventory.UseCase
	targets   TargetRecomputer
	notifier  notifier.Notifier
	logger    *zap.Logger
}

func NewOrderUseCase(
	repo order.Repository,
	customers customer.Repository,
	products product.Repository,
	inv inventory.UseCase,
	targets TargetRecomputer,
	n notifier.Notifier,
	log *zap.Logger,
) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		customers: customers,
		products:  products,
		inventory: inv,
		targets:   targets,
		notifier:  n,
		logger:    log,
	}
}

func (uc *orderUseCase) FillCart(ctx context.Context, input *dto.FillCartInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperr.Validation("at least one cart item is required")
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, apperr.Validation("item quantity must be positive")
		}
	}

	cust, err := uc.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, apperr.Internal("failed to load customer: %v", err)
	}
	if cust == nil {
		return nil, apperr.NotFound("customer not found")
	}

	// Every referenced product must exist before any stock moves; the
	// snapshots taken here are what the cart lines freeze.
	snapshots := make(map[string]model.ProductSnapshot, len(input.Items))
	for _, item := range input.Items {
		p, err := uc.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, apperr.Internal("failed to load product: %v", err)
		}
		if p == nil {
			return nil, apperr.NotFound("product not found")
		}
		snapshots[item.ProductID] = model.ProductSnapshot{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Discount:  p.Discount,
		}
	}

	o, err := uc.repo.FindOpenCartByCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, apperr.Internal("failed to load open cart: %v", err)
	}
	isNew := o == nil
	if isNew {
		now := time.Now()
		o = &model.Order{
			BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			CustomerID: input.CustomerID,
			CreatedBy:  auth.ActorID(ctx),
			Cart:       model.CartLines{},
			Status:     model.OrderOpen,
		}
	}

	for _, item := range input.Items {
		if _, err := uc.inventory.AdjustStock(ctx, &invdto.AdjustStockInput{
			CustomerID: input.CustomerID,
			ProductID:  item.ProductID,
			Qty:        item.Qty,
			Direction:  invdto.DirectionDecrease,
		}); err != nil {
			return nil, err
		}

		merged := false
		for i := range o.Cart {
			if o.Cart[i].Product.ProductID == item.ProductID {
				o.Cart[i].Qty += item.Qty
				merged = true
				break
			}
		}
		if !merged {
			o.Cart = append(o.Cart, model.CartLine{Product: snapshots[item.ProductID], Qty: item.Qty})
		}
	}

	o.UpdatedAt = time.Now()
	if isNew {
		err = uc.repo.Create(ctx, o)
	} else {
		err = uc.repo.Update(ctx, o)
	}
	if err != nil {
		return nil, apperr.Internal("failed to save cart: %v", err)
	}

	uc.recomputeTargets(ctx, auth.ActorID(ctx))
	return o, nil
}

func (uc *orderUseCase) RemoveCartLine(ctx context.Context, orderID string, index int) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	if index < 0 || index >= len(o.Cart) {
		return nil, apperr.NotFound("cart item not found")
	}

	line := o.Cart[index]
	if _, err := uc.inventory.AdjustStock(ctx, &invdto.AdjustStockInput{
		CustomerID: o.CustomerID,
		ProductID:  line.Product.ProductID,
		Qty:        line.Qty,
		Direction:  invdto.DirectionIncrease,
	}); err != nil {
		return nil, err
	}

	o.Cart = append(o.Cart[:index], o.Cart[index+1:]...)
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, apperr.Internal("failed to update cart: %v", err)
	}

	uc.recomputeTargets(ctx, auth.ActorID(ctx))
	return o, nil
}

func (uc *orderUseCase) Finalize(ctx context.Context, input *dto.FinalizeOrderInput) (*model.Order, error) {
	if input.DeliveryDate == nil {
		return nil, apperr.Validation("delivery date is required")
	}

	o, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	if o.Status == model.OrderSaved {
		return nil, apperr.Conflict("order is already finalized")
	}
	if len(o.Cart) == 0 {
		return nil, apperr.Validation("cannot finalize an empty cart")
	}

	number, err := uc.repo.NextOrderNumber(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to assign order number: %v", err)
	}

	price := decimal.Zero
	discount := decimal.Zero
	for _, line := range o.Cart {
		qty := decimal.NewFromInt(line.Qty)
		price = price.Add(line.Product.Price.Mul(qty))
		discount = discount.Add(line.Product.Discount.Mul(qty))
	}
	discount = discount.Add(input.AdditionalDiscount)

	o.OrderNumber = &number
	o.Price = price
	o.Discount = discount
	o.Status = model.OrderSaved
	o.DeliveryStatus = false
	o.DeliveryDate = input.DeliveryDate
	o.Message = input.Message
	o.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, o); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.Conflict("order number was taken by a concurrent finalization, retry")
		}
		return nil, apperr.Internal("failed to finalize order: %v", err)
	}

	cust, err := uc.customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return nil, apperr.Internal("order finalized but customer lookup failed: %v", err)
	}
	if cust != nil {
		cust.Orders = append(cust.Orders, o.ID)
		cust.UpdatedAt = time.Now()
		if err := uc.customers.Update(ctx, cust); err != nil {
			return nil, apperr.Internal("order finalized but customer update failed: %v", err)
		}
		uc.dispatchReceipt(o, cust)
	}

	uc.recomputeTargets(ctx, o.CreatedBy)
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list orders: %v", err)
	}
	return items, nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id string) error {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return apperr.NotFound("order not found")
	}

	cust, err := uc.customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return apperr.Internal("failed to load customer: %v", err)
	}
	if cust != nil {
		kept := cust.Orders[:0]
		for _, ref := range cust.Orders {
			if ref != id {
				kept = append(kept, ref)
			}
		}
		cust.Orders = kept
		cust.UpdatedAt = time.Now()
		if err := uc.customers.Update(ctx, cust); err != nil {
			return apperr.Internal("failed to update customer: %v", err)
		}
	}

	// Reverse each line independently; a missing product must not lose the
	// reversals for the remaining lines. Only the first failure is reported.
	var firstErr error
	for _, line := range o.Cart {
		if _, err := uc.inventory.AdjustStock(ctx, &invdto.AdjustStockInput{
			CustomerID: o.CustomerID,
			ProductID:  line.Product.ProductID,
			Qty:        line.Qty,
			Direction:  invdto.DirectionIncrease,
		}); err != nil {
			uc.logger.Warn("stock reversal failed during order delete",
				zap.String("order_id", id),
				zap.String("product_id", line.Product.ProductID),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete order: %v", err)
	}
	return firstErr
}

// dispatchReceipt fires the receipt message on a detached context so the
// finalization response never waits on, or fails because of, the broker.
func (uc *orderUseCase) dispatchReceipt(o *model.Order, cust *model.Customer) {
	if uc.notifier == nil {
		return
	}
	text := notifier.ReceiptText(o, cust)
	contact := cust.Contact
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.notifier.Send(ctx, contact, text); err != nil {
			uc.logger.Warn("receipt notification failed",
				zap.String("order_id", o.ID),
				zap.Error(err))
		}
	}()
}

func (uc *orderUseCase) recomputeTargets(ctx context.Context, userID string) {
	if uc.targets == nil || userID == "" {
		return
	}
	if err := uc.targets.RecomputeForUser(ctx, userID); err != nil {
		uc.logger.Warn("target recompute failed", zap.String("user_id", userID), zap.Error(err))
	}
}
