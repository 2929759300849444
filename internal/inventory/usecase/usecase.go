package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/inventory"
	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Locker is satisfied by *redislock.Client. Nil disables locking (tests).
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type inventoryUseCase struct {
	repo   inventory.Repository
	locker Locker
	logger *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, locker Locker, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		locker: locker,
		logger: log,
	}
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.Product, error) {
	if input.Qty <= 0 {
		return nil, apperr.Validation("quantity must be a positive number")
	}

	var delta, soldQty int64
	switch input.Direction {
	case dto.DirectionDecrease:
		// Sale: stock goes down, movement records the sold quantity.
		delta = -input.Qty
		soldQty = input.Qty
	case dto.DirectionIncrease:
		// Return: stock comes back, movement records a negative sold quantity.
		delta = input.Qty
		soldQty = -input.Qty
	default:
		return nil, apperr.Validation("direction must be increase or decrease")
	}

	if uc.locker != nil {
		lockKey := fmt.Sprintf("lock:stock:%s", input.ProductID)
		lock, err := uc.locker.Obtain(ctx, lockKey, 5*time.Second, &redislock.Options{
			RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 3),
		})
		if err == redislock.ErrNotObtained {
			return nil, apperr.Conflict("stock for this product is being adjusted, please retry")
		}
		if err != nil {
			return nil, apperr.Internal("failed to acquire stock lock: %v", err)
		}
		defer lock.Release(ctx)
	}

	movement := &model.StockMovement{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		CustomerID: input.CustomerID,
		SoldQty:    soldQty,
		CreatedAt:  time.Now(),
	}

	product, err := uc.repo.AdjustStockWithMovement(ctx, input.ProductID, delta, movement)
	if err != nil {
		return nil, apperr.Internal("stock adjustment failed: %v", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	uc.logger.Debug("stock adjusted",
		zap.String("product_id", input.ProductID),
		zap.Int64("delta", delta),
		zap.Int64("stock_qty", product.StockQty),
	)
	return product, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	items, err := uc.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, apperr.Internal("failed to list stock movements: %v", err)
	}
	return items, nil
}
