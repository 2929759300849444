package usecase

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/order"
	"github.com/distromate/backoffice-service/internal/target"
	"github.com/distromate/backoffice-service/internal/target/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type targetUseCase struct {
	repo   target.Repository
	orders order.Repository
	logger *zap.Logger
}

func NewTargetUseCase(repo target.Repository, orders order.Repository, log *zap.Logger) target.UseCase {
	return &targetUseCase{
		repo:   repo,
		orders: orders,
		logger: log,
	}
}

func (uc *targetUseCase) CreateTarget(ctx context.Context, input *dto.CreateTargetInput) (*model.Target, error) {
	targetType := model.TargetType(input.Type)
	if !targetType.Valid() {
		return nil, apperr.Validation("target type must be orders, quantity or sales")
	}
	if !input.Value.IsPositive() {
		return nil, apperr.Validation("target value must be positive")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperr.Validation("end date cannot be before start date")
	}

	now := time.Now()
	t := &model.Target{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		UserID:    input.UserID,
		Type:      targetType,
		Value:     input.Value,
		ProductID: input.ProductID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Progress:  decimal.Zero,
		Achieved:  false,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, apperr.Internal("failed to create target: %v", err)
	}

	// Pick up any orders already inside the window.
	if err := uc.RecomputeForUser(ctx, input.UserID); err != nil {
		uc.logger.Warn("initial target recompute failed", zap.String("target_id", t.ID), zap.Error(err))
	}
	return t, nil
}

func (uc *targetUseCase) ListTargets(ctx context.Context) ([]model.Target, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list targets: %v", err)
	}
	return items, nil
}

func (uc *targetUseCase) ListUserTargets(ctx context.Context, userID string) ([]model.Target, error) {
	items, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to list user targets: %v", err)
	}
	return items, nil
}

func (uc *targetUseCase) DeleteTarget(ctx context.Context, id string) error {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load target: %v", err)
	}
	if t == nil {
		return apperr.NotFound("target not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete target: %v", err)
	}
	return nil
}

func (uc *targetUseCase) RecomputeForUser(ctx context.Context, userID string) error {
	now := time.Now()
	targets, err := uc.repo.FindActiveByUser(ctx, userID, now)
	if err != nil {
		return apperr.Internal("failed to load targets: %v", err)
	}

	for i := range targets {
		t := &targets[i]
		orders, err := uc.orders.FindByCreatorInWindow(ctx, userID, t.StartDate, t.EndDate)
		if err != nil {
			return apperr.Internal("failed to load orders for target %s: %v", t.ID, err)
		}

		t.Progress = progressOf(t, orders)
		t.Achieved = t.Progress.GreaterThanOrEqual(t.Value)
		t.UpdatedAt = now
		if err := uc.repo.Update(ctx, t); err != nil {
			return apperr.Internal("failed to update target %s: %v", t.ID, err)
		}
	}
	return nil
}

// progressOf folds the user's in-window orders into a single progress number.
// When the target is product-scoped, only orders whose cart contains that
// product count, and quantity sums only the matching lines. Unsettled orders
// contribute zero to sales progress.
func progressOf(t *model.Target, orders []model.Order) decimal.Decimal {
	progress := decimal.Zero
	for _, o := range orders {
		if t.ProductID != nil && !cartContains(o.Cart, *t.ProductID) {
			continue
		}
		switch t.Type {
		case model.TargetOrders:
			progress = progress.Add(decimal.NewFromInt(1))
		case model.TargetQuantity:
			for _, line := range o.Cart {
				if t.ProductID != nil && line.Product.ProductID != *t.ProductID {
					continue
				}
				progress = progress.Add(decimal.NewFromInt(line.Qty))
			}
		case model.TargetSales:
			if o.Payment.Valid {
				progress = progress.Add(o.Payment.Decimal)
			}
		}
	}
	return progress
}

func cartContains(cart model.CartLines, productID string) bool {
	for _, line := range cart {
		if line.Product.ProductID == productID {
			return true
		}
	}
	return false
}
