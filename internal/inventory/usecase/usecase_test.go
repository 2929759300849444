package usecase

import (
	"context"
	"testing"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInventoryRepo struct {
	products  map[string]*model.Product
	movements []model.StockMovement
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{products: map[string]*model.Product{}}
}

func (f *fakeInventoryRepo) AdjustStockWithMovement(ctx context.Context, productID string, delta int64, movement *model.StockMovement) (*model.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	p.StockQty += delta
	p.InStock = p.StockQty > 0
	movement.StockQtyLeft = p.StockQty
	f.movements = append(f.movements, *movement)
	return p, nil
}

func (f *fakeInventoryRepo) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	return f.movements, nil
}

func TestAdjustStockConsistency(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.products["p1"] = &model.Product{BaseModel: model.BaseModel{ID: "p1"}, StockQty: 10, InStock: true}
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())
	ctx := context.Background()

	steps := []struct {
		direction dto.Direction
		qty       int64
	}{
		{dto.DirectionDecrease, 4},
		{dto.DirectionDecrease, 3},
		{dto.DirectionIncrease, 2},
		{dto.DirectionDecrease, 5},
		{dto.DirectionIncrease, 1},
	}

	expected := int64(10)
	for _, step := range steps {
		if step.direction == dto.DirectionDecrease {
			expected -= step.qty
		} else {
			expected += step.qty
		}
		p, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
			CustomerID: "c1",
			ProductID:  "p1",
			Qty:        step.qty,
			Direction:  step.direction,
		})
		require.NoError(t, err)
		assert.Equal(t, expected, p.StockQty)
		assert.Equal(t, expected > 0, p.InStock, "in_stock must track stock_qty after every call")
	}
}

func TestAdjustStockMovementSigns(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.products["p1"] = &model.Product{BaseModel: model.BaseModel{ID: "p1"}, StockQty: 10, InStock: true}
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())
	ctx := context.Background()

	_, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{CustomerID: "c1", ProductID: "p1", Qty: 4, Direction: dto.DirectionDecrease})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{CustomerID: "c1", ProductID: "p1", Qty: 4, Direction: dto.DirectionIncrease})
	require.NoError(t, err)

	require.Len(t, repo.movements, 2)
	assert.Equal(t, int64(4), repo.movements[0].SoldQty, "a sale records the sold quantity as positive")
	assert.Equal(t, int64(6), repo.movements[0].StockQtyLeft)
	assert.Equal(t, int64(-4), repo.movements[1].SoldQty, "a return records a negative sold quantity")
	assert.Equal(t, int64(10), repo.movements[1].StockQtyLeft)
}

func TestAdjustStockMissingProduct(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		CustomerID: "c1",
		ProductID:  "missing",
		Qty:        1,
		Direction:  dto.DirectionDecrease,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, repo.movements)
}

func TestAdjustStockRejectsBadInput(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.products["p1"] = &model.Product{BaseModel: model.BaseModel{ID: "p1"}, StockQty: 10, InStock: true}
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())
	ctx := context.Background()

	_, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{ProductID: "p1", Qty: 0, Direction: dto.DirectionDecrease})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{ProductID: "p1", Qty: 1, Direction: "sideways"})
	assert.True(t, apperr.IsValidation(err))

	assert.Equal(t, int64(10), repo.products["p1"].StockQty)
}

func TestAdjustStockAllowsNegativeStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.products["p1"] = &model.Product{BaseModel: model.BaseModel{ID: "p1"}, StockQty: 2, InStock: true}
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	p, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		CustomerID: "c1",
		ProductID:  "p1",
		Qty:        5,
		Direction:  dto.DirectionDecrease,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), p.StockQty, "backorders are allowed to drive stock negative")
	assert.False(t, p.InStock)
}
