package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/product"
	"github.com/distromate/backoffice-service/internal/product/dto"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const listCacheKey = "products:list"

type productUseCase struct {
	repo         product.Repository
	transactions transaction.Repository
	cache        *redis.Client
	logger       *zap.Logger
}

func NewProductUseCase(repo product.Repository, transactions transaction.Repository, cache *redis.Client, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:         repo,
		transactions: transactions,
		cache:        cache,
		logger:       log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.StockQty <= 0 || !input.TotalBill.IsPositive() || !input.Price.IsPositive() {
		return nil, apperr.Validation("price, stock quantity and total bill must be positive")
	}

	existing, err := uc.repo.FindByNameCategory(ctx, input.Name, input.Category)
	if err != nil {
		return nil, apperr.Internal("failed to check product: %v", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("product already exists")
	}

	now := time.Now()
	purchasePrice := input.TotalBill.Div(decimal.NewFromInt(input.StockQty))
	p := &model.Product{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		Discount:      input.Discount,
		StockQty:      input.StockQty,
		InStock:       input.StockQty > 0,
		PurchasePrice: purchasePrice,
		History: model.RestockHistory{{
			Qty:           input.StockQty,
			TotalBill:     input.TotalBill,
			PurchasePrice: purchasePrice,
			Date:          now,
		}},
		CreatedBy: auth.ActorID(ctx),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperr.Internal("failed to create product: %v", err)
	}

	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        model.TransactionInvestment,
		Amount:      input.TotalBill,
		Description: fmt.Sprintf("added new product %s (%s)", p.Name, p.Category),
		CreatedBy:   auth.ActorID(ctx),
	}
	if err := uc.transactions.Create(ctx, t); err != nil {
		// The product is already committed; surface the failure without undoing it.
		return nil, apperr.Internal("product created but investment transaction failed: %v", err)
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load product: %v", err)
	}
	if p == nil {
		return nil, apperr.NotFound("target product not found")
	}

	p.Name = input.Name
	p.Category = input.Category
	p.Price = input.Price
	p.StockQty = input.StockQty
	p.InStock = input.StockQty > 0
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperr.Internal("failed to update product: %v", err)
	}
	uc.invalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) RestockProduct(ctx context.Context, input *dto.RestockProductInput) (*model.Product, error) {
	if input.StockQty <= 0 || !input.TotalBill.IsPositive() || !input.Price.IsPositive() {
		return nil, apperr.Validation("price, stock quantity and total bill must be positive")
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load product: %v", err)
	}
	if p == nil {
		return nil, apperr.NotFound("target product not found")
	}

	now := time.Now()
	purchasePrice := input.TotalBill.Div(decimal.NewFromInt(input.StockQty))
	p.History = append(p.History, model.RestockEvent{
		Qty:           input.StockQty,
		TotalBill:     input.TotalBill,
		PurchasePrice: purchasePrice,
		Date:          now,
	})
	p.StockQty += input.StockQty
	p.InStock = p.StockQty > 0
	p.Price = input.Price
	p.Discount = input.Discount
	p.PurchasePrice = purchasePrice
	p.UpdatedAt = now

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperr.Internal("failed to restock product: %v", err)
	}

	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        model.TransactionInvestment,
		Amount:      input.TotalBill,
		Description: fmt.Sprintf("restocked the product %s (%s)", p.Name, p.Category),
		CreatedBy:   auth.ActorID(ctx),
	}
	if err := uc.transactions.Create(ctx, t); err != nil {
		return nil, apperr.Internal("product restocked but investment transaction failed: %v", err)
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load product: %v", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, listCacheKey).Result(); err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list products: %v", err)
	}

	if uc.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			uc.cache.Set(ctx, listCacheKey, data, 5*time.Minute)
		}
	}
	return items, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load product: %v", err)
	}
	if p == nil {
		return apperr.NotFound("product not found with this id")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete product: %v", err)
	}
	uc.invalidateListCache(ctx)
	return nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Del(ctx, listCacheKey).Err(); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
