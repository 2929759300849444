package product

import (
	"context"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	// RestockProduct adds purchased stock, appends a purchase history entry
	// and logs an investment transaction.
	RestockProduct(ctx context.Context, input *dto.RestockProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
