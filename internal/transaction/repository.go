package transaction

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.Transaction, error)
	FindRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error)
}
