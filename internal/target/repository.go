package target

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, t *model.Target) error
	FindByID(ctx context.Context, id string) (*model.Target, error)
	FindAll(ctx context.Context) ([]model.Target, error)
	FindByUser(ctx context.Context, userID string) ([]model.Target, error)
	// FindActiveByUser lists a user's targets whose window has not closed,
	// i.e. end_date >= now.
	FindActiveByUser(ctx context.Context, userID string, now time.Time) ([]model.Target, error)
	Update(ctx context.Context, t *model.Target) error
	Delete(ctx context.Context, id string) error
}
