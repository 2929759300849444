package target

import (
	"context"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/target/dto"
)

type UseCase interface {
	CreateTarget(ctx context.Context, input *dto.CreateTargetInput) (*model.Target, error)
	ListTargets(ctx context.Context) ([]model.Target, error)
	ListUserTargets(ctx context.Context, userID string) ([]model.Target, error)
	DeleteTarget(ctx context.Context, id string) error

	// RecomputeForUser refreshes progress for every still-open target of the
	// user from order history. Idempotent over a consistent snapshot;
	// last-write-wins between concurrent invocations is acceptable.
	RecomputeForUser(ctx context.Context, userID string) error
}
