package usecase

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/distromate/backoffice-service/internal/transaction/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type transactionUseCase struct {
	repo   transaction.Repository
	logger *zap.Logger
}

func NewTransactionUseCase(repo transaction.Repository, log *zap.Logger) transaction.UseCase {
	return &transactionUseCase{repo: repo, logger: log}
}

func (uc *transactionUseCase) CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*model.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperr.Validation("type must be sale or investment")
	}
	if input.Amount.IsNegative() {
		return nil, apperr.Validation("amount must be a non-negative number")
	}
	if input.Description == "" {
		return nil, apperr.Validation("description is required")
	}

	now := time.Now()
	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedBy:   auth.ActorID(ctx),
	}
	if input.OrderID != "" {
		orderID := input.OrderID
		t.OrderID = &orderID
	}
	if input.ProofURL != "" {
		proof := input.ProofURL
		t.ProofURL = &proof
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, apperr.Internal("failed to create transaction: %v", err)
	}
	return t, nil
}

func (uc *transactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load transaction: %v", err)
	}
	if t == nil {
		return apperr.NotFound("transaction not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete transaction: %v", err)
	}
	return nil
}

func (uc *transactionUseCase) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list transactions: %v", err)
	}
	return items, nil
}

func (uc *transactionUseCase) ListTransactionsRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	if to.Before(from) {
		return nil, apperr.Validation("range end must not be before range start")
	}
	items, err := uc.repo.FindRange(ctx, from, to)
	if err != nil {
		return nil, apperr.Internal("failed to list transactions: %v", err)
	}
	return items, nil
}

func (uc *transactionUseCase) ListTodayTransactions(ctx context.Context) ([]model.Transaction, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return uc.ListTransactionsRange(ctx, start, end)
}
