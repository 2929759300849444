package transaction

import (
	"context"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/transaction/dto"
)

type UseCase interface {
	CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	// ListTransactionsRange returns transactions with created_at in [from, to].
	ListTransactionsRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error)
	// ListTodayTransactions is the range query bounded to the current local day.
	ListTodayTransactions(ctx context.Context) ([]model.Transaction, error)
}
