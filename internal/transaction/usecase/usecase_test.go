package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/transaction/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTransactionRepo struct {
	transactions []*model.Transaction
	lastFrom     time.Time
	lastTo       time.Time
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTransactionRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	var items []model.Transaction
	for _, t := range f.transactions {
		items = append(items, *t)
	}
	return items, nil
}

func (f *fakeTransactionRepo) FindRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	f.lastFrom, f.lastTo = from, to
	var items []model.Transaction
	for _, t := range f.transactions {
		if !t.CreatedAt.Before(from) && !t.CreatedAt.After(to) {
			items = append(items, *t)
		}
	}
	return items, nil
}

func TestCreateTransaction(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewTransactionUseCase(repo, zap.NewNop())
	ctx := auth.WithActor(context.Background(), "u1")

	created, err := uc.CreateTransaction(ctx, &dto.CreateTransactionInput{
		Type:        model.TransactionInvestment,
		Amount:      decimal.NewFromInt(1500),
		Description: "restocked the warehouse",
		OrderID:     "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.CreatedBy)
	require.NotNil(t, created.OrderID)
	assert.Equal(t, "o1", *created.OrderID)
	assert.Nil(t, created.ProofURL)
}

func TestCreateTransactionValidation(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewTransactionUseCase(repo, zap.NewNop())
	ctx := context.Background()

	_, err := uc.CreateTransaction(ctx, &dto.CreateTransactionInput{
		Type: "refund", Amount: decimal.NewFromInt(10), Description: "x",
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateTransaction(ctx, &dto.CreateTransactionInput{
		Type: model.TransactionSale, Amount: decimal.NewFromInt(-10), Description: "x",
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateTransaction(ctx, &dto.CreateTransactionInput{
		Type: model.TransactionSale, Amount: decimal.NewFromInt(10),
	})
	assert.True(t, apperr.IsValidation(err))

	assert.Empty(t, repo.transactions)
}

func TestDeleteTransaction(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*model.Transaction{
		{BaseModel: model.BaseModel{ID: "t1"}},
	}}
	uc := NewTransactionUseCase(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, uc.DeleteTransaction(ctx, "t1"))
	assert.Empty(t, repo.transactions)

	err := uc.DeleteTransaction(ctx, "t1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestListTransactionsRange(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewTransactionUseCase(repo, zap.NewNop())
	ctx := context.Background()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.ListTransactionsRange(ctx, to, from)
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.ListTransactionsRange(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, from, repo.lastFrom)
	assert.Equal(t, to, repo.lastTo)
}

func TestListTodayTransactionsBounds(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewTransactionUseCase(repo, zap.NewNop())

	_, err := uc.ListTodayTransactions(context.Background())
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Day(), repo.lastFrom.Day())
	assert.Equal(t, 0, repo.lastFrom.Hour())
	assert.True(t, repo.lastTo.After(repo.lastFrom))
	assert.True(t, repo.lastTo.Sub(repo.lastFrom) < 24*time.Hour)
}
