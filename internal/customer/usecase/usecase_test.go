package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/customer/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomerRepo struct {
	customers map[string]*model.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerRepo) FindByContact(ctx context.Context, contact string) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.Contact == contact {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	var items []model.Customer
	for _, c := range f.customers {
		items = append(items, *c)
	}
	return items, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	delete(f.customers, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*model.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeTransactionRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) FindRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	return nil, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCreateCustomerRejectsDuplicateContact(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]*model.Customer{}}
	uc := NewCustomerUseCase(repo, &fakeTransactionRepo{}, zap.NewNop())
	ctx := context.Background()

	_, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{Name: "A", Address: "Street 1", Contact: "0300111"})
	require.NoError(t, err)

	_, err = uc.CreateCustomer(ctx, &dto.CreateCustomerInput{Name: "B", Address: "Street 2", Contact: "0300111"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Len(t, repo.customers, 1)
}

func TestUpdateCustomerContactConflict(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"c1": {BaseModel: model.BaseModel{ID: "c1"}, Name: "A", Contact: "0300111"},
		"c2": {BaseModel: model.BaseModel{ID: "c2"}, Name: "B", Contact: "0300222"},
	}}
	uc := NewCustomerUseCase(repo, &fakeTransactionRepo{}, zap.NewNop())

	_, err := uc.UpdateCustomer(context.Background(), &dto.UpdateCustomerInput{ID: "c1", Contact: "0300222"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "0300111", repo.customers["c1"].Contact)
}

func TestReturnDebt(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"c1": {BaseModel: model.BaseModel{ID: "c1"}, Name: "A", Udhar: dec(500)},
	}}
	transactions := &fakeTransactionRepo{}
	uc := NewCustomerUseCase(repo, transactions, zap.NewNop())

	c, err := uc.ReturnDebt(context.Background(), "c1", dec(200))
	require.NoError(t, err)
	assert.True(t, c.Udhar.Equal(dec(300)))
	require.Len(t, transactions.transactions, 1)
	assert.Equal(t, model.TransactionSale, transactions.transactions[0].Type)
	assert.True(t, transactions.transactions[0].Amount.Equal(dec(200)))
}

func TestReturnDebtGuards(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"c1": {BaseModel: model.BaseModel{ID: "c1"}, Name: "A", Udhar: dec(100)},
	}}
	transactions := &fakeTransactionRepo{}
	uc := NewCustomerUseCase(repo, transactions, zap.NewNop())
	ctx := context.Background()

	_, err := uc.ReturnDebt(ctx, "c1", dec(-5))
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.ReturnDebt(ctx, "ghost", dec(10))
	assert.True(t, apperr.IsNotFound(err))

	_, err = uc.ReturnDebt(ctx, "c1", dec(150))
	assert.True(t, apperr.IsValidation(err), "repayment cannot exceed the outstanding udhar")

	assert.True(t, repo.customers["c1"].Udhar.Equal(dec(100)))
	assert.Empty(t, transactions.transactions)
}
