package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders     map[string]*model.Order
	failUpdate map[string]bool
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error { return nil }

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindOpenCartByCustomer(ctx context.Context, customerID string) (*model.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) { return nil, nil }

func (f *fakeOrderRepo) Update(ctx context.Context, o *model.Order) error {
	if f.failUpdate[o.ID] {
		return errors.New("update failed")
	}
	copied := *o
	f.orders[o.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeOrderRepo) NextOrderNumber(ctx context.Context) (int64, error) { return 1, nil }

func (f *fakeOrderRepo) FindByCreatorInWindow(ctx context.Context, createdBy string, from, to time.Time) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindDueUnpaid(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	var items []model.Order
	for _, o := range f.orders {
		if o.Status == model.OrderSaved && !o.Payment.Valid && o.DeliveryDate != nil &&
			!o.DeliveryDate.Before(from) && o.DeliveryDate.Before(to) {
			items = append(items, *o)
		}
	}
	return items, nil
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

func savedOrder(id string, price int64, deliveryDate time.Time, settled bool) *model.Order {
	number := int64(1)
	o := &model.Order{
		BaseModel:   model.BaseModel{ID: id},
		OrderNumber: &number,
		Price:       dec(price),
		Status:      model.OrderSaved,
		DeliveryDate: func() *time.Time {
			d := deliveryDate
			return &d
		}(),
	}
	if settled {
		o.Payment = decimal.NullDecimal{Decimal: dec(price), Valid: true}
	}
	return o
}

func TestSweepSettlesOnlyDueUnpaidOrders(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour).Add(6 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	orders := &fakeOrderRepo{orders: map[string]*model.Order{
		"o1": savedOrder("o1", 700, today, false),    // due, unpaid -> settle
		"o2": savedOrder("o2", 800, today, true),     // due, already paid
		"o3": savedOrder("o3", 900, tomorrow, false), // not due yet
	}}
	transactions := &fakeTransactionRepo{}

	r := New(orders, transactions, nil, "30 23 * * *", zap.NewNop())
	r.Sweep(context.Background(), now)

	o1 := orders.orders["o1"]
	require.True(t, o1.Payment.Valid)
	assert.True(t, o1.Payment.Decimal.Equal(dec(700)), "force-settlement records the full price")
	assert.True(t, o1.DeliveryStatus)

	assert.True(t, orders.orders["o2"].Payment.Decimal.Equal(dec(800)))
	assert.False(t, orders.orders["o2"].DeliveryStatus)
	assert.False(t, orders.orders["o3"].Payment.Valid)
	assert.False(t, orders.orders["o3"].DeliveryStatus)

	require.Len(t, transactions.transactions, 1)
	tx := transactions.transactions[0]
	assert.Equal(t, model.TransactionSale, tx.Type)
	assert.True(t, tx.Amount.Equal(dec(700)))
	assert.Equal(t, model.SystemActor, tx.CreatedBy)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, "o1", *tx.OrderID)
}

func TestSweepContinuesPastFailures(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour).Add(6 * time.Hour)

	orders := &fakeOrderRepo{
		orders: map[string]*model.Order{
			"o1": savedOrder("o1", 700, today, false),
			"o2": savedOrder("o2", 800, today, false),
		},
		failUpdate: map[string]bool{"o1": true},
	}
	transactions := &fakeTransactionRepo{}

	r := New(orders, transactions, nil, "30 23 * * *", zap.NewNop())
	r.Sweep(context.Background(), now)

	assert.False(t, orders.orders["o1"].Payment.Valid, "the failing order stays unpaid")
	assert.True(t, orders.orders["o2"].Payment.Valid, "a failure on one order does not stop the sweep")
	require.Len(t, transactions.transactions, 1)
	assert.Equal(t, "o2", *transactions.transactions[0].OrderID)
}
