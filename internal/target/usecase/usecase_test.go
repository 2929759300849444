package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/target/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTargetRepo struct {
	targets map[string]*model.Target
}

func (f *fakeTargetRepo) Create(ctx context.Context, t *model.Target) error {
	copied := *t
	f.targets[t.ID] = &copied
	return nil
}

func (f *fakeTargetRepo) FindByID(ctx context.Context, id string) (*model.Target, error) {
	t, ok := f.targets[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTargetRepo) FindAll(ctx context.Context) ([]model.Target, error) {
	var items []model.Target
	for _, t := range f.targets {
		items = append(items, *t)
	}
	return items, nil
}

func (f *fakeTargetRepo) FindByUser(ctx context.Context, userID string) ([]model.Target, error) {
	var items []model.Target
	for _, t := range f.targets {
		if t.UserID == userID {
			items = append(items, *t)
		}
	}
	return items, nil
}

func (f *fakeTargetRepo) FindActiveByUser(ctx context.Context, userID string, now time.Time) ([]model.Target, error) {
	var items []model.Target
	for _, t := range f.targets {
		if t.UserID == userID && !t.EndDate.Before(now) {
			items = append(items, *t)
		}
	}
	return items, nil
}

func (f *fakeTargetRepo) Update(ctx context.Context, t *model.Target) error {
	copied := *t
	f.targets[t.ID] = &copied
	return nil
}

func (f *fakeTargetRepo) Delete(ctx context.Context, id string) error {
	delete(f.targets, id)
	return nil
}

type fakeOrderRepo struct {
	orders []model.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error    { return nil }
func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FindOpenCartByCustomer(ctx context.Context, customerID string) (*model.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) { return nil, nil }
func (f *fakeOrderRepo) Update(ctx context.Context, o *model.Order) error   { return nil }
func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeOrderRepo) NextOrderNumber(ctx context.Context) (int64, error) { return 1, nil }

func (f *fakeOrderRepo) FindByCreatorInWindow(ctx context.Context, createdBy string, from, to time.Time) ([]model.Order, error) {
	var items []model.Order
	for _, o := range f.orders {
		if o.CreatedBy == createdBy && !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			items = append(items, o)
		}
	}
	return items, nil
}

func (f *fakeOrderRepo) FindDueUnpaid(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	return nil, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func window() (time.Time, time.Time) {
	start := time.Now().Add(-7 * 24 * time.Hour)
	end := time.Now().Add(7 * 24 * time.Hour)
	return start, end
}

func orderFor(user string, createdAt time.Time, payment *decimal.Decimal, lines ...model.CartLine) model.Order {
	o := model.Order{
		BaseModel: model.BaseModel{ID: "o-" + createdAt.String(), CreatedAt: createdAt},
		CreatedBy: user,
		Cart:      lines,
		Status:    model.OrderSaved,
	}
	if payment != nil {
		o.Payment = decimal.NullDecimal{Decimal: *payment, Valid: true}
	}
	return o
}

func line(productID string, qty int64) model.CartLine {
	return model.CartLine{Product: model.ProductSnapshot{ProductID: productID}, Qty: qty}
}

func TestRecomputeSalesProgress(t *testing.T) {
	start, end := window()
	inWindow := time.Now()

	p1 := dec(500)
	p2 := dec(300)
	orders := &fakeOrderRepo{orders: []model.Order{
		orderFor("u1", inWindow, &p1, line("p1", 2)),
		orderFor("u1", inWindow.Add(time.Minute), &p2, line("p2", 1)),
		orderFor("u1", inWindow.Add(2*time.Minute), nil, line("p1", 4)), // unsettled counts zero
	}}
	targets := &fakeTargetRepo{targets: map[string]*model.Target{
		"t1": {
			BaseModel: model.BaseModel{ID: "t1"},
			UserID:    "u1",
			Type:      model.TargetSales,
			Value:     dec(800),
			StartDate: start,
			EndDate:   end,
		},
	}}

	uc := NewTargetUseCase(targets, orders, zap.NewNop())
	require.NoError(t, uc.RecomputeForUser(context.Background(), "u1"))

	got := targets.targets["t1"]
	assert.True(t, got.Progress.Equal(dec(800)), "500 + 300, unsettled order contributes zero")
	assert.True(t, got.Achieved)
}

func TestRecomputeQuantityProgressProductScoped(t *testing.T) {
	start, end := window()
	inWindow := time.Now()
	scope := "p1"

	orders := &fakeOrderRepo{orders: []model.Order{
		orderFor("u1", inWindow, nil, line("p1", 3), line("p2", 10)),
		orderFor("u1", inWindow.Add(time.Minute), nil, line("p1", 4)),
		orderFor("u1", inWindow.Add(2*time.Minute), nil, line("p2", 9)),
	}}
	targets := &fakeTargetRepo{targets: map[string]*model.Target{
		"t1": {
			BaseModel: model.BaseModel{ID: "t1"},
			UserID:    "u1",
			Type:      model.TargetQuantity,
			Value:     dec(10),
			ProductID: &scope,
			StartDate: start,
			EndDate:   end,
		},
	}}

	uc := NewTargetUseCase(targets, orders, zap.NewNop())
	require.NoError(t, uc.RecomputeForUser(context.Background(), "u1"))

	got := targets.targets["t1"]
	assert.True(t, got.Progress.Equal(dec(7)), "only p1 lines count toward the scoped target")
	assert.False(t, got.Achieved)
}

func TestRecomputeOrderCountProgress(t *testing.T) {
	start, end := window()
	inWindow := time.Now()

	orders := &fakeOrderRepo{orders: []model.Order{
		orderFor("u1", inWindow, nil, line("p1", 1)),
		orderFor("u1", inWindow.Add(time.Minute), nil, line("p2", 1)),
		orderFor("u2", inWindow, nil, line("p1", 1)), // someone else's order
		orderFor("u1", start.Add(-time.Hour), nil, line("p1", 1)),
	}}
	targets := &fakeTargetRepo{targets: map[string]*model.Target{
		"t1": {
			BaseModel: model.BaseModel{ID: "t1"},
			UserID:    "u1",
			Type:      model.TargetOrders,
			Value:     dec(2),
			StartDate: start,
			EndDate:   end,
		},
	}}

	uc := NewTargetUseCase(targets, orders, zap.NewNop())
	require.NoError(t, uc.RecomputeForUser(context.Background(), "u1"))

	got := targets.targets["t1"]
	assert.True(t, got.Progress.Equal(dec(2)), "out-of-window and other users' orders do not count")
	assert.True(t, got.Achieved)
}

func TestRecomputeSkipsExpiredTargets(t *testing.T) {
	orders := &fakeOrderRepo{}
	targets := &fakeTargetRepo{targets: map[string]*model.Target{
		"t1": {
			BaseModel: model.BaseModel{ID: "t1"},
			UserID:    "u1",
			Type:      model.TargetOrders,
			Value:     dec(2),
			Progress:  dec(1),
			StartDate: time.Now().Add(-48 * time.Hour),
			EndDate:   time.Now().Add(-24 * time.Hour),
		},
	}}

	uc := NewTargetUseCase(targets, orders, zap.NewNop())
	require.NoError(t, uc.RecomputeForUser(context.Background(), "u1"))

	assert.True(t, targets.targets["t1"].Progress.Equal(dec(1)), "closed windows are left alone")
}

func TestCreateTargetValidation(t *testing.T) {
	orders := &fakeOrderRepo{}
	targets := &fakeTargetRepo{targets: map[string]*model.Target{}}
	uc := NewTargetUseCase(targets, orders, zap.NewNop())
	ctx := context.Background()
	start, end := window()

	_, err := uc.CreateTarget(ctx, &dto.CreateTargetInput{UserID: "u1", Type: "revenue", Value: dec(10), StartDate: start, EndDate: end})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateTarget(ctx, &dto.CreateTargetInput{UserID: "u1", Type: "sales", Value: decimal.Zero, StartDate: start, EndDate: end})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateTarget(ctx, &dto.CreateTargetInput{UserID: "u1", Type: "sales", Value: dec(10), StartDate: end, EndDate: start})
	assert.True(t, apperr.IsValidation(err))

	created, err := uc.CreateTarget(ctx, &dto.CreateTargetInput{UserID: "u1", Type: "sales", Value: dec(10), StartDate: start, EndDate: end})
	require.NoError(t, err)
	assert.Equal(t, model.TargetSales, created.Type)
	assert.Len(t, targets.targets, 1)
}
