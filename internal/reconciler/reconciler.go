// Package reconciler runs the nightly sweep that force-settles saved orders
// whose delivery date has arrived without any recorded payment. Settlement is
// "first payment at full price": the remainder is zero, so the customer
// credit ledger is never touched.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/order"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	sweepLockKey = "lock:reconciler:sweep"
	sweepLockTTL = 10 * time.Minute
)

// Locker is satisfied by *redislock.Client. Nil disables the non-overlap
// guard (tests).
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type Reconciler struct {
	orders       order.Repository
	transactions transaction.Repository
	locker       Locker
	cron         *cron.Cron
	cronSpec     string
	logger       *zap.Logger
}

func New(orders order.Repository, transactions transaction.Repository, locker Locker, cronSpec string, log *zap.Logger) *Reconciler {
	return &Reconciler{
		orders:       orders,
		transactions: transactions,
		locker:       locker,
		cron:         cron.New(),
		cronSpec:     cronSpec,
		logger:       log,
	}
}

// Start registers the daily sweep and launches the cron scheduler.
func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(r.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepLockTTL)
		defer cancel()
		r.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reconciliation sweep: %w", err)
	}
	r.cron.Start()
	r.logger.Info("reconciliation scheduler started", zap.String("cron", r.cronSpec))
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

// run wraps a sweep in the non-overlap lock; a run that cannot obtain the
// lock means another instance is already sweeping and simply returns.
func (r *Reconciler) run(ctx context.Context) {
	if r.locker != nil {
		lock, err := r.locker.Obtain(ctx, sweepLockKey, sweepLockTTL, nil)
		if err == redislock.ErrNotObtained {
			r.logger.Info("reconciliation sweep already running elsewhere, skipping")
			return
		}
		if err != nil {
			r.logger.Error("failed to acquire sweep lock", zap.Error(err))
			return
		}
		defer lock.Release(ctx)
	}
	r.Sweep(ctx, time.Now())
}

// Sweep settles every saved, unpaid order due in [todayMidnightUTC,
// tomorrowMidnightUTC). A failure on one order is logged and the sweep
// moves on to the rest.
func (r *Reconciler) Sweep(ctx context.Context, now time.Time) {
	from := now.UTC().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	due, err := r.orders.FindDueUnpaid(ctx, from, to)
	if err != nil {
		r.logger.Error("failed to load due orders", zap.Error(err))
		return
	}
	r.logger.Info("reconciliation sweep started",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("due_orders", len(due)))

	settled := 0
	for i := range due {
		if err := r.settle(ctx, &due[i]); err != nil {
			r.logger.Error("failed to settle order",
				zap.String("order_id", due[i].ID),
				zap.Error(err))
			continue
		}
		settled++
	}
	r.logger.Info("reconciliation sweep finished", zap.Int("settled", settled))
}

func (r *Reconciler) settle(ctx context.Context, o *model.Order) error {
	o.Payment = decimal.NullDecimal{Decimal: o.Price, Valid: true}
	o.DeliveryStatus = true
	o.UpdatedAt = time.Now()
	if err := r.orders.Update(ctx, o); err != nil {
		return err
	}

	description := "Automatic settlement"
	if o.OrderNumber != nil {
		description = fmt.Sprintf("Automatic settlement of order number %d", *o.OrderNumber)
	}
	now := time.Now()
	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        model.TransactionSale,
		Amount:      o.Price,
		Description: description,
		OrderID:     &o.ID,
		CreatedBy:   model.SystemActor,
	}
	return r.transactions.Create(ctx, t)
}
