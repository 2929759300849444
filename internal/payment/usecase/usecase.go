package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/customer"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/order"
	"github.com/distromate/backoffice-service/internal/payment"
	"github.com/distromate/backoffice-service/internal/payment/dto"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type paymentUseCase struct {
	orders       order.Repository
	customers    customer.Repository
	transactions transaction.Repository
	logger       *zap.Logger
}

func NewPaymentUseCase(orders order.Repository, customers customer.Repository, transactions transaction.Repository, log *zap.Logger) payment.UseCase {
	return &paymentUseCase{
		orders:       orders,
		customers:    customers,
		transactions: transactions,
		logger:       log,
	}
}

func (uc *paymentUseCase) ApplyFirstPayment(ctx context.Context, input *dto.ApplyPaymentInput) (*model.Order, error) {
	if input.Amount.IsNegative() {
		return nil, apperr.Validation("payment amount cannot be negative")
	}

	o, err := uc.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	if o.Status != model.OrderSaved {
		return nil, apperr.Conflict("order is not finalized")
	}
	if o.Settled() {
		return nil, apperr.Conflict("order already settled")
	}

	remaining := o.Price.Sub(o.Discount)
	if input.Amount.GreaterThan(remaining) {
		return nil, apperr.Validation("payment cannot exceed the payable amount")
	}

	o.Payment = decimal.NullDecimal{Decimal: input.Amount, Valid: true}
	o.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, apperr.Internal("failed to record payment: %v", err)
	}

	if input.Amount.IsPositive() {
		if err := uc.recordSale(ctx, o, input.Amount); err != nil {
			return nil, apperr.Internal("payment recorded but transaction log failed: %v", err)
		}
	}

	// The unpaid remainder becomes debt, clamped at zero on write.
	if err := uc.adjustUdhar(ctx, o.CustomerID, remaining.Sub(input.Amount)); err != nil {
		return nil, err
	}

	uc.logger.Info("order settled",
		zap.String("order_id", o.ID),
		zap.String("payment", input.Amount.String()))
	return o, nil
}

func (uc *paymentUseCase) ApplyRepayment(ctx context.Context, input *dto.ApplyPaymentInput) (*model.Order, error) {
	if input.Amount.IsNegative() {
		return nil, apperr.Validation("payment amount cannot be negative")
	}

	o, err := uc.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, apperr.Internal("failed to load order: %v", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	if !o.Settled() {
		return nil, apperr.Conflict("order has no recorded payment yet")
	}

	totalPayable := o.Price.Sub(o.Discount)
	if o.Payment.Decimal.GreaterThanOrEqual(totalPayable) {
		return nil, apperr.Conflict("order is already fully paid")
	}
	remaining := totalPayable.Sub(o.Payment.Decimal)
	if input.Amount.GreaterThan(remaining) {
		return nil, apperr.Validation("payment exceeds the remaining balance")
	}
	if input.Amount.IsZero() && o.Payment.Decimal.IsZero() {
		return nil, apperr.Conflict("a zero payment is already recorded")
	}

	cust, err := uc.customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return nil, apperr.Internal("failed to load customer: %v", err)
	}
	if cust == nil {
		return nil, apperr.NotFound("customer not found")
	}
	if input.Amount.GreaterThan(cust.Udhar) {
		return nil, apperr.Validation("cannot pay more than the outstanding udhar amount")
	}

	if input.Amount.IsPositive() {
		if err := uc.recordSale(ctx, o, input.Amount); err != nil {
			return nil, apperr.Internal("failed to log repayment transaction: %v", err)
		}
	}

	cust.Udhar = cust.Udhar.Sub(input.Amount)
	if cust.Udhar.IsNegative() {
		cust.Udhar = decimal.Zero
	}
	cust.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, cust); err != nil {
		return nil, apperr.Internal("repayment logged but customer update failed: %v", err)
	}

	o.Payment = decimal.NullDecimal{Decimal: o.Payment.Decimal.Add(input.Amount), Valid: true}
	o.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, apperr.Internal("repayment logged but order update failed: %v", err)
	}
	return o, nil
}

func (uc *paymentUseCase) recordSale(ctx context.Context, o *model.Order, amount decimal.Decimal) error {
	now := time.Now()
	description := "Sale payment"
	if o.OrderNumber != nil {
		description = fmt.Sprintf("Sale against order number %d", *o.OrderNumber)
	}
	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        model.TransactionSale,
		Amount:      amount,
		Description: description,
		OrderID:     &o.ID,
		CreatedBy:   auth.ActorID(ctx),
	}
	return uc.transactions.Create(ctx, t)
}

func (uc *paymentUseCase) adjustUdhar(ctx context.Context, customerID string, delta decimal.Decimal) error {
	cust, err := uc.customers.FindByID(ctx, customerID)
	if err != nil {
		return apperr.Internal("failed to load customer: %v", err)
	}
	if cust == nil {
		return apperr.Internal("payment recorded but customer %s is missing", customerID)
	}
	cust.Udhar = cust.Udhar.Add(delta)
	if cust.Udhar.IsNegative() {
		cust.Udhar = decimal.Zero
	}
	cust.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, cust); err != nil {
		return apperr.Internal("payment recorded but udhar update failed: %v", err)
	}
	return nil
}
