// Package payment settles orders against the customer credit ledger. The
// first settlement is single-shot: once a payment amount is recorded, even
// zero, further money moves only through the repayment path.
package payment

import (
	"context"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/payment/dto"
)

type UseCase interface {
	// ApplyFirstPayment records the one-time settlement of a saved order.
	// The unpaid remainder becomes customer udhar.
	ApplyFirstPayment(ctx context.Context, input *dto.ApplyPaymentInput) (*model.Order, error)

	// ApplyRepayment pays down udhar against an already-settled order.
	ApplyRepayment(ctx context.Context, input *dto.ApplyPaymentInput) (*model.Order, error)
}
