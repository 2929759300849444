package dto

import "github.com/shopspring/decimal"

type ApplyPaymentInput struct {
	OrderID string          `json:"-"`
	Amount  decimal.Decimal `json:"amount"`
}
