package dto

import (
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateTransactionInput struct {
	Type        model.TransactionType `json:"type" binding:"required"`
	Amount      decimal.Decimal       `json:"amount"`
	Description string                `json:"description" binding:"required"`
	OrderID     string                `json:"order_id"`
	ProofURL    string                `json:"proof_url"`
}
