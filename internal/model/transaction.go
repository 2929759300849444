package model

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionSale       TransactionType = "sale"
	TransactionInvestment TransactionType = "investment"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionInvestment
}

type Transaction struct {
	BaseModel
	Type        TransactionType `db:"type" json:"type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	OrderID     *string         `db:"order_id" json:"order_id"`
	ProofURL    *string         `db:"proof_url" json:"proof_url"`
	CreatedBy   string          `db:"created_by" json:"created_by"`
}
