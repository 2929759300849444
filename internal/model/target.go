package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TargetType string

const (
	TargetOrders   TargetType = "orders"
	TargetQuantity TargetType = "quantity"
	TargetSales    TargetType = "sales"
)

func (t TargetType) Valid() bool {
	return t == TargetOrders || t == TargetQuantity || t == TargetSales
}

// Target is a per-user, time-windowed goal. Progress is recomputed from
// order history, never incremented in place.
type Target struct {
	BaseModel
	UserID    string          `db:"user_id" json:"user_id"`
	Type      TargetType      `db:"type" json:"type"`
	Value     decimal.Decimal `db:"value" json:"value"`
	ProductID *string         `db:"product_id" json:"product_id"` // optional scope to one product
	StartDate time.Time       `db:"start_date" json:"start_date"`
	EndDate   time.Time       `db:"end_date" json:"end_date"`
	Progress  decimal.Decimal `db:"progress" json:"progress"`
	Achieved  bool            `db:"achieved" json:"achieved"`
}
