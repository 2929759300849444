package dto

import "time"

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

type AdjustStockInput struct {
	CustomerID string
	ProductID  string
	Qty        int64
	Direction  Direction
}

type MovementFilters struct {
	ProductID  string     `form:"product_id"`
	CustomerID string     `form:"customer_id"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
}
