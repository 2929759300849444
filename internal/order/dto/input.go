package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int64  `json:"qty" binding:"required,gt=0"`
}

type FillCartInput struct {
	CustomerID string          `json:"-"`
	Items      []CartItemInput `json:"items" binding:"required,min=1,dive"`
}

type FinalizeOrderInput struct {
	ID                 string          `json:"-"`
	DeliveryDate       *time.Time      `json:"delivery_date" time_format:"2006-01-02"`
	Message            string          `json:"message"`
	AdditionalDiscount decimal.Decimal `json:"additional_discount"`
}
