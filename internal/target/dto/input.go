package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTargetInput struct {
	UserID    string          `json:"-"`
	Type      string          `json:"type" binding:"required,targettype"`
	Value     decimal.Decimal `json:"value"`
	ProductID *string         `json:"product_id"`
	StartDate time.Time       `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time       `json:"end_date" binding:"required" time_format:"2006-01-02"`
}
