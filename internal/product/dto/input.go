package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	StockQty  int64           `json:"stock_qty"`
	TotalBill decimal.Decimal `json:"total_bill"`
}

type UpdateProductInput struct {
	ID       string          `json:"-"`
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	StockQty int64           `json:"stock_qty"`
}

type RestockProductInput struct {
	ID        string          `json:"-"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	StockQty  int64           `json:"stock_qty"`
	TotalBill decimal.Decimal `json:"total_bill"`
}
