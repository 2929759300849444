package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name          string          `db:"name" json:"name"`
	Category      string          `db:"category" json:"category"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	StockQty      int64           `db:"stock_qty" json:"stock_qty"`
	InStock       bool            `db:"in_stock" json:"in_stock"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	History       RestockHistory  `db:"history" json:"history"`
	CreatedBy     string          `db:"created_by" json:"created_by"`
}

// RestockEvent records one purchase of stock: how many units came in, what
// the whole batch cost, and the derived unit purchase price.
type RestockEvent struct {
	Qty           int64           `json:"qty"`
	TotalBill     decimal.Decimal `json:"total_bill"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Date          time.Time       `json:"date"`
}

// RestockHistory is stored as a JSONB column.
type RestockHistory []RestockEvent

func (h RestockHistory) Value() (driver.Value, error) {
	if h == nil {
		h = RestockHistory{}
	}
	return json.Marshal(h)
}

func (h *RestockHistory) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*h = RestockHistory{}
		return nil
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("restock history: cannot scan %T", src)
	}
}

// StockMovement is one row of the stock ledger. SoldQty is positive for a
// sale (stock went down) and negative for a return (stock came back).
// StockQtyLeft is the product's stock level after the movement applied.
type StockMovement struct {
	ID           string    `db:"id" json:"id"`
	ProductID    string    `db:"product_id" json:"product_id"`
	CustomerID   string    `db:"customer_id" json:"customer_id"`
	SoldQty      int64     `db:"sold_qty" json:"sold_qty"`
	StockQtyLeft int64     `db:"stock_qty_left" json:"stock_qty_left"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
