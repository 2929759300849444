package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// OrderOpen is a cart still being filled; pricing is not computed yet.
	OrderOpen OrderStatus = "open"
	// OrderSaved is a finalized order with frozen pricing.
	OrderSaved OrderStatus = "saved"
)

type Order struct {
	BaseModel
	CustomerID     string              `db:"customer_id" json:"customer_id"`
	CreatedBy      string              `db:"created_by" json:"created_by"`
	OrderNumber    *int64              `db:"order_number" json:"order_number"` // assigned once, at finalization
	Cart           CartLines           `db:"cart" json:"cart"`
	Price          decimal.Decimal     `db:"price" json:"price"`
	Discount       decimal.Decimal     `db:"discount" json:"discount"`
	Payment        decimal.NullDecimal `db:"payment" json:"payment"` // invalid = not yet settled; valid (even zero) = settled
	Status         OrderStatus         `db:"status" json:"status"`
	DeliveryStatus bool                `db:"delivery_status" json:"delivery_status"`
	DeliveryDate   *time.Time          `db:"delivery_date" json:"delivery_date"`
	Message        string              `db:"message" json:"message"`

	// Display-only, filled by list queries via join. Not a column on orders.
	CustomerName *string `db:"customer_name" json:"customer_name,omitempty"`
}

// Settled reports whether a first payment has been recorded, including a
// recorded payment of exactly zero.
func (o *Order) Settled() bool {
	return o.Payment.Valid
}

// ProductSnapshot is the frozen copy of the product embedded in a cart line
// at add-time. Later edits to the live product must not change it.
type ProductSnapshot struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
}

type CartLine struct {
	Product ProductSnapshot `json:"product"`
	Qty     int64           `json:"qty"`
}

// CartLines is stored as a JSONB column.
type CartLines []CartLine

func (c CartLines) Value() (driver.Value, error) {
	if c == nil {
		c = CartLines{}
	}
	return json.Marshal(c)
}

func (c *CartLines) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = CartLines{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cart: cannot scan %T", src)
	}
}
