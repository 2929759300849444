package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Customer struct {
	BaseModel
	Name         string          `db:"name" json:"name"`
	BusinessName *string         `db:"business_name" json:"business_name"`
	Address      string          `db:"address" json:"address"`
	Contact      string          `db:"contact" json:"contact"`
	Route        *string         `db:"route" json:"route"`
	Orders       StringList      `db:"orders" json:"orders"`
	Udhar        decimal.Decimal `db:"udhar" json:"udhar"` // outstanding credit balance, clamped at zero on write
	CreatedBy    string          `db:"created_by" json:"created_by"`
}

// StringList is stored as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("string list: cannot scan %T", src)
	}
}
