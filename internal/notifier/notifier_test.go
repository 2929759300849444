package notifier

import (
	"testing"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeContact(t *testing.T) {
	n := &KafkaNotifier{countryPrefix: "92", logger: zap.NewNop()}

	got, err := n.normalizeContact("03001234567")
	require.NoError(t, err)
	assert.Equal(t, "923001234567", got, "a leading zero is replaced with the country prefix")

	got, err = n.normalizeContact("923001234567")
	require.NoError(t, err)
	assert.Equal(t, "923001234567", got)

	_, err = n.normalizeContact("0300123")
	assert.Error(t, err, "short numbers are rejected")
}

func TestReceiptText(t *testing.T) {
	deliveryDate := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	o := &model.Order{
		Cart: model.CartLines{
			{Product: model.ProductSnapshot{ProductID: "p1", Name: "Rice 5kg", Price: decimal.NewFromInt(100)}, Qty: 5},
		},
		Price:        decimal.NewFromInt(500),
		Discount:     decimal.NewFromInt(50),
		DeliveryDate: &deliveryDate,
	}
	c := &model.Customer{Name: "Hamza Traders", Contact: "923001234567"}

	text := ReceiptText(o, c)
	assert.Contains(t, text, "Hamza Traders")
	assert.Contains(t, text, "Rice 5kg")
	assert.Contains(t, text, "Qty: 5")
	assert.Contains(t, text, "02/09/2026")
	assert.Contains(t, text, "Total bill: 450 PKR")
}
