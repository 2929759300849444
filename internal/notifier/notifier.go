// Package notifier delivers receipt messages to customers. Delivery is
// best-effort relative to the operation that triggers it: callers log
// failures and move on.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, contact, text string) error
}

// KafkaNotifier publishes messages to a notifications topic; a downstream
// worker owns the actual chat delivery.
type KafkaNotifier struct {
	writer        *kafka.Writer
	countryPrefix string
	logger        *zap.Logger
}

func NewKafkaNotifier(brokers []string, topic, countryPrefix string, log *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		countryPrefix: countryPrefix,
		logger:        log,
	}
}

type message struct {
	Contact string    `json:"contact"`
	Text    string    `json:"text"`
	SentAt  time.Time `json:"sent_at"`
}

func (n *KafkaNotifier) Send(ctx context.Context, contact, text string) error {
	normalized, err := n.normalizeContact(contact)
	if err != nil {
		return err
	}

	data, err := json.Marshal(message{Contact: normalized, Text: text, SentAt: time.Now()})
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(normalized),
		Value: data,
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// normalizeContact rewrites a local number (leading zero) to international
// form and rejects numbers that do not end up 12 digits long.
func (n *KafkaNotifier) normalizeContact(contact string) (string, error) {
	if strings.HasPrefix(contact, "0") {
		contact = n.countryPrefix + contact[1:]
	}
	if len(contact) != 12 {
		return "", fmt.Errorf("invalid contact %q: expected 12 digits", contact)
	}
	return contact, nil
}

// ReceiptText renders the booking receipt sent after an order is finalized.
func ReceiptText(o *model.Order, c *model.Customer) string {
	var b strings.Builder
	b.WriteString("Receipt\n")
	b.WriteString("------------------------------\n")
	fmt.Fprintf(&b, "Customer: %s\n", c.Name)
	fmt.Fprintf(&b, "Contact: %s\n", c.Contact)
	b.WriteString("------------------------------\n")
	b.WriteString("Order details:\n")
	for i, line := range o.Cart {
		fmt.Fprintf(&b, "  %d. %s - Qty: %d - Price: %s\n", i+1, line.Product.Name, line.Qty, line.Product.Price)
	}
	b.WriteString("------------------------------\n")
	if o.DeliveryDate != nil {
		fmt.Fprintf(&b, "Estimated delivery date: %s\n", o.DeliveryDate.Format("02/01/2006"))
	}
	fmt.Fprintf(&b, "Total bill: %s PKR\n", o.Price.Sub(o.Discount))
	b.WriteString("------------------------------\n")
	b.WriteString("Thank you for your booking!\n")
	return b.String()
}
