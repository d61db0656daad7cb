package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderConfirmedEvent announces that a customer picked a payment method.
type OrderConfirmedEvent struct {
	OrderNumber   int64
	Customer      string
	Agent         string
	PaymentMethod string
	Total         decimal.Decimal
	Remark        string
	ConfirmedAt   time.Time
}

// OrderEventPublisher delivers order events to downstream consumers
// (kitchen display, delivery staff).
type OrderEventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error
}
