// Package rabbitmq announces order events on a topic exchange so the kitchen
// display and the delivery staff can follow confirmed orders.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orderbot/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// DefaultExchange is used when no exchange name is configured.
	DefaultExchange = "orders_topic"

	publishTimeout = 10 * time.Second
)

// ErrClosed is returned when publishing through a closed channel.
var ErrClosed = errors.New("rabbitmq channel is closed")

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// OrderConfirmedMessage is the JSON body of an order.confirmed.* message.
type OrderConfirmedMessage struct {
	OrderNumber   int64     `json:"order_number"`
	Customer      string    `json:"customer"`
	Agent         string    `json:"agent,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	Total         string    `json:"total"`
	Remark        string    `json:"remark,omitempty"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

// Publisher implements ports.OrderEventPublisher over one AMQP channel.
type Publisher struct {
	channel  Channel
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger
}

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// Dial connects to url, opens a channel and declares the exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := NewPublisher(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher declares a durable topic exchange on ch and publishes to it.
func NewPublisher(ch Channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq"),
	}, nil
}

// RoutingKey returns the key an order confirmed with paymentMethod is published under.
func RoutingKey(paymentMethod string) string {
	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	if method == "" {
		method = "unknown"
	}
	return "order.confirmed." + strings.ReplaceAll(method, " ", "_")
}

// PublishOrderConfirmed sends event as a persistent JSON message.
func (p *Publisher) PublishOrderConfirmed(ctx context.Context, event ports.OrderConfirmedEvent) error {
	if p.channel.IsClosed() {
		return ErrClosed
	}

	body, err := json.Marshal(OrderConfirmedMessage{
		OrderNumber:   event.OrderNumber,
		Customer:      event.Customer,
		Agent:         event.Agent,
		PaymentMethod: event.PaymentMethod,
		Total:         event.Total.StringFixed(2),
		Remark:        event.Remark,
		ConfirmedAt:   event.ConfirmedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal order confirmed event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := RoutingKey(event.PaymentMethod)
	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    event.ConfirmedAt,
			Type:         "order.confirmed",
			Body:         body,
		},
	)
	if err != nil {
		p.logger.ErrorContext(ctx, "publish failed",
			"exchange", p.exchange, "routing_key", key, "error", err)
		return fmt.Errorf("publish order %d: %w", event.OrderNumber, err)
	}

	p.logger.DebugContext(ctx, "order confirmed event published",
		"exchange", p.exchange, "routing_key", key, "order", event.OrderNumber)
	return nil
}

// Close closes the channel and, when Dial opened it, the connection.
func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
