package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/benx421/moneybox/internal/metrics"
	"github.com/rabbitmq/amqp091-go"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPNotifier publishes notices to a RabbitMQ topic exchange.
//
// Routing keys are notification.funds_low and
// notification.approaching_pay_in_limit.
type AMQPNotifier struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	publisher amqpPublisher
	logger    *slog.Logger
	exchange  string
	timeout   time.Duration
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("invalid amqp url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("amqp url scheme must be amqp:// or amqps://")
	}
	return clean, nil
}

// NewAMQPNotifier dials the broker and declares the durable topic exchange
func NewAMQPNotifier(amqpURL, exchange string, timeout time.Duration, logger *slog.Logger) (*AMQPNotifier, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close() //nolint:errcheck // already failing
		_ = conn.Close()    //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	n := newAMQPNotifier(channel, exchange, timeout, logger)
	n.conn = conn
	n.channel = channel
	return n, nil
}

func newAMQPNotifier(publisher amqpPublisher, exchange string, timeout time.Duration, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
		exchange:  exchange,
		timeout:   timeout,
		logger:    logger.With("component", "notifier", "backend", "amqp"),
	}
}

// NotifyFundsLow publishes a low-funds notice for address
func (n *AMQPNotifier) NotifyFundsLow(ctx context.Context, address string) error {
	return n.publish(ctx, newEvent(TypeFundsLow, address))
}

// NotifyApproachingPayInLimit publishes a pay-in-limit warning for address
func (n *AMQPNotifier) NotifyApproachingPayInLimit(ctx context.Context, address string) error {
	return n.publish(ctx, newEvent(TypeApproachingPayInLimit, address))
}

func (n *AMQPNotifier) publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := withTimeout(ctx, n.timeout)
	defer cancel()

	routingKey := routingKeyPrefix + event.Type
	err = n.publisher.PublishWithContext(ctx,
		n.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
	metrics.RecordNotification("amqp", event.Type, err)
	if err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", event.Type, err)
	}

	n.logger.DebugContext(ctx, "published notification",
		"exchange", n.exchange,
		"routing_key", routingKey,
	)
	return nil
}

// Close closes the channel and connection
func (n *AMQPNotifier) Close() error {
	var errs []error
	if n.channel != nil {
		errs = append(errs, n.channel.Close())
	}
	if n.conn != nil {
		errs = append(errs, n.conn.Close())
	}
	return errors.Join(errs...)
}
