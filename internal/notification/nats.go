package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/moneybox/internal/metrics"
	"github.com/nats-io/nats.go"
)

type natsPublisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// NATSNotifier publishes notices on NATS subjects
// <prefix>.notification.<type>.
type NATSNotifier struct {
	conn      *nats.Conn
	publisher natsPublisher
	logger    *slog.Logger
	prefix    string
	timeout   time.Duration
}

// NewNATSNotifier connects to the NATS server at url
func NewNATSNotifier(url, subjectPrefix string, timeout time.Duration, logger *slog.Logger) (*NATSNotifier, error) {
	logger = logger.With("component", "notifier", "backend", "nats")

	opts := []nats.Option{
		nats.Name("moneybox"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	n := newNATSNotifier(conn, subjectPrefix, timeout, logger)
	n.conn = conn
	return n, nil
}

func newNATSNotifier(publisher natsPublisher, subjectPrefix string, timeout time.Duration, logger *slog.Logger) *NATSNotifier {
	return &NATSNotifier{
		publisher: publisher,
		prefix:    subjectPrefix,
		timeout:   timeout,
		logger:    logger,
	}
}

// NotifyFundsLow publishes a low-funds notice for address
func (n *NATSNotifier) NotifyFundsLow(ctx context.Context, address string) error {
	return n.publish(ctx, newEvent(TypeFundsLow, address))
}

// NotifyApproachingPayInLimit publishes a pay-in-limit warning for address
func (n *NATSNotifier) NotifyApproachingPayInLimit(ctx context.Context, address string) error {
	return n.publish(ctx, newEvent(TypeApproachingPayInLimit, address))
}

func (n *NATSNotifier) subject(notificationType string) string {
	if n.prefix == "" {
		return routingKeyPrefix + notificationType
	}
	return n.prefix + "." + routingKeyPrefix + notificationType
}

func (n *NATSNotifier) publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := withTimeout(ctx, n.timeout)
	defer cancel()

	subject := n.subject(event.Type)
	err = n.publisher.Publish(subject, data)
	if err == nil {
		// Publish only buffers; flushing surfaces a dead connection to the caller.
		err = n.publisher.FlushWithContext(ctx)
	}
	metrics.RecordNotification("nats", event.Type, err)
	if err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", event.Type, err)
	}

	n.logger.DebugContext(ctx, "published notification", "subject", subject)
	return nil
}

// Close drains and closes the connection
func (n *NATSNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Drain()
}
