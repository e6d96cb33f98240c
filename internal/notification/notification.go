// Package notification delivers low-funds and pay-in-limit notices.
package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/benx421/moneybox/internal/config"
	"github.com/benx421/moneybox/internal/service"
)

// Notification types
const (
	TypeFundsLow               = "funds_low"
	TypeApproachingPayInLimit  = "approaching_pay_in_limit"
	routingKeyPrefix           = "notification."
	defaultNotificationTimeout = 5 * time.Second
)

// Event is the payload published to brokers
type Event struct {
	OccurredAt time.Time `json:"occurred_at"`
	Type       string    `json:"type"`
	Address    string    `json:"address"`
}

func newEvent(notificationType, address string) Event {
	return Event{
		Type:       notificationType,
		Address:    address,
		OccurredAt: time.Now().UTC(),
	}
}

// Channel is a NotificationChannel that owns a broker connection
type Channel interface {
	service.NotificationChannel
	io.Closer
}

// New builds the channel selected by cfg.Backend
func New(cfg *config.NotificationConfig, logger *slog.Logger) (Channel, error) {
	switch cfg.Backend {
	case config.NotifierLog:
		return NewLogNotifier(logger), nil
	case config.NotifierAMQP:
		notifier, err := NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return notifier, nil
	case config.NotifierNATS:
		notifier, err := NewNATSNotifier(cfg.NATSURL, cfg.NATSSubjectPrefix, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return notifier, nil
	default:
		return nil, fmt.Errorf("unknown notifier backend: %s", cfg.Backend)
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
