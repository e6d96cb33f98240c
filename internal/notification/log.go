package notification

import (
	"context"
	"log/slog"

	"github.com/benx421/moneybox/internal/metrics"
)

// LogNotifier writes notices to the structured log instead of a broker.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier", "backend", "log")}
}

// NotifyFundsLow logs a low-funds notice for address
func (n *LogNotifier) NotifyFundsLow(ctx context.Context, address string) error {
	return n.log(ctx, TypeFundsLow, address)
}

// NotifyApproachingPayInLimit logs a pay-in-limit warning for address
func (n *LogNotifier) NotifyApproachingPayInLimit(ctx context.Context, address string) error {
	return n.log(ctx, TypeApproachingPayInLimit, address)
}

func (n *LogNotifier) log(ctx context.Context, notificationType, address string) error {
	n.logger.InfoContext(ctx, "notification dispatched",
		"type", notificationType,
		"address", address,
	)
	metrics.RecordNotification("log", notificationType, nil)
	return nil
}

// Close is a no-op
func (n *LogNotifier) Close() error {
	return nil
}
