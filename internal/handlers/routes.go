package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/moneybox/internal/api"
	"github.com/benx421/moneybox/internal/middleware"
	"github.com/benx421/moneybox/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the router wires into the services
type Dependencies struct {
	Accounts      service.AccountDirectory
	Notifier      service.NotificationChannel
	Idempotency   middleware.IdempotencyRepository
	HealthChecker service.HealthChecker
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(deps Dependencies, logger *slog.Logger) (http.Handler, error) {
	withdrawService := service.NewWithdrawService(deps.Accounts, deps.Notifier)
	transferService := service.NewTransferService(deps.Accounts, deps.Notifier)
	accountService := service.NewAccountService(deps.Accounts)

	handler := NewHandler(withdrawService, transferService, accountService, deps.HealthChecker, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := middleware.RequestValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create request validator: %w", err)
	}

	var finalHandler http.Handler = mux

	finalHandler = middleware.Idempotency(deps.Idempotency, logger)(finalHandler)
	finalHandler = validator(finalHandler)
	finalHandler = middleware.Metrics()(finalHandler)

	return finalHandler, nil
}
