// Package handlers implements HTTP handlers for the moneybox API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/moneybox/internal/service"
)

// Handler serves the withdrawal, transfer, account and health endpoints
type Handler struct {
	withdrawer    service.Withdrawer
	transferrer   service.Transferrer
	accountGetter service.AccountGetter
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	withdrawer service.Withdrawer,
	transferrer service.Transferrer,
	accountGetter service.AccountGetter,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		withdrawer:    withdrawer,
		transferrer:   transferrer,
		accountGetter: accountGetter,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

// RegisterRoutes registers the API endpoints on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/withdrawals", h.CreateWithdrawal)
	mux.HandleFunc("POST /api/v1/transfers", h.CreateTransfer)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}", h.GetAccount)
	mux.HandleFunc("GET /health", h.GetHealth)
}
